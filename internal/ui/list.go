package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/mvx/internal/models"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = entryItem{}
)

// movieItem wraps [models.CatalogItem] to implement [list.Item].
type movieItem struct {
	item    models.CatalogItem
	saved   bool
	pending bool
}

func (i movieItem) FilterValue() string { return i.item.ResolveTitle() }
func (i movieItem) Title() string {
	title := i.item.ResolveTitle()
	if i.pending {
		return title + " " + styles.pending.Render("(saving...)")
	}
	if i.saved {
		return title + " " + styles.ok.Render("✓")
	}
	return title
}

func (i movieItem) Description() string {
	desc := fmt.Sprintf("★ %.1f", i.item.VoteAverage)
	if genres := i.item.ResolveGenres(); len(genres) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, strings.Join(genres, ", "))
	}
	return desc
}

// entryItem wraps [models.WatchlistEntry] to implement [list.Item].
type entryItem struct {
	entry   models.WatchlistEntry
	pending bool
}

func (i entryItem) FilterValue() string { return i.entry.Title }
func (i entryItem) Title() string {
	if i.pending {
		return i.entry.Title + " " + styles.pending.Render("(removing...)")
	}
	return i.entry.Title
}

func (i entryItem) Description() string {
	desc := fmt.Sprintf("★ %.1f • %s", i.entry.VoteAverage, i.entry.Status)
	if len(i.entry.Genres) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, strings.Join(i.entry.Genres, ", "))
	}
	return desc
}
