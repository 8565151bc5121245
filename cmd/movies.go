package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/mvx/internal/catalog"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// MoviesList fetches a page of popular titles and applies client-side
// filtering and sorting before printing.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.config.ValidateCatalog(); err != nil {
		return err
	}

	page := cmd.Int("page")
	if page < 1 {
		page = 1
	}

	r.logger.Infof("fetching popular titles, page %d", page)

	items, err := r.catalog.Popular(ctx, page)
	if err != nil {
		return err
	}

	items = catalog.Filter(items, cmd.String("search"), cmd.Int("genre"))

	switch strings.ToLower(cmd.String("sort")) {
	case "asc":
		items = catalog.SortByRating(items, false)
	case "desc":
		items = catalog.SortByRating(items, true)
	case "":
	default:
		return fmt.Errorf("%w: sort must be asc or desc", shared.ErrInvalidArgument)
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	if len(items) == 0 {
		return r.writePlain("No titles matched.\n")
	}

	for _, item := range items {
		r.writeMovieLine(item)
	}
	return nil
}

// MoviesDetail fetches and prints a single title.
func (r *Runner) MoviesDetail(ctx context.Context, cmd *cli.Command) error {
	if err := r.config.ValidateCatalog(); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: title id", shared.ErrMissingArgument)
	}

	item, err := r.catalog.Detail(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(item, cmd.Bool("pretty"))
	}

	r.writePlain("%s\n", item.ResolveTitle())
	r.writePlain("Rating:     %.1f\n", item.VoteAverage)
	r.writePlain("Popularity: %.1f\n", item.Popularity)
	if genres := item.ResolveGenres(); len(genres) > 0 {
		r.writePlain("Genres:     %s\n", strings.Join(genres, ", "))
	}
	if poster := item.ResolvePoster(r.config.Catalog.ImageBaseURL); poster != "" {
		r.writePlain("Poster:     %s\n", poster)
	}
	if item.Overview != "" {
		r.writePlainln("%s", item.Overview)
	}
	return nil
}

// MoviesOpen opens a title's public page in the default browser.
func (r *Runner) MoviesOpen(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: title id", shared.ErrMissingArgument)
	}

	url := services.TitleURL(id)
	r.logger.Infof("opening %v", url)

	if err := shared.OpenBrowser(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return r.writePlain("✓ Opened %s\n", url)
}

func (r *Runner) writeMovieLine(item models.CatalogItem) {
	line := fmt.Sprintf("%8d  %-40s  ★ %.1f", item.ID, item.ResolveTitle(), item.VoteAverage)
	if genres := item.ResolveGenres(); len(genres) > 0 {
		line = fmt.Sprintf("%s  %s", line, strings.Join(genres, ", "))
	}
	r.writePlain("%s\n", line)
}
