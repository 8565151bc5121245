package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota
	WatchlistView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	catalog services.CatalogService
	engine  *tasks.WatchlistEngine

	width  int
	height int

	page       int
	movies     []models.CatalogItem
	movieList  list.Model
	entryList  list.Model
	eventsChan chan tasks.Event

	status string
	err    error
	help   help.Model
	keys   keyMap
}

// keyMap defines the key bindings for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	remove key.Binding
	toggle key.Binding
	prev   key.Binding
	next   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add to watchlist"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "backspace"),
			key.WithHelp("d", "remove"),
		),
		toggle: key.NewBinding(
			key.WithKeys("tab", "w"),
			key.WithHelp("tab", "switch view"),
		),
		prev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		next: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.toggle, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.remove},
		{k.toggle, k.prev, k.next, k.quit},
	}
}

type moviesFetchedMsg struct {
	page   int
	movies []models.CatalogItem
	err    error
}

type watchlistLoadedMsg struct {
	err error
}

type mutationDoneMsg struct {
	movieID int
	err     error
}

type engineEventMsg tasks.Event

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, catalog services.CatalogService, engine *tasks.WatchlistEngine) *Model {
	events := make(chan tasks.Event, 50)
	engine.SetEvents(events)

	return &Model{
		ctx:        ctx,
		view:       BrowseView,
		catalog:    catalog,
		engine:     engine,
		page:       1,
		eventsChan: events,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init fetches the first page of titles and the watchlist.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchMovies(m.page), m.loadWatchlist(), m.waitForEvent())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.movieList.Width() == 0 {
			m.movieList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.entryList.Width() == 0 {
			m.entryList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case WatchlistView:
			return m.handleWatchlistKeys(msg)
		}

	case moviesFetchedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Failed to fetch titles: %v", msg.err))
			return m, nil
		}
		m.page = msg.page
		m.movies = msg.movies
		m.rebuildMovieList()
		return m, nil

	case watchlistLoadedMsg:
		if msg.err != nil {
			// Read-only degraded mode: browsing still works.
			m.status = styles.warn.Render(fmt.Sprintf("Watchlist unavailable: %v", msg.err))
		}
		m.rebuildEntryList()
		m.rebuildMovieList()
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.status = styles.err.Render(msg.err.Error())
		}
		m.rebuildEntryList()
		m.rebuildMovieList()
		return m, nil

	case engineEventMsg:
		event := tasks.Event(msg)
		switch event.Kind {
		case tasks.EventSessionExpired:
			m.status = styles.err.Render(event.Message)
		default:
			m.status = styles.ok.Render(event.Message)
		}
		m.rebuildEntryList()
		m.rebuildMovieList()
		return m, m.waitForEvent()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var body string
	switch m.view {
	case BrowseView:
		body = m.movieList.View()
	case WatchlistView:
		body = m.entryList.View()
	}

	helpView := m.help.ShortHelpView(m.helpKeys())
	if m.status != "" {
		return fmt.Sprintf("%s\n%s\n\n%s", body, m.status, helpView)
	}
	return fmt.Sprintf("%s\n\n%s", body, helpView)
}

func (m *Model) helpKeys() []key.Binding {
	if m.view == WatchlistView {
		return []key.Binding{m.keys.remove, m.keys.toggle, m.keys.quit}
	}
	return []key.Binding{m.keys.enter, m.keys.toggle, m.keys.prev, m.keys.next, m.keys.quit}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "w":
		m.view = WatchlistView
		return m, nil
	case "]":
		return m, m.fetchMovies(m.page + 1)
	case "[":
		if m.page > 1 {
			return m, m.fetchMovies(m.page - 1)
		}
		return m, nil
	case "enter":
		selected := m.movieList.SelectedItem()
		if selected != nil {
			if mi, ok := selected.(movieItem); ok {
				return m, m.requestAdd(mi.item)
			}
		}
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m *Model) handleWatchlistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "w", "esc":
		m.view = BrowseView
		return m, nil
	case "d", "backspace":
		selected := m.entryList.SelectedItem()
		if selected != nil {
			if ei, ok := selected.(entryItem); ok {
				return m, m.requestRemove(ei.entry.MovieID)
			}
		}
	}

	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case BrowseView:
		m.movieList, cmd = m.movieList.Update(msg)
	case WatchlistView:
		m.entryList, cmd = m.entryList.Update(msg)
	}
	return m, cmd
}

func (m *Model) rebuildMovieList() {
	items := make([]list.Item, len(m.movies))
	for i, movie := range m.movies {
		items[i] = movieItem{
			item:    movie,
			saved:   m.engine.Contains(movie.ID),
			pending: m.engine.Pending(movie.ID),
		}
	}

	selected := m.movieList.Index()
	m.movieList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.movieList.Title = fmt.Sprintf("Popular Titles - page %d", m.page)
	m.movieList.SetSize(m.width-4, m.height-8)
	if selected < len(items) {
		m.movieList.Select(selected)
	}
}

func (m *Model) rebuildEntryList() {
	entries := m.engine.Entries()
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{
			entry:   entry,
			pending: m.engine.Pending(entry.MovieID),
		}
	}

	selected := m.entryList.Index()
	m.entryList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.entryList.Title = fmt.Sprintf("Your Watchlist - %d saved", len(entries))
	m.entryList.SetSize(m.width-4, m.height-8)
	if selected < len(items) {
		m.entryList.Select(selected)
	}
}

func (m *Model) fetchMovies(page int) tea.Cmd {
	return func() tea.Msg {
		movies, err := m.catalog.Popular(m.ctx, page)
		return moviesFetchedMsg{page: page, movies: movies, err: err}
	}
}

func (m *Model) loadWatchlist() tea.Cmd {
	return func() tea.Msg {
		return watchlistLoadedMsg{err: m.engine.Load(m.ctx)}
	}
}

func (m *Model) requestAdd(candidate models.CatalogItem) tea.Cmd {
	return func() tea.Msg {
		_, err := m.engine.RequestAdd(m.ctx, candidate)
		return mutationDoneMsg{movieID: candidate.ID, err: err}
	}
}

func (m *Model) requestRemove(movieID int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.engine.RequestRemove(m.ctx, movieID)
		return mutationDoneMsg{movieID: movieID, err: err}
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.eventsChan
		if !ok {
			return nil
		}
		return engineEventMsg(event)
	}
}
