package main

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/repositories"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	auth       services.AuthService
	catalog    services.CatalogService
	remote     services.WatchlistService
	sessions   tasks.SessionStore
	activity   *repositories.ActivityRepository
	engine     *tasks.WatchlistEngine
	db         *sql.DB
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Auth       services.AuthService
	Catalog    services.CatalogService
	Remote     services.WatchlistService
	Sessions   tasks.SessionStore
	Activity   *repositories.ActivityRepository
	DB         *sql.DB
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	var engine *tasks.WatchlistEngine
	if opts.Sessions != nil && opts.Remote != nil {
		engine = tasks.NewWatchlistEngine(opts.Sessions, opts.Remote, opts.Config.Catalog.ImageBaseURL)
		engine.SetLogger(opts.Logger)
		if opts.Activity != nil {
			engine.SetRecorder(opts.Activity)
		}
	}

	return &Runner{
		config:     opts.Config,
		auth:       opts.Auth,
		catalog:    opts.Catalog,
		remote:     opts.Remote,
		sessions:   opts.Sessions,
		activity:   opts.Activity,
		engine:     engine,
		db:         opts.DB,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, moviesCommand, watchlistCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner and engine loggers.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
	if r.engine != nil {
		r.engine.SetLogger(l)
	}
}

// requireEngine guards commands that need the local session store.
func (r *Runner) requireEngine() error {
	if r.engine == nil {
		return fmt.Errorf("%w: local database unavailable, run 'mvx setup database'", shared.ErrMissingConfig)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
