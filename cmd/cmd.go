// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the account session",
		Commands: []*cli.Command{
			{
				Name:  "signin",
				Usage: "Sign in and persist the session locally",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthSignin,
			},
			{
				Name:  "signup",
				Usage: "Register a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:   "signout",
				Usage:  "Clear the persisted session",
				Action: r.AuthSignout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Action: r.AuthStatus,
			},
		},
	}
}

// moviesCommand handles catalog browsing operations
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"m", "browse"},
		Usage:   "Browse popular titles",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List popular titles with optional filtering and sorting",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page to fetch",
						Value: 1,
					},
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Filter titles by substring (case-insensitive)",
					},
					&cli.IntFlag{
						Name:    "genre",
						Aliases: []string{"g"},
						Usage:   "Filter by genre id",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort by rating: asc or desc",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.MoviesList,
			},
			{
				Name:  "detail",
				Usage: "Show details for a single title",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.MoviesDetail,
			},
			{
				Name:  "open",
				Usage: "Open a title's page in the browser",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Action: r.MoviesOpen,
			},
		},
	}
}

// watchlistCommand handles watchlist operations
func watchlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "watchlist",
		Aliases: []string{"wl"},
		Usage:   "Manage the watchlist",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show the current watchlist",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.WatchlistList,
			},
			{
				Name:  "add",
				Usage: "Add a title to the watchlist by id",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Action: r.WatchlistAdd,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Remove a title from the watchlist by id",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Action: r.WatchlistRemove,
			},
			{
				Name:  "export",
				Usage: "Export the watchlist to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, text, or json",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (or directory for markdown)",
					},
					&cli.BoolFlag{
						Name:  "posters",
						Usage: "Download poster images alongside a markdown export",
					},
				},
				Action: r.WatchlistExport,
			},
			{
				Name:  "history",
				Usage: "Show recent watchlist activity",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries to show",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.WatchlistHistory,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the local database and run migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Roll back the most recent migration instead",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Create a config.toml with commented defaults",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the config file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive browser and watchlist",
		Action:  r.TUI,
	}
}
