package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/mvx/internal/formatter"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// WatchlistList loads the authoritative watchlist and prints it.
func (r *Runner) WatchlistList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireEngine(); err != nil {
		return err
	}

	if err := r.engine.Load(ctx); err != nil {
		return err
	}

	entries := r.engine.Entries()

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	if len(entries) == 0 {
		return r.writePlain("Watchlist is empty.\n")
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%8d  %-40s  ★ %.1f  %s", entry.MovieID, entry.Title, entry.VoteAverage, entry.Status)
		if len(entry.Genres) > 0 {
			line = fmt.Sprintf("%s  %s", line, strings.Join(entry.Genres, ", "))
		}
		r.writePlain("%s\n", line)
	}
	return r.writePlain("\n%d saved\n", len(entries))
}

// WatchlistAdd looks a title up in the catalog and adds it to the watchlist.
func (r *Runner) WatchlistAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireEngine(); err != nil {
		return err
	}
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

	// Sync local state first so the duplicate check sees the server's list.
	if err := r.engine.Load(ctx); err != nil {
		return err
	}

	added, err := r.engine.RequestAdd(ctx, *item)
	if err != nil {
		return err
	}

	if !added {
		return r.writePlain("%s is already on the watchlist.\n", item.ResolveTitle())
	}
	return r.writePlain("✓ Added %s (%d saved)\n", item.ResolveTitle(), len(r.engine.Entries()))
}

// WatchlistRemove removes a title from the watchlist by id.
func (r *Runner) WatchlistRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireEngine(); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id == 0 {
		return fmt.Errorf("%w: title id", shared.ErrMissingArgument)
	}

	if err := r.engine.Load(ctx); err != nil {
		return err
	}

	removed, err := r.engine.RequestRemove(ctx, id)
	if err != nil {
		return err
	}

	if !removed {
		return r.writePlain("Title %d is not on the watchlist.\n", id)
	}
	return r.writePlain("✓ Removed %d (%d saved)\n", id, len(r.engine.Entries()))
}

// WatchlistExport writes the watchlist to a file in the requested format.
func (r *Runner) WatchlistExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireEngine(); err != nil {
		return err
	}

	if err := r.engine.Load(ctx); err != nil {
		return err
	}

	entries := r.engine.Entries()
	if len(entries) == 0 {
		return r.writePlain("Watchlist is empty, nothing to export.\n")
	}

	format := strings.ToLower(cmd.String("format"))
	output := cmd.String("output")

	switch format {
	case "csv":
		path, err := formatter.WriteCSVExport(entries, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d entries to %s\n", len(entries), path)

	case "markdown", "md":
		username := ""
		if session, ok := r.sessions.Load(); ok {
			username = session.Name
		}
		result, err := formatter.WriteMarkdownExport(username, entries, output, cmd.Bool("posters"))
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported %d entries to %s\n", len(entries), result.Directory)
		if len(result.Posters) > 0 {
			r.writePlain("✓ Downloaded %d posters\n", len(result.Posters))
		}
		return nil

	case "text", "txt":
		path, err := formatter.WriteTextExport(entries, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d entries to %s\n", len(entries), path)

	case "json":
		data, err := formatter.ToJSON(entries, true)
		if err != nil {
			return err
		}
		if _, err := r.output.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
	}
}

// WatchlistHistory prints recent local watchlist activity, newest first.
func (r *Runner) WatchlistHistory(ctx context.Context, cmd *cli.Command) error {
	if r.activity == nil {
		return fmt.Errorf("%w: local database unavailable, run 'mvx setup database'", shared.ErrMissingConfig)
	}

	limit := cmd.Int("limit")
	activities, err := r.activity.List(limit)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(activities, true)
	}

	if len(activities) == 0 {
		return r.writePlain("No activity recorded.\n")
	}

	for _, activity := range activities {
		r.writePlain("%s  %-8s  %d  %s\n", activity.CreatedAt.Format("2006-01-02 15:04"), activity.Action, activity.MovieID, activity.Title)
	}
	return nil
}
