package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/mvx/internal/shared"
)

// Activity is one recorded watchlist mutation.
type Activity struct {
	ID        string
	Sequence  int
	Action    string // "added" or "removed"
	MovieID   int
	Title     string
	CreatedAt time.Time
}

// ActivityRepository appends and lists local watchlist activity.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new [ActivityRepository] with the given database connection
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Record appends one activity row with a generated ID and sequence.
func (r *ActivityRepository) Record(action string, movieID int, title string) error {
	sequence, err := NextSequence(r.db, "activity")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	query := `
		INSERT INTO activity (id, sequence, action, movie_id, title, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, shared.GenerateID(), sequence, action, movieID, title, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}

// List retrieves the most recent activity, newest first. A limit of 0
// returns everything.
func (r *ActivityRepository) List(limit int) ([]Activity, error) {
	query := `
		SELECT id, sequence, action, movie_id, title, created_at
		FROM activity
		ORDER BY sequence DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Sequence, &a.Action, &a.MovieID, &a.Title, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return activities, nil
}
