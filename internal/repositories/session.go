package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/mvx/internal/models"
)

// sessionName is the fixed key the single session row lives under.
const sessionName = "session"

// SessionRepository persists the authenticated session in SQLite.
//
// The store holds at most one row. A session is saved whole or not at all;
// rows that fail the completeness check load as absent.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Load reads the persisted session. The second return value reports
// presence; malformed or missing rows are treated as absent, never an error.
func (r *SessionRepository) Load() (*models.Session, bool) {
	query := `
		SELECT user_id, display_name, email, token
		FROM sessions
		WHERE name = ?
	`

	var session models.Session
	err := r.db.QueryRow(query, sessionName).Scan(&session.UserID, &session.Name, &session.Email, &session.Token)
	if err != nil {
		return nil, false
	}

	if !session.Complete() {
		return nil, false
	}

	return &session, true
}

// Save writes the full session inside a transaction, replacing any prior
// row. Incomplete sessions are rejected before touching storage.
func (r *SessionRepository) Save(session *models.Session) error {
	if !session.Complete() {
		return fmt.Errorf("refusing to save incomplete session")
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions WHERE name = ?", sessionName); err != nil {
		return fmt.Errorf("failed to clear prior session: %w", err)
	}

	query := `
		INSERT INTO sessions (name, user_id, display_name, email, token, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(query, sessionName, session.UserID, session.Name, session.Email, session.Token, time.Now()); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE name = ?", sessionName); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
