package repositories

import (
	"database/sql"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func testSession() *models.Session {
	return &models.Session{
		UserID: "user-1",
		Name:   "Test User",
		Email:  "test@example.com",
		Token:  "token-abc",
	}
}

func TestSessionRepository(t *testing.T) {
	t.Run("Load Without Session Reports Absent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		if _, ok := repo.Load(); ok {
			t.Error("expected no session in a fresh database")
		}
	})

	t.Run("Save Then Load Round Trip", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		if err := repo.Save(testSession()); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		loaded, ok := repo.Load()
		if !ok {
			t.Fatal("expected session to be present")
		}
		if loaded.UserID != "user-1" || loaded.Token != "token-abc" {
			t.Errorf("unexpected session %+v", loaded)
		}
	})

	t.Run("Save Replaces Prior Session", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		if err := repo.Save(testSession()); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		second := testSession()
		second.UserID = "user-2"
		second.Token = "token-def"
		if err := repo.Save(second); err != nil {
			t.Fatalf("failed to save second session: %v", err)
		}

		loaded, ok := repo.Load()
		if !ok {
			t.Fatal("expected session to be present")
		}
		if loaded.UserID != "user-2" {
			t.Errorf("expected replacement, got %+v", loaded)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
			t.Fatalf("failed to count rows: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly one session row, got %d", count)
		}
	})

	t.Run("Save Rejects Incomplete Session", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		session := testSession()
		session.Token = ""

		if err := repo.Save(session); err == nil {
			t.Error("expected error for incomplete session")
		}
		if _, ok := repo.Load(); ok {
			t.Error("expected nothing to be persisted")
		}
	})

	t.Run("Malformed Row Loads As Absent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		query := `
			INSERT INTO sessions (name, user_id, display_name, email, token, saved_at)
			VALUES ('session', 'user-1', '', 'test@example.com', '', datetime('now'))
		`
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("failed to insert malformed row: %v", err)
		}

		repo := NewSessionRepository(db)
		if _, ok := repo.Load(); ok {
			t.Error("expected malformed session to load as absent")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		if err := repo.Save(testSession()); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		if err := repo.Clear(); err != nil {
			t.Fatalf("failed to clear session: %v", err)
		}
		if _, ok := repo.Load(); ok {
			t.Error("expected session to be gone")
		}

		// Clearing again is a no-op.
		if err := repo.Clear(); err != nil {
			t.Errorf("expected idempotent clear, got %v", err)
		}
	})
}

func TestActivityRepository(t *testing.T) {
	t.Run("Record And List Newest First", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewActivityRepository(db)
		if err := repo.Record("added", 7, "Dark"); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
		if err := repo.Record("removed", 7, "Dark"); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
		if err := repo.Record("added", 9, "Severance"); err != nil {
			t.Fatalf("failed to record: %v", err)
		}

		activities, err := repo.List(0)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}

		if len(activities) != 3 {
			t.Fatalf("expected 3 activities, got %d", len(activities))
		}
		if activities[0].MovieID != 9 || activities[0].Action != "added" {
			t.Errorf("expected newest first, got %+v", activities[0])
		}
		if activities[2].MovieID != 7 || activities[2].Action != "added" {
			t.Errorf("expected oldest last, got %+v", activities[2])
		}
	})

	t.Run("List Honors Limit", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewActivityRepository(db)
		for i := 1; i <= 5; i++ {
			if err := repo.Record("added", i, "Title"); err != nil {
				t.Fatalf("failed to record: %v", err)
			}
		}

		activities, err := repo.List(2)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(activities) != 2 {
			t.Fatalf("expected 2 activities, got %d", len(activities))
		}
		if activities[0].MovieID != 5 {
			t.Errorf("expected most recent entry first, got %+v", activities[0])
		}
	})

	t.Run("Sequences Are Monotonic", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		first, err := NextSequence(db, "activity")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		second, err := NextSequence(db, "activity")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}

		if second != first+1 {
			t.Errorf("expected consecutive sequences, got %d then %d", first, second)
		}
	})
}
