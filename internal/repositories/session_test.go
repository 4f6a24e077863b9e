package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/shared"
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

	t.Cleanup(func() { db.Close() })
	return db
}

func newSession(id, uid string) *models.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Session{
		ID:            id,
		UID:           uid,
		Email:         uid + "@example.com",
		EmailVerified: true,
		IDToken:       "id-token-" + id,
		RefreshToken:  "refresh-token-" + id,
		ExpiresAt:     now.Add(time.Hour),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSessionRepository(t *testing.T) {
	t.Run("Save and Load", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))
		session := newSession("s1", "uid-1")

		if err := repo.Save(session); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}
		if loaded == nil {
			t.Fatal("expected a session")
		}

		if loaded.UID != session.UID {
			t.Errorf("expected uid %s, got %s", session.UID, loaded.UID)
		}
		if loaded.IDToken != session.IDToken {
			t.Errorf("expected id token to round-trip, got %s", loaded.IDToken)
		}
		if !loaded.EmailVerified {
			t.Error("expected email_verified to round-trip")
		}
		if !loaded.ExpiresAt.Equal(session.ExpiresAt) {
			t.Errorf("expected expires_at %v, got %v", session.ExpiresAt, loaded.ExpiresAt)
		}
	})

	t.Run("Save replaces the previous session", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		if err := repo.Save(newSession("s1", "uid-1")); err != nil {
			t.Fatalf("failed to save first session: %v", err)
		}
		if err := repo.Save(newSession("s2", "uid-2")); err != nil {
			t.Fatalf("failed to save second session: %v", err)
		}

		count, err := countRows(repo.db, "sessions")
		if err != nil {
			t.Fatalf("failed to count rows: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly one session row, got %d", count)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}
		if loaded.UID != "uid-2" {
			t.Errorf("expected the replacement session, got uid %s", loaded.UID)
		}
	})

	t.Run("Save rejects an invalid session", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		session := newSession("s1", "uid-1")
		session.IDToken = ""

		if err := repo.Save(session); err == nil {
			t.Error("expected validation error for session without tokens")
		}
	})

	t.Run("Load with no session returns nil", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if loaded != nil {
			t.Errorf("expected nil session, got %+v", loaded)
		}
	})

	t.Run("Clear removes the session", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		if err := repo.Save(newSession("s1", "uid-1")); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}
		if err := repo.Clear(); err != nil {
			t.Fatalf("failed to clear session: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if loaded != nil {
			t.Error("expected session to be gone")
		}
	})

	t.Run("Clear with no session is a no-op", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		if err := repo.Clear(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
