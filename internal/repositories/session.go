package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/vidsum/internal/models"
)

// SessionRepository persists the oracle's single session row.
//
// Save is a wholesale replacement: the sessions table never holds more than
// one row, matching the one-active-session invariant.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save replaces any existing session with the given one.
func (r *SessionRepository) Save(session *models.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear previous session: %w", err)
	}

	query := `
		INSERT INTO sessions (id, uid, email, email_verified, id_token, refresh_token, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(query,
		session.ID, session.UID, session.Email, session.EmailVerified,
		session.IDToken, session.RefreshToken,
		session.ExpiresAt, session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return tx.Commit()
}

// Load retrieves the persisted session, or (nil, nil) when signed out.
func (r *SessionRepository) Load() (*models.Session, error) {
	query := `
		SELECT id, uid, email, email_verified, id_token, refresh_token, expires_at, created_at, updated_at
		FROM sessions
		LIMIT 1
	`

	var (
		s         models.Session
		verified  int
		expiresAt time.Time
	)
	err := r.db.QueryRow(query).Scan(
		&s.ID, &s.UID, &s.Email, &verified,
		&s.IDToken, &s.RefreshToken,
		&expiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	s.EmailVerified = verified != 0
	s.ExpiresAt = expiresAt
	return &s, nil
}

// Clear removes the persisted session.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
