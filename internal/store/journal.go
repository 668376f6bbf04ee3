package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session is one recorded run of the control loop.
type Session struct {
	ID           string
	ScreenWidth  int
	ScreenHeight int
	StartedAt    time.Time
	EndedAt      sql.NullTime
}

// Event is one dispatched action within a session.
type Event struct {
	ID        string
	SessionID string
	Kind      string
	X         int
	Y         int
	Amount    int
	CreatedAt time.Time
}

// Journal records sessions and their dispatched actions.
type Journal struct {
	db *sql.DB
}

// Journal returns the journal repository for this store.
func (s *Store) Journal() *Journal {
	return &Journal{db: s.db}
}

// BeginSession inserts a session row and returns its generated ID.
func (j *Journal) BeginSession(screenWidth, screenHeight int) (string, error) {
	id := uuid.NewString()
	_, err := j.db.Exec(
		`INSERT INTO sessions (id, screen_width, screen_height, started_at)
		 VALUES (?, ?, ?, ?)`,
		id, screenWidth, screenHeight, time.Now(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// EndSession stamps the session's end time.
func (j *Journal) EndSession(sessionID string) error {
	result, err := j.db.Exec(
		`UPDATE sessions SET ended_at = ? WHERE id = ?`,
		time.Now(), sessionID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Record appends one event to the session.
func (j *Journal) Record(sessionID, kind string, x, y, amount int) error {
	_, err := j.db.Exec(
		`INSERT INTO events (id, session_id, kind, x, y, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), sessionID, kind, x, y, amount, time.Now(),
	)
	return err
}

// GetSession retrieves a session by ID.
func (j *Journal) GetSession(id string) (*Session, error) {
	sess := &Session{}
	err := j.db.QueryRow(
		`SELECT id, screen_width, screen_height, started_at, ended_at
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.ScreenWidth, &sess.ScreenHeight, &sess.StartedAt, &sess.EndedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

// Events retrieves all events for a session in insertion order.
func (j *Journal) Events(sessionID string) ([]*Event, error) {
	rows, err := j.db.Query(
		`SELECT id, session_id, kind, x, y, amount, created_at
		 FROM events WHERE session_id = ? ORDER BY created_at, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Kind, &e.X, &e.Y, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
