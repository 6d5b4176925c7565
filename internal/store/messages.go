package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Message is a submission of the contact form.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Delivered bool      `json:"delivered"`
}

// SaveMessage stores m and returns its id.
func (s *Store) SaveMessage(ctx context.Context, m Message) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (name, email, message, created_at, delivered)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, m.Email, m.Body, m.CreatedAt.Unix(), m.Delivered)
	if err != nil {
		return 0, fmt.Errorf("save message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save message: %w", err)
	}
	return id, nil
}

// MarkDelivered flags a message as mailed.
func (s *Store) MarkDelivered(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE contact_messages SET delivered = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	return nil
}

// Messages returns up to limit messages, newest first.
func (s *Store) Messages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, message, created_at, delivered
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		var ts int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &ts, &m.Delivered); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.CreatedAt = time.Unix(ts, 0).UTC()
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return msgs, nil
}

// Message fetches a single message.
func (s *Store) Message(ctx context.Context, id int64) (*Message, error) {
	var m Message
	var ts int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, message, created_at, delivered
		FROM contact_messages WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.Email, &m.Body, &ts, &m.Delivered)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	m.CreatedAt = time.Unix(ts, 0).UTC()
	return &m, nil
}
