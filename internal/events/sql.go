package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type sqlStore struct {
	db *sql.DB
}

// NewSQLStore stores events in the events table
func NewSQLStore(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Save(ctx context.Context, e Event) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to encode event data: %w", err)
	}
	metadata, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode event metadata: %w", err)
	}

	statement := `INSERT INTO events (id, event_type, event_data, event_metadata, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.db.ExecContext(ctx, statement, e.ID.String(), e.Type, string(data), string(metadata), e.CreatedAt); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// List returns the newest events first. An empty eventType matches every type.
func (s *sqlStore) List(ctx context.Context, eventType string, limit int) ([]Event, error) {
	query := `
		SELECT id, event_type, event_data, event_metadata, created_at
		FROM events
		WHERE ($1 = '' OR event_type = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, eventType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var (
			e        Event
			id       string
			data     sql.NullString
			metadata sql.NullString
		)
		if err := rows.Scan(&id, &e.Type, &data, &metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if err := e.ID.UnmarshalText([]byte(id)); err != nil {
			return nil, fmt.Errorf("failed to parse event id: %w", err)
		}
		if data.Valid && data.String != "null" {
			e.Data = json.RawMessage(data.String)
		}
		if metadata.Valid {
			if err := json.Unmarshal([]byte(metadata.String), &e.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode event metadata: %w", err)
			}
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
