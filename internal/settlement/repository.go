package settlement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Repository handles settlement data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const settlementSelect = `
	SELECT s.id, s.group_id, s.from_user_id, s.to_user_id, s.amount, s.comment, s.settled_at, s.created_at,
	       f.name AS from_name, t.name AS to_name
	FROM settlements s
	JOIN users f ON s.from_user_id = f.id
	JOIN users t ON s.to_user_id = t.id
`

func scanSettlement(row interface{ Scan(...any) error }) (*Settlement, error) {
	s := &Settlement{}
	err := row.Scan(
		&s.ID,
		&s.GroupID,
		&s.FromUserID,
		&s.ToUserID,
		&s.Amount,
		&s.Comment,
		&s.Date,
		&s.CreatedAt,
		&s.FromName,
		&s.ToName,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a settlement and returns it with both user names
func (r *Repository) Create(ctx context.Context, s *Settlement) (*Settlement, error) {
	query := `
		INSERT INTO settlements (group_id, from_user_id, to_user_id, amount, comment, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, s.GroupID, s.FromUserID, s.ToUserID, s.Amount, s.Comment, s.Date).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a settlement by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Settlement, error) {
	s, err := scanSettlement(r.db.QueryRowContext(ctx, settlementSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

// ListByGroupID retrieves a group's settlements, newest first
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64) ([]*Settlement, error) {
	return r.list(ctx, settlementSelect+` WHERE s.group_id = $1 ORDER BY s.settled_at DESC, s.id DESC`, groupID)
}

// LedgerByGroupID retrieves a group's settlements in recording order
func (r *Repository) LedgerByGroupID(ctx context.Context, groupID int64) ([]*Settlement, error) {
	return r.list(ctx, settlementSelect+` WHERE s.group_id = $1 ORDER BY s.id`, groupID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]*Settlement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	settlements := make([]*Settlement, 0)
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, rows.Err()
}
