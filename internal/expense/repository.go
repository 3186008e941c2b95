package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const expenseSelect = `
	SELECT e.id, e.group_id, e.payer_id, e.description, e.amount, e.category, e.split_method,
	       e.expense_date, e.created_at, u.name
	FROM expenses e
	JOIN users u ON e.payer_id = u.id
`

const shareSelect = `
	SELECT s.id, s.expense_id, s.user_id, s.amount, s.position, u.name
	FROM expense_shares s
	JOIN users u ON s.user_id = u.id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*Expense, error) {
	e := &Expense{}
	err := row.Scan(
		&e.ID,
		&e.GroupID,
		&e.PayerID,
		&e.Description,
		&e.Amount,
		&e.Category,
		&e.SplitMethod,
		&e.Date,
		&e.CreatedAt,
		&e.PayerName,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func scanShare(row scanner) (*Share, error) {
	s := &Share{}
	if err := row.Scan(&s.ID, &s.ExpenseID, &s.UserID, &s.Amount, &s.Position, &s.UserName); err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts an expense and its shares in one transaction
func (r *Repository) Create(ctx context.Context, e *Expense, shares []*Share) (*ExpenseWithShares, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO expenses (group_id, payer_id, description, amount, category, split_method, expense_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, e.GroupID, e.PayerID, e.Description, e.Amount, e.Category, e.SplitMethod, e.Date).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	for _, s := range shares {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO expense_shares (expense_id, user_id, amount, position)
			VALUES ($1, $2, $3, $4)
		`, id, s.UserID, s.Amount, s.Position)
		if err != nil {
			return nil, fmt.Errorf("failed to create expense share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	createdShares, err := r.GetShares(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithShares{Expense: created, Shares: createdShares}, nil
}

// GetByID retrieves an expense by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	e, err := scanExpense(r.db.QueryRowContext(ctx, expenseSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return e, nil
}

// GetShares retrieves an expense's shares in participant order
func (r *Repository) GetShares(ctx context.Context, expenseID int64) ([]*Share, error) {
	rows, err := r.db.QueryContext(ctx, shareSelect+` WHERE s.expense_id = $1 ORDER BY s.position`, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	shares := make([]*Share, 0)
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		shares = append(shares, s)
	}

	return shares, rows.Err()
}

// ListByGroupID retrieves a page of a group's expenses, newest first
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses WHERE group_id = $1`, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := expenseSelect + ` WHERE e.group_id = $1 ORDER BY e.expense_date DESC, e.id DESC LIMIT $2 OFFSET $3`
	expenses, err := r.list(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// ListWithSharesByGroupID retrieves a group's whole ledger in recording order
func (r *Repository) ListWithSharesByGroupID(ctx context.Context, groupID int64) ([]*ExpenseWithShares, error) {
	expenses, err := r.list(ctx, expenseSelect+` WHERE e.group_id = $1 ORDER BY e.id`, groupID)
	if err != nil {
		return nil, err
	}

	ledger := make([]*ExpenseWithShares, len(expenses))
	byID := make(map[int64]*ExpenseWithShares, len(expenses))
	for i, e := range expenses {
		ledger[i] = &ExpenseWithShares{Expense: e, Shares: make([]*Share, 0)}
		byID[e.ID] = ledger[i]
	}

	query := shareSelect + `
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.group_id = $1
		ORDER BY s.expense_id, s.position
	`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		if entry, ok := byID[s.ExpenseID]; ok {
			entry.Shares = append(entry.Shares, s)
		}
	}

	return ledger, rows.Err()
}

// Search finds expenses matching filter in the groups the user has joined
func (r *Repository) Search(ctx context.Context, filter SearchFilter) ([]*Expense, int, error) {
	conds := []string{`e.group_id IN (
		SELECT group_id FROM group_members WHERE user_id = $1 AND status = 'JOINED'
	)`}
	args := []any{filter.UserID}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Query != "" {
		add(`LOWER(e.description) LIKE $%d`, "%"+strings.ToLower(filter.Query)+"%")
	}
	if filter.Category != "" {
		add(`e.category = $%d`, filter.Category)
	}
	if filter.GroupID > 0 {
		add(`e.group_id = $%d`, filter.GroupID)
	}
	if filter.From != nil {
		add(`e.expense_date >= $%d`, filter.From.UTC())
	}
	if filter.To != nil {
		add(`e.expense_date <= $%d`, filter.To.UTC())
	}
	if filter.MinAmount != nil {
		add(`e.amount >= $%d`, *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		add(`e.amount <= $%d`, *filter.MaxAmount)
	}

	where := ` WHERE ` + strings.Join(conds, ` AND `)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses e`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := expenseSelect + where +
		fmt.Sprintf(` ORDER BY e.expense_date DESC, e.id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	expenses, err := r.list(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]*Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]*Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// Update modifies an expense's descriptive fields
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE expenses
		SET description = COALESCE($2, description),
		    category = COALESCE($3, category),
		    expense_date = COALESCE($4, expense_date)
		WHERE id = $1
	`, id, req.Description, req.Category, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrExpenseNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes an expense; its shares go with it
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
