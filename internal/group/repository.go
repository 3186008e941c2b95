package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const groupColumns = `id, name, description, invite_code, is_archived, created_by, created_at`

const memberSelect = `
	SELECT gm.id, gm.group_id, gm.user_id, gm.status, gm.role, gm.joined_at, u.name, u.email
	FROM group_members gm
	JOIN users u ON gm.user_id = u.id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanGroup(row scanner) (*Group, error) {
	group := &Group{}
	err := row.Scan(
		&group.ID,
		&group.Name,
		&group.Description,
		&group.InviteCode,
		&group.IsArchived,
		&group.CreatedBy,
		&group.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return group, nil
}

func scanMember(row scanner) (*GroupMember, error) {
	member := &GroupMember{}
	err := row.Scan(
		&member.ID,
		&member.GroupID,
		&member.UserID,
		&member.Status,
		&member.Role,
		&member.JoinedAt,
		&member.Name,
		&member.Email,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Create inserts a new group and its admin membership in one transaction
func (r *Repository) Create(ctx context.Context, req *CreateGroupRequest, creatorID int64, inviteCode string) (*Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (name, description, invite_code, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + groupColumns

	group, err := scanGroup(tx.QueryRowContext(ctx, query, req.Name, req.Description, inviteCode, creatorID))
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO group_members (group_id, user_id, status, role)
		VALUES ($1, $2, $3, $4)
	`, group.ID, creatorID, MemberStatusJoined, MemberRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to add group creator: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Group, error) {
	return r.getOne(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id)
}

// GetByInviteCode retrieves a group by its invite code
func (r *Repository) GetByInviteCode(ctx context.Context, code string) (*Group, error) {
	return r.getOne(ctx, `SELECT `+groupColumns+` FROM groups WHERE invite_code = $1`, code)
}

func (r *Repository) getOne(ctx context.Context, query string, arg any) (*Group, error) {
	group, err := scanGroup(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// ListByUserID retrieves the groups a user belongs to, newest first
func (r *Repository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*Group, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.user_id = $1
	`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	query := `
		SELECT g.id, g.name, g.description, g.invite_code, g.is_archived, g.created_by, g.created_at
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC, g.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]*Group, 0)
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, total, rows.Err()
}

// Update modifies an existing group
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error) {
	query := `
		UPDATE groups
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description)
		WHERE id = $1
		RETURNING ` + groupColumns

	group, err := scanGroup(r.db.QueryRowContext(ctx, query, id, req.Name, req.Description))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return group, nil
}

// SetArchived flips the archived flag
func (r *Repository) SetArchived(ctx context.Context, id int64, archived bool) (*Group, error) {
	query := `UPDATE groups SET is_archived = $2 WHERE id = $1 RETURNING ` + groupColumns

	group, err := scanGroup(r.db.QueryRowContext(ctx, query, id, archived))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to archive group: %w", err)
	}

	return group, nil
}

// Delete removes a group from the database
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// AddMember adds a user to a group
func (r *Repository) AddMember(ctx context.Context, groupID, userID int64, role MemberRole, status MemberStatus) (*GroupMember, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO group_members (group_id, user_id, status, role)
		VALUES ($1, $2, $3, $4)
	`, groupID, userID, status, role)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return r.GetMember(ctx, groupID, userID)
}

// GetMembers retrieves all members of a group in join order
func (r *Repository) GetMembers(ctx context.Context, groupID int64) ([]*GroupMember, error) {
	query := memberSelect + ` WHERE gm.group_id = $1 ORDER BY gm.joined_at, gm.id`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	members := make([]*GroupMember, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// GetMember retrieves a specific member from a group
func (r *Repository) GetMember(ctx context.Context, groupID, userID int64) (*GroupMember, error) {
	query := memberSelect + ` WHERE gm.group_id = $1 AND gm.user_id = $2`

	member, err := scanMember(r.db.QueryRowContext(ctx, query, groupID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// UpdateMemberStatus sets a member's status
func (r *Repository) UpdateMemberStatus(ctx context.Context, groupID, userID int64, status MemberStatus) (*GroupMember, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE group_members
		SET status = $3, joined_at = CURRENT_TIMESTAMP
		WHERE group_id = $1 AND user_id = $2
	`, groupID, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrMemberNotFound
	}

	return r.GetMember(ctx, groupID, userID)
}

// RemoveMember removes a user from a group
func (r *Repository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// TransferOwnership swaps the admin role and the group owner in one transaction
func (r *Repository) TransferOwnership(ctx context.Context, groupID, fromUserID, toUserID int64) (*Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	roleQuery := `UPDATE group_members SET role = $3 WHERE group_id = $1 AND user_id = $2`
	if _, err := tx.ExecContext(ctx, roleQuery, groupID, fromUserID, MemberRoleMember); err != nil {
		return nil, fmt.Errorf("failed to demote owner: %w", err)
	}
	if _, err := tx.ExecContext(ctx, roleQuery, groupID, toUserID, MemberRoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to promote member: %w", err)
	}

	query := `UPDATE groups SET created_by = $2 WHERE id = $1 RETURNING ` + groupColumns
	group, err := scanGroup(tx.QueryRowContext(ctx, query, groupID, toUserID))
	if err != nil {
		return nil, fmt.Errorf("failed to transfer ownership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ownership transfer: %w", err)
	}

	return group, nil
}
