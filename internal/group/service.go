package group

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fkhayef/splitbill/internal/events"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("user is already a member of this group")
	ErrNotAuthorized       = errors.New("not authorized to perform this action")
	ErrNotMember           = errors.New("not a member of this group")
	ErrGroupArchived       = errors.New("group is archived")
	ErrInvalidInviteCode   = errors.New("invalid invite code")
	ErrCannotRemoveOwner   = errors.New("the group owner cannot be removed")
)

// Service handles group business logic
type Service struct {
	repo     Store
	users    UserLookup
	notifier Notifier
	events   events.Logger
}

// NewService creates a new group service
func NewService(repo Store, users UserLookup, notifier Notifier, logger events.Logger) *Service {
	if logger == nil {
		logger = events.Discard
	}
	return &Service{repo: repo, users: users, notifier: notifier, events: logger}
}

// Create creates a new group with a fresh invite code and adds the creator as admin
func (s *Service) Create(ctx context.Context, creatorID int64, req *CreateGroupRequest) (*Group, error) {
	group, err := s.repo.Create(ctx, req, creatorID, uuid.NewString())
	if err != nil {
		return nil, err
	}

	s.events.Log(events.NewEvent(
		events.WithType(events.TypeGroupCreated),
		events.WithActor(creatorID),
		events.WithGroup(group.ID),
		events.WithData(map[string]any{"name": group.Name}),
	))

	return group, nil
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// CheckAccess returns the group when userID is a joined member of it
func (s *Service) CheckAccess(ctx context.Context, groupID, userID int64) (*Group, error) {
	group, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !member.Active() {
		return nil, ErrNotMember
	}

	return group, nil
}

// CheckWritable is CheckAccess for operations that change the group's ledger
func (s *Service) CheckWritable(ctx context.Context, groupID, userID int64) (*Group, error) {
	group, err := s.CheckAccess(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if group.IsArchived {
		return nil, ErrGroupArchived
	}
	return group, nil
}

// IsActiveMember reports whether userID has joined the group
func (s *Service) IsActiveMember(ctx context.Context, groupID, userID int64) (bool, error) {
	member, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return false, err
	}
	return member.Active(), nil
}

// GetByIDWithMembers retrieves a group with all its members
func (s *Service) GetByIDWithMembers(ctx context.Context, id, userID int64) (*Group, []*GroupMember, error) {
	group, err := s.CheckAccess(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return group, members, nil
}

// ListByUserID retrieves all groups for a user
func (s *Service) ListByUserID(ctx context.Context, userID int64, page, perPage int) ([]*Group, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByUserID(ctx, userID, perPage, offset)
}

// Update modifies an existing group
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateGroupRequest) (*Group, error) {
	if _, err := s.requireAdmin(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

// Delete removes a group along with its ledger
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.requireAdmin(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Archive freezes the group's ledger
func (s *Service) Archive(ctx context.Context, id, userID int64) (*Group, error) {
	return s.setArchived(ctx, id, userID, true)
}

// Unarchive reopens an archived group
func (s *Service) Unarchive(ctx context.Context, id, userID int64) (*Group, error) {
	return s.setArchived(ctx, id, userID, false)
}

func (s *Service) setArchived(ctx context.Context, id, userID int64, archived bool) (*Group, error) {
	group, err := s.requireAdmin(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if group.IsArchived == archived {
		return group, nil
	}

	group, err = s.repo.SetArchived(ctx, id, archived)
	if err != nil {
		return nil, err
	}

	if archived {
		s.events.Log(events.NewEvent(
			events.WithType(events.TypeGroupArchived),
			events.WithActor(userID),
			events.WithGroup(id),
		))
	}

	return group, nil
}

// AddMember invites a user to the group. Any joined member may invite.
func (s *Service) AddMember(ctx context.Context, groupID, inviterID int64, req *AddMemberRequest) (*GroupMember, error) {
	group, err := s.CheckAccess(ctx, groupID, inviterID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetMember(ctx, groupID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberAlreadyExists
	}

	member, err := s.repo.AddMember(ctx, groupID, req.UserID, MemberRoleMember, MemberStatusInvited)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyGroupInvite(ctx, req.UserID, group.Name, group.ID); err != nil {
		slog.Warn("failed to send group invite notification", "group_id", groupID, "user_id", req.UserID, "error", err)
	}

	return member, nil
}

// GetMembers retrieves all members of a group
func (s *Service) GetMembers(ctx context.Context, groupID, userID int64) ([]*GroupMember, error) {
	if _, err := s.CheckAccess(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.repo.GetMembers(ctx, groupID)
}

// RemoveMember removes a user from a group. Admins may remove anyone but the
// owner; other members may only remove themselves.
func (s *Service) RemoveMember(ctx context.Context, groupID, actorID, userID int64) error {
	group, err := s.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if userID == group.CreatedBy {
		return ErrCannotRemoveOwner
	}

	if actorID != userID {
		actor, err := s.repo.GetMember(ctx, groupID, actorID)
		if err != nil {
			return err
		}
		if !actor.Active() || actor.Role != MemberRoleAdmin {
			return ErrNotAuthorized
		}
	}

	member, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	return s.repo.RemoveMember(ctx, groupID, userID)
}

// AcceptInvitation allows a user to accept their group invitation
func (s *Service) AcceptInvitation(ctx context.Context, groupID, userID int64) (*GroupMember, error) {
	member, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if member.Active() {
		return member, nil
	}

	member, err = s.repo.UpdateMemberStatus(ctx, groupID, userID, MemberStatusJoined)
	if err != nil {
		return nil, err
	}

	s.logJoined(groupID, userID)
	return member, nil
}

// JoinByInviteCode adds the user to the group the code belongs to. A pending
// invitation is accepted instead.
func (s *Service) JoinByInviteCode(ctx context.Context, userID int64, code string) (*Group, error) {
	group, err := s.repo.GetByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrInvalidInviteCode
	}
	if group.IsArchived {
		return nil, ErrGroupArchived
	}

	member, err := s.repo.GetMember(ctx, group.ID, userID)
	if err != nil {
		return nil, err
	}
	switch {
	case member.Active():
		return nil, ErrMemberAlreadyExists
	case member != nil:
		_, err = s.repo.UpdateMemberStatus(ctx, group.ID, userID, MemberStatusJoined)
	default:
		_, err = s.repo.AddMember(ctx, group.ID, userID, MemberRoleMember, MemberStatusJoined)
	}
	if err != nil {
		return nil, err
	}

	s.logJoined(group.ID, userID)
	return group, nil
}

// TransferOwnership hands the admin role to another joined member
func (s *Service) TransferOwnership(ctx context.Context, groupID, ownerID, newOwnerID int64) (*Group, error) {
	group, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.CreatedBy != ownerID {
		return nil, ErrNotAuthorized
	}
	if newOwnerID == ownerID {
		return group, nil
	}

	ok, err := s.IsActiveMember(ctx, groupID, newOwnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotMember
	}

	return s.repo.TransferOwnership(ctx, groupID, ownerID, newOwnerID)
}

func (s *Service) requireAdmin(ctx context.Context, groupID, userID int64) (*Group, error) {
	group, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !member.Active() || member.Role != MemberRoleAdmin {
		return nil, ErrNotAuthorized
	}

	return group, nil
}

func (s *Service) logJoined(groupID, userID int64) {
	s.events.Log(events.NewEvent(
		events.WithType(events.TypeMemberJoined),
		events.WithActor(userID),
		events.WithGroup(groupID),
	))
}
