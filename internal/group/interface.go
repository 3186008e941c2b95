package group

import (
	"context"

	"github.com/fkhayef/splitbill/internal/user"
)

//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go

// Store persists groups and their memberships.
type Store interface {
	// Create inserts the group and the creator's ADMIN/JOINED membership atomically.
	Create(ctx context.Context, req *CreateGroupRequest, creatorID int64, inviteCode string) (*Group, error)
	GetByID(ctx context.Context, id int64) (*Group, error)
	GetByInviteCode(ctx context.Context, code string) (*Group, error)
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*Group, int, error)
	Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error)
	SetArchived(ctx context.Context, id int64, archived bool) (*Group, error)
	Delete(ctx context.Context, id int64) error

	AddMember(ctx context.Context, groupID, userID int64, role MemberRole, status MemberStatus) (*GroupMember, error)
	GetMember(ctx context.Context, groupID, userID int64) (*GroupMember, error)
	GetMembers(ctx context.Context, groupID int64) ([]*GroupMember, error)
	UpdateMemberStatus(ctx context.Context, groupID, userID int64, status MemberStatus) (*GroupMember, error)
	RemoveMember(ctx context.Context, groupID, userID int64) error
	TransferOwnership(ctx context.Context, groupID, fromUserID, toUserID int64) (*Group, error)
}

// Notifier sends in-app notifications about group activity.
type Notifier interface {
	NotifyGroupInvite(ctx context.Context, recipientID int64, groupName string, groupID int64) error
}

// UserLookup resolves invited users.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}
