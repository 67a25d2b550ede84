package ports

import (
	"context"

	"github.com/nisargamalap/gridle/internal/core/domain"
)

type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	GetByJoinCode(ctx context.Context, code string) (*domain.Group, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Group, error)
	List(ctx context.Context, search string, page, perPage int) ([]domain.Group, int, error)
	// Update persists the whole aggregate (metadata, owner, roster) guarded
	// by the group's version counter. Returns domain.ErrVersionConflict when
	// the stored version no longer matches.
	Update(ctx context.Context, group *domain.Group) error
	// Delete removes the group together with every task and note that
	// references it, in one transaction.
	Delete(ctx context.Context, id string) error
}

type GroupService interface {
	Create(ctx context.Context, in domain.CreateGroupInput) (*domain.Group, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Group, error)
	Get(ctx context.Context, groupID, userID string) (*domain.Group, error)
	Members(ctx context.Context, groupID, userID string) ([]domain.GroupMember, error)
	JoinByCode(ctx context.Context, code, userID string) (*domain.Group, error)
	Update(ctx context.Context, groupID, actorID string, in domain.UpdateGroupInput) (*domain.Group, error)
	// Delete is the owner path: only the group's owner (not admin-role
	// members) may call it.
	Delete(ctx context.Context, groupID, actorID string) error

	// Admin surface.
	List(ctx context.Context, search string, page, perPage int) ([]domain.Group, int, error)
	AddMember(ctx context.Context, groupID, userID string) (*domain.Group, error)
	RemoveMember(ctx context.Context, groupID, userID string) (*domain.Group, error)
	TransferOwnership(ctx context.Context, groupID, newOwnerID string) (*domain.Group, error)
	AdminUpdate(ctx context.Context, groupID string, in domain.UpdateGroupInput) (*domain.Group, error)
	AdminDelete(ctx context.Context, groupID string) error
}
