package service

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

const joinCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// mutationRetries bounds both the join-code collision retry on create and the
// reload-and-retry loop around version conflicts on roster mutations.
const mutationRetries = 3

// GroupService owns the group membership model: join codes, the member
// roster, role assignment, and ownership transfer. Every roster mutation is a
// load / apply / compare-and-swap cycle, so two concurrent mutations of the
// same group serialize instead of overwriting each other.
type GroupService struct {
	groups ports.GroupRepository
	users  ports.UserRepository
	now    func() time.Time
}

var _ ports.GroupService = (*GroupService)(nil)

func NewGroupService(groups ports.GroupRepository, users ports.UserRepository) *GroupService {
	return &GroupService{groups: groups, users: users, now: time.Now}
}

func (s *GroupService) Create(ctx context.Context, in domain.CreateGroupInput) (*domain.Group, error) {
	owner, err := s.users.GetByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	group := &domain.Group{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Owner:       owner.Ref(),
		IsPrivate:   in.IsPrivate,
		Members: []domain.GroupMember{
			{User: owner.Ref(), Role: domain.MemberRoleAdmin, JoinedAt: s.now()},
		},
	}

	for attempt := 0; attempt < mutationRetries; attempt++ {
		group.JoinCode, err = generateJoinCode()
		if err != nil {
			return nil, err
		}

		err = s.groups.Create(ctx, group)
		if err == nil {
			return s.groups.GetByID(ctx, group.ID)
		}
		if !errors.Is(err, domain.ErrJoinCodeTaken) {
			return nil, err
		}
	}
	return nil, domain.ErrJoinCodeTaken
}

func (s *GroupService) ListForUser(ctx context.Context, userID string) ([]domain.Group, error) {
	return s.groups.ListForUser(ctx, userID)
}

// Get returns the group only when userID belongs to it; everyone else sees
// NotFound, the same as a group that does not exist.
func (s *GroupService) Get(ctx context.Context, groupID, userID string) (*domain.Group, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.Owner.ID != userID && !group.HasMember(userID) {
		return nil, domain.ErrGroupNotFound
	}
	return group, nil
}

func (s *GroupService) Members(ctx context.Context, groupID, userID string) ([]domain.GroupMember, error) {
	group, err := s.Get(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	return group.Members, nil
}

func (s *GroupService) JoinByCode(ctx context.Context, code, userID string) (*domain.Group, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	group, err := s.groups.GetByJoinCode(ctx, code)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, group.ID, func(g *domain.Group) error {
		return g.AddMember(user.Ref(), domain.MemberRoleMember, s.now())
	})
}

func (s *GroupService) AddMember(ctx context.Context, groupID, userID string) (*domain.Group, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, groupID, func(g *domain.Group) error {
		return g.AddMember(user.Ref(), domain.MemberRoleMember, s.now())
	})
}

func (s *GroupService) RemoveMember(ctx context.Context, groupID, userID string) (*domain.Group, error) {
	return s.mutate(ctx, groupID, func(g *domain.Group) error {
		return g.RemoveMember(userID)
	})
}

func (s *GroupService) TransferOwnership(ctx context.Context, groupID, newOwnerID string) (*domain.Group, error) {
	if _, err := s.users.GetByID(ctx, newOwnerID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, groupID, func(g *domain.Group) error {
		return g.TransferOwnership(newOwnerID)
	})
}

func (s *GroupService) Update(ctx context.Context, groupID, actorID string, in domain.UpdateGroupInput) (*domain.Group, error) {
	return s.mutate(ctx, groupID, func(g *domain.Group) error {
		if !g.IsAdmin(actorID) {
			return domain.ErrForbidden
		}
		applyGroupPatch(g, in)
		return nil
	})
}

// Delete is the owner path: only the owner reference itself may delete, not
// admin-role members. The cascade to tasks and notes happens in the
// repository transaction.
func (s *GroupService) Delete(ctx context.Context, groupID, actorID string) error {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.Owner.ID != actorID {
		return domain.ErrForbidden
	}
	return s.groups.Delete(ctx, groupID)
}

func (s *GroupService) List(ctx context.Context, search string, page, perPage int) ([]domain.Group, int, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	return s.groups.List(ctx, search, page, perPage)
}

func (s *GroupService) AdminUpdate(ctx context.Context, groupID string, in domain.UpdateGroupInput) (*domain.Group, error) {
	return s.mutate(ctx, groupID, func(g *domain.Group) error {
		applyGroupPatch(g, in)
		return nil
	})
}

func (s *GroupService) AdminDelete(ctx context.Context, groupID string) error {
	return s.groups.Delete(ctx, groupID)
}

// mutate runs one load / apply / CAS-update cycle, reloading and retrying a
// bounded number of times when another request won the version race.
func (s *GroupService) mutate(ctx context.Context, groupID string, apply func(*domain.Group) error) (*domain.Group, error) {
	for attempt := 0; attempt < mutationRetries; attempt++ {
		group, err := s.groups.GetByID(ctx, groupID)
		if err != nil {
			return nil, err
		}
		if err := apply(group); err != nil {
			return nil, err
		}

		err = s.groups.Update(ctx, group)
		if err == nil {
			return group, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, err
		}
	}
	return nil, domain.ErrVersionConflict
}

func applyGroupPatch(g *domain.Group, in domain.UpdateGroupInput) {
	if in.Name != nil {
		g.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		g.Description = *in.Description
	}
	if in.IsPrivate != nil {
		g.IsPrivate = *in.IsPrivate
	}
}

func generateJoinCode() (string, error) {
	buf := make([]byte, domain.JoinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}
