package mapper

import (
	"time"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/core/domain"
)

func ToGroupItems(groups []domain.Group) []dto.GroupItem {
	items := make([]dto.GroupItem, 0, len(groups))
	for i := range groups {
		items = append(items, ToGroupItem(&groups[i]))
	}
	return items
}

func ToGroupItem(group *domain.Group) dto.GroupItem {
	return dto.GroupItem{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		Owner:       ToUserRef(group.Owner),
		Members:     ToMemberItems(group.Members),
		JoinCode:    group.JoinCode,
		IsPrivate:   group.IsPrivate,
		CreatedAt:   group.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   group.UpdatedAt.Format(time.RFC3339),
	}
}

func ToMemberItems(members []domain.GroupMember) []dto.MemberItem {
	items := make([]dto.MemberItem, 0, len(members))
	for _, member := range members {
		items = append(items, dto.MemberItem{
			User:     ToUserRef(member.User),
			Role:     string(member.Role),
			JoinedAt: member.JoinedAt.Format(time.RFC3339),
		})
	}
	return items
}
