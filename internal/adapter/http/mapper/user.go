package mapper

import (
	"time"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(&user))
	}
	return items
}

// ToUserItem never exposes credential material; password hashes and reset
// tokens stay server-side.
func ToUserItem(user *domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Image:    user.Image,
		Role:     string(user.Role),
		IsActive: user.IsActive,
		Preferences: &dto.Preferences{
			Theme:       user.Preferences.Theme,
			NotifyEmail: user.Preferences.NotifyEmail,
			NotifyPush:  user.Preferences.NotifyPush,
		},
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}

	if user.LastLogin != nil {
		value := user.LastLogin.Format(time.RFC3339)
		item.LastLogin = &value
	}

	return item
}

func ToUserRef(ref domain.UserRef) dto.UserRef {
	return dto.UserRef{ID: ref.ID, Name: ref.Name, Email: ref.Email}
}

func ToUserActivity(activity *domain.UserActivity) dto.UserActivity {
	return dto.UserActivity{Tasks: activity.Tasks, Notes: activity.Notes, Groups: activity.Groups}
}
