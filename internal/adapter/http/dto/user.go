package dto

type UserItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Image       string       `json:"image,omitempty"`
	Role        string       `json:"role"`
	IsActive    bool         `json:"is_active"`
	LastLogin   *string      `json:"last_login,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

type Preferences struct {
	Theme       string `json:"theme"`
	NotifyEmail bool   `json:"notify_email"`
	NotifyPush  bool   `json:"notify_push"`
}

type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=60"`
	Image *string `json:"image" binding:"omitempty,max=255"`
}

type UpdatePreferencesRequest struct {
	Theme       *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	NotifyEmail *bool   `json:"notify_email"`
	NotifyPush  *bool   `json:"notify_push"`
}

type AdminUpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=60"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"is_active"`
}

type AdminResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

type UserActivity struct {
	Tasks  int `json:"tasks"`
	Notes  int `json:"notes"`
	Groups int `json:"groups"`
}
