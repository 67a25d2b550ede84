package dto

type GroupItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Owner       UserRef      `json:"owner"`
	Members     []MemberItem `json:"members"`
	JoinCode    string       `json:"join_code"`
	IsPrivate   bool         `json:"is_private"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

type MemberItem struct {
	User     UserRef `json:"user"`
	Role     string  `json:"role"`
	JoinedAt string  `json:"joined_at"`
}

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	IsPrivate   bool   `json:"is_private"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsPrivate   *bool   `json:"is_private"`
}

type JoinGroupRequest struct {
	JoinCode string `json:"join_code" binding:"required"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type TransferOwnershipRequest struct {
	NewOwnerID string `json:"new_owner_id" binding:"required"`
}
