package apierrors

const (
	MsgInvalidPayload    = "invalidPayload"
	MsgInternalError     = "internalError"
	MsgUnauthorized      = "unauthorized"
	MsgForbidden         = "forbidden"
	MsgTooManyRequests   = "tooManyRequests"
	MsgEmailTaken        = "emailTaken"
	MsgInvalidCreds      = "invalidCredentials"
	MsgAccountDisabled   = "accountDisabled"
	MsgResetTokenInvalid = "resetTokenInvalid"
	MsgUserNotFound      = "userNotFound"
	MsgUserOwnsGroups    = "userOwnsGroups"
	MsgGroupNotFound     = "groupNotFound"
	MsgInvalidJoinCode   = "invalidJoinCode"
	MsgAlreadyMember     = "alreadyMember"
	MsgNotAMember        = "notAMember"
	MsgCannotRemoveOwner = "cannotRemoveOwner"
	MsgGroupConflict     = "groupConflict"
	MsgTaskNotFound      = "taskNotFound"
	MsgNoteNotFound      = "noteNotFound"
	MsgProjectNotFound   = "projectNotFound"
	MsgAssistantDown     = "assistantUnavailable"
)
