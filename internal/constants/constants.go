package constants

// Session and context keys
const (
	SessionCookieName  = "thunder_session"
	SessionRefreshedAt = "refreshed_at"
	ContextKeyUserID   = "user_id"
	ContextKeyProfile  = "profile"
)

// Validation limits
const (
	MinPasswordLength = 6
	MinFullNameLength = 2
	MaxAvatarBytes    = 5 << 20
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Dashboard charts
const (
	TopCategoryLimit = 10
	TrailingDays     = 7
)
