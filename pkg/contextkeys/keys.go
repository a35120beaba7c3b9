package contextkeys

type contextKey string

const (
	UserIDKey     contextKey = "UserID"
	UserEmailKey  contextKey = "UserEmail"
	UserNameKey   contextKey = "UserName"
	UserRoleKey   contextKey = "UserRole"
	UserTeamIDKey contextKey = "UserTeamID"
)
