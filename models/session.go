package models

// UserRole is the coarse role attached to a session.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// UserSession is the single active session record. It is overwritten on
// login and erased on logout.
type UserSession struct {
	SessionID  string   `json:"sessionId"`
	Email      string   `json:"email"`
	Role       UserRole `json:"role"`
	IsLoggedIn bool     `json:"isLoggedIn"`
}
