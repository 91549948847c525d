package identityservice

// Role роль пользователя в системе
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User модель пользователя из IdentityService
type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	EmailVerified bool   `json:"email_verified"`
}

// IsAdmin returns true if the user has the elevated role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
