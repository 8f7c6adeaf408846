package models

// Role is the access level of a user
type Role int

// Role constants; RoleMiddleware compares them with >=
const (
	RoleUser    Role = 1
	RoleTeacher Role = 2
	RoleAdmin   Role = 3
)

// RoleNames maps the wire names of roles to their values
var RoleNames = map[string]Role{
	"USER":    RoleUser,
	"TEACHER": RoleTeacher,
	"ADMIN":   RoleAdmin,
}

// String returns the wire name of the role
func (r Role) String() string {
	for name, role := range RoleNames {
		if role == r {
			return name
		}
	}
	return "USER"
}

// User represents a user in the system
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"omitempty,oneof=USER TEACHER ADMIN"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse holds issued tokens
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
