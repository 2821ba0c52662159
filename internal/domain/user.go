package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles dos usuários do sistema
const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleSeller  = 3
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName retorna o nome de exibição do usuário
func (u *User) FullName() string {
	return u.Name + " " + u.Lastname
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}
