package user

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest payload of POST /auth/register.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"       example:"Ana Torres"`
	Email    string `json:"email"    validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
	Phone    string `json:"phone"    validate:"required"       example:"+57 300 000 0000"`
	Address  string `json:"address"  validate:"required"       example:"Calle 10 #20-30"`
}

// LoginRequest payload of POST /auth/login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest payload of PUT /auth/profile; empty fields are left as they are.
// swagger:model ProfileRequest
type ProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
