package models

import (
	"time"

	"backend/internal/utils"
)

// User is a registered account. PasswordHash never leaves the process.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        *string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
}

// APIUser is the wire representation of a User.
type APIUser struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

func (u User) API() APIUser {
	return APIUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: utils.FormatAPITime(u.CreatedAt),
	}
}
