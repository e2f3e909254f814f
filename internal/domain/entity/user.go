package entity

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // "customer" or "worker"

	ProfileComplete bool     `json:"profile_complete"`
	ProfilePicture  string   `json:"profile_picture,omitempty"`
	Location        string   `json:"location,omitempty"`
	Skills          []string `json:"skills,omitempty"`

	AverageRating float64 `json:"average_rating,omitempty"`
	RatingCount   int     `json:"rating_count,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsWorker reports whether the account offers services.
func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}
