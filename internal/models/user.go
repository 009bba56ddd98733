package models

import (
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Verified     bool
	Address      string
	Avatar       *Image
	IsAdmin      bool
	IsActive     bool
	Premium      PremiumStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PremiumStatus lifts the monthly listing limit while IsAvailable is set.
type PremiumStatus struct {
	Subscription string     `json:"subscription"`
	RegisteredAt *time.Time `json:"registeredAt,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	IsAvailable  bool       `json:"isAvailable"`
}

// Profile is the public view of a user shown to other users.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

func (u *User) Profile() Profile {
	p := Profile{ID: u.ID, Name: u.Name}
	if u.Avatar != nil {
		p.Avatar = u.Avatar.URL
	}
	return p
}

// Image is a file stored on the media host.
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
