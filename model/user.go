package model

import "time"

// User is a registered league member. Username is the identity used to
// key pick storage; Email must also be unique.
type User struct {
	Username     string
	Name         string
	Email        string
	PasswordHash string
	Created      time.Time
}

// DisplayName returns the name shown on leaderboards, falling back to
// the username when no full name was provided.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
