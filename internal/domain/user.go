package domain

import "time"

// User represents a user entity in the system. Profile fields are owned
// by an external account service; this core only references users.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the author snippet embedded in enriched article views.
type Profile struct {
	Username string  `json:"username"`
	Bio      string  `json:"bio"`
	Image    *string `json:"image,omitempty"`
}

// Profile returns the user's public profile snippet.
func (u User) Profile() Profile {
	return Profile{
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}
