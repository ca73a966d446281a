package domain

import "time"

// Identity is the authenticated principal. It carries credentials only;
// display data lives on Profile.
type Identity struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Profile is the application-level user record. Its ID equals the owning
// identity's ID.
type Profile struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	FullName  string    `json:"full_name" bson:"full_name"`
	Role      Role      `json:"role" bson:"role"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// IsAdmin reports whether the profile holds the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && ParseRole(string(p.Role)) == RoleAdmin
}
