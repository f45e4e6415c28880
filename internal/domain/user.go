package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Role is the closed set of account kinds. The zero value is not a valid role.
type Role string

const (
	RoleRequester Role = "requester"
	RoleVolunteer Role = "volunteer"
)

// ParseRole converts external input into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleRequester:
		return RoleRequester, nil
	case RoleVolunteer:
		return RoleVolunteer, nil
	default:
		return "", fmt.Errorf("%w: role must be %q or %q", ErrValidation, RoleRequester, RoleVolunteer)
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleRequester || r == RoleVolunteer
}

// User represents a registered account.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	Region       *string   `json:"region"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated principal attached to a request context.
type Actor struct {
	ID    int64
	Email string
	Role  Role
}

// Actor returns the principal view of the user.
func (u User) Actor() Actor {
	return Actor{ID: u.ID, Email: u.Email, Role: u.Role}
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Name    string
	Phone   *string
	Address *string
	City    *string
	Region  *string
}

// Column limits shared by accounts and requests.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 100
	MaxPhoneLength   = 20
	MaxAddressLength = 255
	MaxPlaceLength   = 100
)

// Validate checks the profile fields against their column limits. Name must
// already be trimmed.
func (p ProfileUpdate) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := checkLength("name", p.Name, MaxNameLength); err != nil {
		return err
	}
	for _, f := range []struct {
		field string
		value *string
		max   int
	}{
		{"phone", p.Phone, MaxPhoneLength},
		{"address", p.Address, MaxAddressLength},
		{"city", p.City, MaxPlaceLength},
		{"region", p.Region, MaxPlaceLength},
	} {
		if f.value == nil {
			continue
		}
		if err := checkLength(f.field, *f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrValidation, field, max)
	}
	return nil
}
