// Package user holds the account aggregate. Authentication mechanics
// (hashing, token issuance) live in the application and infrastructure
// layers; the aggregate only stores the resulting state.
package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "github.com/digitalcoban/coban/internal/domain/user/valueobjects"
)

// User represents the account aggregate root.
type User struct {
	id           uint
	uuid         string
	username     string
	email        *vo.Email
	phone        string
	address      string
	passwordHash string
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with a generated public UUID. The password
// hash must already be computed by the caller.
func NewUser(username string, email *vo.Email, passwordHash string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		uuid:         uuid.NewString(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// UserReconstructParams carries persisted user state back into the domain.
type UserReconstructParams struct {
	ID           uint
	UUID         string
	Username     string
	Email        *vo.Email
	Phone        string
	Address      string
	PasswordHash string
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(p UserReconstructParams) (*User, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if p.Email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           p.ID,
		uuid:         p.UUID,
		username:     p.Username,
		email:        p.Email,
		phone:        p.Phone,
		address:      p.Address,
		passwordHash: p.PasswordHash,
		version:      p.Version,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

// ID returns the user ID
func (u *User) ID() uint {
	return u.id
}

// UUID returns the public identifier
func (u *User) UUID() string {
	return u.uuid
}

// Username returns the display name
func (u *User) Username() string {
	return u.username
}

// Email returns the email value object
func (u *User) Email() *vo.Email {
	return u.email
}

// Phone returns the contact phone number
func (u *User) Phone() string {
	return u.phone
}

// Address returns the billing address
func (u *User) Address() string {
	return u.address
}

// PasswordHash returns the stored bcrypt hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Version returns the aggregate version
func (u *User) Version() int {
	return u.version
}

// CreatedAt returns when the user registered
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(newID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = newID
	return nil
}

// UpdateContact replaces the contact details used in gateway requests.
func (u *User) UpdateContact(phone, address string) {
	u.phone = phone
	u.address = address
	u.updatedAt = time.Now().UTC()
	u.version++
}
