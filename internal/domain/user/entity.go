package user

import (
	"strings"
	"time"

	"court-booking/internal/pkg/ident"
)

// User is either password-backed (registered) or externally authenticated,
// in which case passwordHash is nil.
type User struct {
	id           string
	email        Email
	phone        string
	name         string
	picture      *string
	language     Language
	role         Role
	passwordHash *string
	createdAt    time.Time
}

type Registration struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Language string
}

// NewRegisteredUser validates the registration and expects the password to be hashed by the caller.
func NewRegisteredUser(reg Registration, hash func(string) (string, error), now time.Time) (*User, error) {
	creds, err := NewCredentials(reg.Email, reg.Password)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(reg.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	lang, err := NewLanguage(reg.Language)
	if err != nil {
		return nil, err
	}
	hashed, err := hash(creds.Password().Value())
	if err != nil {
		return nil, err
	}

	return &User{
		id:           ident.New(ident.PrefixUser),
		email:        creds.Email(),
		phone:        strings.TrimSpace(reg.Phone),
		name:         name,
		language:     lang,
		role:         RoleUser,
		passwordHash: &hashed,
		createdAt:    now,
	}, nil
}

// NewExternalUser is created on the first login through the identity provider.
func NewExternalUser(email, name string, picture *string, now time.Time) (*User, error) {
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = e.Value()
	}
	return &User{
		id:        ident.New(ident.PrefixUser),
		email:     e,
		name:      name,
		picture:   picture,
		language:  LanguageArabic,
		role:      RoleUser,
		createdAt: now,
	}, nil
}

func ReconstructUser(
	id string,
	email Email,
	phone, name string,
	picture *string,
	language Language,
	role Role,
	passwordHash *string,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		phone:        phone,
		name:         name,
		picture:      picture,
		language:     language,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (u *User) ID() string            { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Phone() string         { return u.phone }
func (u *User) Name() string          { return u.name }
func (u *User) Picture() *string      { return u.picture }
func (u *User) Language() Language    { return u.language }
func (u *User) Role() Role            { return u.role }
func (u *User) PasswordHash() *string { return u.passwordHash }
func (u *User) CreatedAt() time.Time  { return u.createdAt }

func (u *User) IsExternallyManaged() bool {
	return u.passwordHash == nil
}
