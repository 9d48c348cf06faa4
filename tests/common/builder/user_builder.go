//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/user"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/ident"
	"court-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// FakeHash stands in for bcrypt in domain tests.
func FakeHash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

type UserBuilder struct {
	ID       string
	Email    string
	Password string
	Name     string
	Phone    string
	Language string
	Role     string
	External bool
	Now      time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       ident.New(ident.PrefixUser),
		Email:    "player@example.com",
		Password: "password123",
		Name:     "Test Player",
		Phone:    "+971500000000",
		Language: "en",
		Role:     "user",
		Now:      time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewRegisteredUser(user.Registration{
		Email:    u.Email,
		Password: u.Password,
		Name:     u.Name,
		Phone:    u.Phone,
		Language: u.Language,
	}, FakeHash, u.Now)
}

// BuildReconstructed skips validation and keeps the builder's id and role.
func (u *UserBuilder) BuildReconstructed() *user.User {
	email, _ := user.NewEmail(u.Email)
	var hash *string
	if !u.External {
		h, _ := FakeHash(u.Password)
		hash = &h
	}
	return user.ReconstructUser(u.ID, email, u.Phone, u.Name, nil,
		user.Language(u.Language), user.Role(u.Role), hash, u.Now)
}

func (u *UserBuilder) BuildInfra() query.User {
	row := query.User{
		UserID:    u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		Name:      u.Name,
		Language:  u.Language,
		Role:      u.Role,
		CreatedAt: pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
	if !u.External {
		h, _ := FakeHash(u.Password)
		row.PasswordHash = pgtype.Text{String: h, Valid: true}
	}
	return row
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		Name:      u.Name,
		Language:  u.Language,
		Role:      u.Role,
		CreatedAt: u.Now,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	phone := u.Phone
	language := u.Language
	return reqdto.RegisterRequest{
		Email:    u.Email,
		Password: u.Password,
		Name:     u.Name,
		Phone:    &phone,
		Language: &language,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithLanguage(language string) *UserBuilder {
	u.Language = language
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsExternal() *UserBuilder {
	u.External = true
	return u
}
