package converter

import (
	"court-booking/internal/domain/session"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra/query"
	"court-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) query.CreateUserParams {
	return query.CreateUserParams{
		UserID:       u.ID(),
		Email:        u.Email().Value(),
		Phone:        u.Phone(),
		Name:         u.Name(),
		Picture:      pgconv.StringPtrToPgtype(u.Picture()),
		Language:     u.Language().String(),
		Role:         u.Role().String(),
		PasswordHash: pgconv.StringPtrToPgtype(u.PasswordHash()),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

// UserFromRow rejects rows whose email, role or language no longer validate.
func UserFromRow(row query.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	lang, err := user.NewLanguage(row.Language)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.UserID,
		email,
		row.Phone,
		row.Name,
		pgconv.StringPtrFromPgtype(row.Picture),
		lang,
		role,
		pgconv.StringPtrFromPgtype(row.PasswordHash),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func SessionToCreateParams(s *session.Session) query.CreateSessionParams {
	return query.CreateSessionParams{
		SessionToken: s.Token(),
		UserID:       s.UserID(),
		ExpiresAt:    pgconv.TimeToPgtype(s.ExpiresAt()),
		CreatedAt:    pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SessionFromRow(row query.UserSession) *session.Session {
	return session.ReconstructSession(
		row.SessionToken,
		row.UserID,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
