//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/pkg/ident"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword matches TestPasswordHash.
const TestPassword = "password123"

// bcrypt hash of TestPassword
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) string {
	t.Helper()

	userID := ident.New(ident.PrefixUser)
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (user_id, email, name, role, password_hash)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING`,
		userID, strings.ToLower(email), "Test Player", role, TestPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT user_id FROM users WHERE email = $1", strings.ToLower(email)).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreatePaidBooking inserts a confirmed and paid booking, bypassing checkout.
func CreatePaidBooking(t *testing.T, db DBLike, userID, courtID, date, timeSlot string) string {
	t.Helper()

	bookingID := ident.New(ident.PrefixBooking)
	_, err := db.Exec(context.Background(), `INSERT INTO bookings
		(booking_id, user_id, court_id, booking_date, time_slot, price_minor, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, 10000, 'confirmed', 'paid')`,
		bookingID, userID, courtID, date, timeSlot)
	require.NoError(t, err)
	return bookingID
}

// SeedReferenceData inserts the default court catalog.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, c := range court.DefaultCatalog(time.Now()) {
		_, err := pool.Exec(ctx, `
			INSERT INTO courts (court_id, name_ar, name_en, type, description_ar, description_en, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (court_id) DO NOTHING`,
			c.ID(), c.Name().Ar, c.Name().En, c.Category().String(),
			c.Description().Ar, c.Description().En, c.ImageURL())
		if err != nil {
			return err
		}
	}
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
