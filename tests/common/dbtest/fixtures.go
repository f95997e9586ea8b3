//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"salon-booking-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain-text password every fixture user gets.
const TestPassword = "password123"

var (
	hashOnce         sync.Once
	testPasswordHash string
)

// bcrypt is deliberately slow; hash the fixture password once per process.
func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		if err != nil {
			panic(err)
		}
		testPasswordHash = h
	})
	return testPasswordHash
}

// DefaultWeeklyHours matches a typical salon: open weekdays and Saturday,
// closed Sunday.
func DefaultWeeklyHours() map[string]string {
	return map[string]string{
		"monday":    "9:00 AM - 5:00 PM",
		"tuesday":   "9:00 AM - 5:00 PM",
		"wednesday": "9:00 AM - 5:00 PM",
		"thursday":  "9:00 AM - 5:00 PM",
		"friday":    "9:00 AM - 5:00 PM",
		"saturday":  "10:00 AM - 2:00 PM",
		"sunday":    "closed",
	}
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestSalon(t *testing.T, db DBLike, name string, hours map[string]string) uuid.UUID {
	t.Helper()

	salonID := uuid.New()
	ctx := context.Background()

	hoursJSON, err := json.Marshal(hours)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO salons (id, name, hours) VALUES ($1, $2, $3)",
		salonID, name, hoursJSON)
	require.NoError(t, err)

	return salonID
}

func CreateTestStaff(t *testing.T, db DBLike, salonID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO staff (id, salon_id, name) VALUES ($1, $2, $3)",
		staffID, salonID, name)
	require.NoError(t, err)

	return staffID
}

// CreateTestService inserts a catalog service and links it to the salon.
func CreateTestService(t *testing.T, db DBLike, salonID uuid.UUID, name string, durationMin, priceCents int32) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO services (id, name, duration_min, price_cents) VALUES ($1, $2, $3, $4)",
		serviceID, name, durationMin, priceCents)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO salon_services (salon_id, service_id) VALUES ($1, $2)",
		salonID, serviceID)
	require.NoError(t, err)

	return serviceID
}

// SeedReferenceData is a hook for data every test database needs; the booking
// schema has no global reference tables, so it is currently a no-op.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
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
