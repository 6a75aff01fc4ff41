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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, dni, tier string, balanceCents int64) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, dni, name, surname, password_hash, tier, balance_cents) VALUES ($1, $2, 'Test', 'User', $3, $4, $5) ON CONFLICT (dni) DO NOTHING",
		userID, dni, testPasswordHash, tier, balanceCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE dni = $1", dni).Scan(&userID)
	}

	return userID
}

func CreateTestCompany(t *testing.T, db DBLike, name, address string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO companies (id, name, address, opening_hour, closing_hour) VALUES ($1, $2, $3, '09:00', '22:00') ON CONFLICT (name) DO NOTHING",
		companyID, name, address)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", name).Scan(&companyID)
	}

	return companyID
}

func CreateTestCourt(t *testing.T, db DBLike, companyID uuid.UUID) uuid.UUID {
	t.Helper()

	courtID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO courts (id, company_id, surface, indoor) VALUES ($1, $2, 'crystal', true)",
		courtID, companyID)
	require.NoError(t, err)

	return courtID
}

// returns any court from the seeded reference data
func FirstCourtID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var courtID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM courts ORDER BY created_at LIMIT 1").Scan(&courtID)
	require.NoError(t, err)
	return courtID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO companies (id, name, address, opening_hour, closing_hour) VALUES
		    (gen_random_uuid(), 'Padel Central', 'Calle Mayor 1, 28013 Madrid', '09:00', '22:00'),
		    (gen_random_uuid(), 'Club Norte', 'Avenida Norte 5, 28036 Madrid', '08:00', '23:00')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO courts (id, company_id, surface, indoor)
		SELECT gen_random_uuid(), c.id, s.surface, s.indoor
		FROM companies c
		CROSS JOIN (VALUES ('crystal', true), ('concrete', false)) AS s(surface, indoor)
		WHERE NOT EXISTS (SELECT 1 FROM courts WHERE courts.company_id = c.id);
	`)
	if err != nil {
		return err
	}

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
