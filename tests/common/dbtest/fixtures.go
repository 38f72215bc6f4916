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

// TestPassword is the plain text behind the fixture password hash.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (lower(email)) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

// CreateTestRestaurant inserts a restaurant with the default customization.
func CreateTestRestaurant(t *testing.T, db DBLike, ownerID uuid.UUID, slug, name string) uuid.UUID {
	t.Helper()

	restaurantID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO restaurants (id, owner_id, slug, name) VALUES ($1, $2, $3, $4)",
		restaurantID, ownerID, slug, name)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO restaurant_customizations
		(restaurant_id, primary_color, secondary_color, accent_color, font_style)
		VALUES ($1, '#1F2937', '#F59E0B', '#10B981', 'modern')`, restaurantID)
	require.NoError(t, err)

	return restaurantID
}

// CreateTestOffer inserts an active offer valid on the given days and hours.
func CreateTestOffer(t *testing.T, db DBLike, restaurantID uuid.UUID, title string, days []int32, start, end string) uuid.UUID {
	t.Helper()

	offerID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO offers
		(id, restaurant_id, title_en, discount_percentage, valid_days, valid_hours_start, valid_hours_end, is_active)
		VALUES ($1, $2, $3, 10, $4, $5, $6, true)`,
		offerID, restaurantID, title, days, start, end)
	require.NoError(t, err)

	return offerID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table.
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
