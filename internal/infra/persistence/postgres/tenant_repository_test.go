package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{DSN: "host=localhost dbname=foodtruck"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestClosedIDsQuery(t *testing.T) {
	db := newDryRunDB(t)
	after := uuid.New()

	tests := []struct {
		name      string
		after     uuid.UUID
		wantAfter bool
	}{
		{name: "first page", after: uuid.Nil},
		{name: "next page", after: after, wantAfter: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var ids []uuid.UUID

				return closedIDsQuery(tx, tt.after, 50).Pluck("id", &ids)
			})

			assert.Contains(t, sql, `schedule -> 'days' @> '[{"isClosed": true}]'`)
			assert.Contains(t, sql, `"tenants"."deleted_at" IS NULL`)
			assert.Contains(t, sql, "ORDER BY id")
			assert.Contains(t, sql, "LIMIT 50")
			if tt.wantAfter {
				assert.Contains(t, sql, after.String())
			} else {
				assert.NotContains(t, sql, "id >")
			}
		})
	}
}
