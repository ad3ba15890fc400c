package postgres

import (
	"testing"

	"shopseva/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=shopseva dbname=shopseva sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func TestSummaryScope_SkipsImagesAndText(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []*model.ShopModel

		return tx.Scopes(summaryScope).Order("created_at DESC").Find(&rows)
	})

	assert.Contains(t, sql, `"is_approved"`)
	assert.Contains(t, sql, `"district"`)
	assert.NotContains(t, sql, "images")
	assert.NotContains(t, sql, "address")
	assert.NotContains(t, sql, "*")
}
