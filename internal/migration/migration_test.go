package migration

import (
	"context"
	"io/fs"
	"testing"

	"github.com/smallbiznis/sitesapi/internal/config"
	"github.com/smallbiznis/sitesapi/internal/site/domain"
	"github.com/smallbiznis/sitesapi/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEmbeddedMigrationsPaired(t *testing.T) {
	ups, err := fs.Glob(embeddedMigrations, migrationsDir+"/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(embeddedMigrations, migrationsDir+"/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestRunMigrationsRequiresHandle(t *testing.T) {
	require.Error(t, RunMigrations(nil))
}

func TestRunSqliteSeedsSampleSites(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)

	cfg := config.Config{DBType: "sqlite", SeedSampleData: true}
	require.NoError(t, Run(context.Background(), conn, cfg, zaptest.NewLogger(t)))
	// second run is a no-op
	require.NoError(t, Run(context.Background(), conn, cfg, zaptest.NewLogger(t)))

	var count int64
	require.NoError(t, conn.Model(&domain.Site{}).Count(&count).Error)
	assert.Equal(t, int64(6), count)
}

func TestRunWithoutSeed(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)

	require.NoError(t, Run(context.Background(), conn, config.Config{DBType: "sqlite"}, nil))

	var count int64
	require.NoError(t, conn.Model(&domain.Site{}).Count(&count).Error)
	assert.Zero(t, count)
}
