package seed

import (
	"context"
	"testing"

	"github.com/smallbiznis/sitesapi/internal/site/domain"
	"github.com/smallbiznis/sitesapi/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSampleSitesIdempotent(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.UseType{}, &domain.Site{}, &domain.SiteUse{}))

	ctx := context.Background()
	require.NoError(t, EnsureSampleSites(ctx, conn))
	require.NoError(t, EnsureSampleSites(ctx, conn))

	var sites, uses, useTypes int64
	require.NoError(t, conn.Model(&domain.Site{}).Count(&sites).Error)
	require.NoError(t, conn.Model(&domain.SiteUse{}).Count(&uses).Error)
	require.NoError(t, conn.Model(&domain.UseType{}).Count(&useTypes).Error)

	assert.Equal(t, int64(len(sampleSites)), sites)
	assert.Equal(t, int64(len(sampleSiteUses)), uses)
	assert.Equal(t, int64(len(sampleUseTypes)), useTypes)
}

func TestEnsureSampleSitesKeepsExistingRows(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.UseType{}, &domain.Site{}, &domain.SiteUse{}))
	require.NoError(t, conn.Create(&domain.Site{ID: 1, Name: "Renamed", State: "CA"}).Error)

	require.NoError(t, EnsureSampleSites(context.Background(), conn))

	var site domain.Site
	require.NoError(t, conn.First(&site, 1).Error)
	assert.Equal(t, "Renamed", site.Name)
}

func TestEnsureSampleSitesRequiresHandle(t *testing.T) {
	require.Error(t, EnsureSampleSites(context.Background(), nil))
}

func TestSampleUsesReferenceKnownRows(t *testing.T) {
	siteIDs := map[int64]bool{}
	for _, s := range sampleSites {
		siteIDs[s.ID] = true
	}
	typeIDs := map[int64]bool{}
	for _, ut := range sampleUseTypes {
		typeIDs[ut.ID] = true
	}
	for _, use := range sampleSiteUses {
		assert.True(t, siteIDs[use.SiteID], "use %d site", use.ID)
		assert.True(t, typeIDs[use.UseTypeID], "use %d type", use.ID)
		assert.GreaterOrEqual(t, use.SizeSqft, int64(0))
	}
}
