package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/smallbiznis/sitesapi/internal/cache"
	"github.com/smallbiznis/sitesapi/internal/config"
	"github.com/smallbiznis/sitesapi/internal/site/domain"
	"github.com/smallbiznis/sitesapi/internal/site/domain/domainmock"
	"github.com/smallbiznis/sitesapi/internal/site/repository"
	"github.com/smallbiznis/sitesapi/internal/seed"
	"github.com/smallbiznis/sitesapi/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

var (
	office = domain.UseType{ID: 54, Name: "Office"}
	home   = domain.UseType{ID: 2, Name: "Home"}
)

func santaSite() domain.Site {
	return domain.Site{
		ID: 1, Name: "Santa's Workshop", Address: "1 Candy Cane Ln", City: "North Pole", State: "AK", Zipcode: "99705",
		SiteUses: []domain.SiteUse{
			{ID: 1, SiteID: 1, SizeSqft: 2000, UseTypeID: office.ID, UseType: office},
			{ID: 2, SiteID: 1, SizeSqft: 900, UseTypeID: home.ID, UseType: home},
			{ID: 3, SiteID: 1, SizeSqft: 5000, UseTypeID: office.ID, UseType: office},
		},
	}
}

func newTestService(t *testing.T, repo domain.Repository, siteCache *cache.SiteCache) domain.Service {
	t.Helper()
	return New(Params{
		Log:   zaptest.NewLogger(t),
		Repo:  repo,
		Cache: siteCache,
	})
}

func TestGetByIDAggregates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domainmock.NewMockRepository(ctrl)
	site := santaSite()
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(&site, nil)

	resp, err := newTestService(t, repo, nil).GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(7900), resp.TotalSize)
	require.NotNil(t, resp.PrimaryType)
	assert.Equal(t, domain.UseTypeResponse{ID: 54, Name: "Office"}, *resp.PrimaryType)
	assert.Equal(t, "North Pole", resp.City)
}

func TestGetByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domainmock.NewMockRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(999)).Return(nil, nil)

	resp, err := newTestService(t, repo, nil).GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetByIDStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domainmock.NewMockRepository(ctrl)
	storeErr := errors.New("connection refused")
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(nil, storeErr)

	resp, err := newTestService(t, repo, nil).GetByID(context.Background(), 1)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, storeErr)
}

func TestListRoutesByStatePresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domainmock.NewMockRepository(ctrl)
	svc := newTestService(t, repo, nil)
	ctx := context.Background()

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Site{santaSite(), {ID: 2}}, nil)
	all, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(7900), all[0].TotalSize)
	assert.Nil(t, all[1].PrimaryType)

	empty := ""
	repo.EXPECT().ListByState(gomock.Any(), gomock.Any(), "").Return(nil, nil)
	none, err := svc.List(ctx, domain.ListRequest{State: &empty})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListStoreErrorReturnsNoPartialResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domainmock.NewMockRepository(ctrl)
	storeErr := errors.New("timeout")
	fl := "FL"
	repo.EXPECT().ListByState(gomock.Any(), gomock.Any(), "FL").Return([]domain.Site{santaSite()}, storeErr)

	resp, err := newTestService(t, repo, nil).List(context.Background(), domain.ListRequest{State: &fl})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, storeErr)
}

func TestCacheHitSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domainmock.NewMockRepository(ctrl)
	holder := config.NewStaticCacheConfigHolder(config.SiteCacheSettings{Enabled: true, TTL: time.Minute})
	siteCache := cache.NewSiteCache(cache.NewMemoryStore(), holder, zaptest.NewLogger(t))
	svc := newTestService(t, repo, siteCache)
	ctx := context.Background()

	site := santaSite()
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(&site, nil).Times(1)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Site{site}, nil).Times(1)

	for i := 0; i < 3; i++ {
		resp, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(7900), resp.TotalSize)

		items, err := svc.List(ctx, domain.ListRequest{})
		require.NoError(t, err)
		assert.Len(t, items, 1)
	}
}

func TestServiceAgainstSeededStore(t *testing.T) {
	conn := seededDB(t)
	svc := New(Params{DB: conn, Log: zaptest.NewLogger(t), Repo: repository.Provide()})
	ctx := context.Background()

	cases := []struct {
		id      int64
		total   int64
		primary domain.UseTypeResponse
	}{
		{id: 1, total: 13000, primary: domain.UseTypeResponse{ID: 54, Name: "Office"}},
		{id: 2, total: 65000, primary: domain.UseTypeResponse{ID: 40, Name: "Movie Theater"}},
		{id: 5, total: 1050000, primary: domain.UseTypeResponse{ID: 37, Name: "Casino"}},
		{id: 6, total: 560000, primary: domain.UseTypeResponse{ID: 47, Name: "Open Stadium"}},
	}
	for _, tc := range cases {
		resp, err := svc.GetByID(ctx, tc.id)
		require.NoError(t, err)
		require.NotNil(t, resp, "site %d", tc.id)
		assert.Equal(t, tc.total, resp.TotalSize, "site %d", tc.id)
		require.NotNil(t, resp.PrimaryType)
		assert.Equal(t, tc.primary, *resp.PrimaryType, "site %d", tc.id)
	}

	ca := "CA"
	items, err := svc.List(ctx, domain.ListRequest{State: &ca})
	require.NoError(t, err)
	assert.Len(t, items, 5)

	all, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.UseType{}, &domain.Site{}, &domain.SiteUse{}))
	require.NoError(t, seed.EnsureSampleSites(context.Background(), conn))
	return conn
}
