package service

import (
	"context"
	"fmt"

	"github.com/smallbiznis/sitesapi/internal/cache"
	"github.com/smallbiznis/sitesapi/internal/observability/metrics"
	"github.com/smallbiznis/sitesapi/internal/observability/tracing"
	"github.com/smallbiznis/sitesapi/internal/site/domain"
	"github.com/smallbiznis/sitesapi/internal/site/rollup"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	endpointGet  = "site.get"
	endpointList = "site.list"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Repo         domain.Repository
	Cache        *cache.SiteCache      `optional:"true"`
	Metrics      *metrics.Metrics      `optional:"true"`
	StoreMetrics *metrics.StoreMetrics `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	repo         domain.Repository
	cache        *cache.SiteCache
	metrics      *metrics.Metrics
	storeMetrics *metrics.StoreMetrics
	tracer       trace.Tracer
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("site.service"),
		repo:         p.Repo,
		cache:        p.Cache,
		metrics:      p.Metrics,
		storeMetrics: p.StoreMetrics,
		tracer:       otel.Tracer("sites/site.service"),
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Response, error) {
	ctx, span := s.tracer.Start(ctx, endpointGet, trace.WithAttributes(attribute.Int64("site.id", id)))
	defer span.End()

	if s.cache.Enabled() {
		cached, ok := s.cache.GetSite(ctx, id)
		s.metrics.RecordCacheLookup(ctx, endpointGet, ok)
		if ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
	}

	site, err := s.repo.FindByID(ctx, s.db, id)
	s.storeMetrics.Observe(metrics.StoreOperationFindByID, err)
	if err != nil {
		s.fail(span, err)
		s.log.Error("find site failed", zap.Int64("site_id", id), zap.Error(err))
		return nil, fmt.Errorf("find site %d: %w", id, err)
	}
	if site == nil {
		span.SetAttributes(attribute.Bool("site.found", false))
		return nil, nil
	}

	resp := domain.NewResponse(rollup.Aggregate(*site))
	s.metrics.RecordRollup(ctx, endpointGet, len(site.SiteUses))
	s.cache.SetSite(ctx, resp)

	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	ctx, span := s.tracer.Start(ctx, endpointList)
	defer span.End()
	if req.State != nil {
		span.SetAttributes(tracing.SafeAttributes(attribute.String("site.state", *req.State))...)
	}

	if s.cache.Enabled() {
		cached, ok := s.cache.GetList(ctx, req.State)
		s.metrics.RecordCacheLookup(ctx, endpointList, ok)
		if ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
	}

	var (
		sites     []domain.Site
		err       error
		operation = metrics.StoreOperationList
	)
	if req.State == nil {
		sites, err = s.repo.List(ctx, s.db)
	} else {
		operation = metrics.StoreOperationListByState
		sites, err = s.repo.ListByState(ctx, s.db, *req.State)
	}
	s.storeMetrics.Observe(operation, err)
	if err != nil {
		s.fail(span, err)
		s.log.Error("list sites failed", zap.String("operation", operation), zap.Error(err))
		return nil, fmt.Errorf("list sites: %w", err)
	}

	resp := make([]domain.Response, 0, len(sites))
	for _, enriched := range rollup.AggregateAll(sites) {
		s.metrics.RecordRollup(ctx, endpointList, len(enriched.SiteUses))
		resp = append(resp, domain.NewResponse(enriched))
	}
	span.SetAttributes(attribute.Int("site.count", len(resp)))

	if len(resp) > 0 {
		s.cache.SetList(ctx, req.State, resp)
	}
	return resp, nil
}

func (s *Service) fail(span trace.Span, err error) {
	if safeErr := tracing.SafeError(err); safeErr != nil {
		span.RecordError(safeErr)
	}
	span.SetStatus(codes.Error, metrics.ClassifyStoreError(err))
}
