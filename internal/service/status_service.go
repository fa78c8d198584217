package service

import (
	"context"
	"fmt"
	"time"

	"mindhealth/internal/cache"
	"mindhealth/internal/model"
	"mindhealth/internal/observability"
	"mindhealth/internal/repository"
	"mindhealth/internal/scoring"
)

// StatusService computes the status dashboard of a user
type StatusService struct {
	repo   repository.AssessmentRepo
	cache  cache.StatusCache
	engine *scoring.Engine
	now    func() time.Time
}

// NewStatusService creates a new status service. statusCache may be nil.
func NewStatusService(repo repository.AssessmentRepo, statusCache cache.StatusCache, engine *scoring.Engine) *StatusService {
	if engine == nil {
		engine = scoring.Default()
	}
	return &StatusService{
		repo:   repo,
		cache:  statusCache,
		engine: engine,
		now:    time.Now,
	}
}

// Dashboard returns the cached dashboard or computes a fresh one.
func (s *StatusService) Dashboard(ctx context.Context, userID string) (*model.Dashboard, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			observability.LoggerFromContext(ctx).Warn("status cache read failed", "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	d, err := s.build(ctx, userID)
	if err != nil {
		return nil, err
	}
	// a submit may have cached a newer dashboard since the records were read
	if s.cache != nil {
		if _, err := s.cache.SetIfAbsent(ctx, d); err != nil {
			observability.LoggerFromContext(ctx).Warn("status cache write failed", "err", err)
		}
	}
	return d, nil
}

// Recompute reads the latest assessments and rebuilds the dashboard,
// replacing whatever is cached.
func (s *StatusService) Recompute(ctx context.Context, userID string) (*model.Dashboard, error) {
	d, err := s.build(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, d); err != nil {
			observability.LoggerFromContext(ctx).Warn("status cache write failed", "err", err)
		}
	}
	return d, nil
}

func (s *StatusService) build(ctx context.Context, userID string) (*model.Dashboard, error) {
	records, err := s.repo.ListByUser(ctx, userID, s.engine.Params().FetchWindow)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchAssessments, err)
	}

	values := make([]model.AssessmentRecord, 0, len(records))
	for _, r := range records {
		if r != nil {
			values = append(values, *r)
		}
	}

	return s.engine.BuildDashboard(userID, values, s.now().UTC()), nil
}

// Invalidate drops the cached dashboard of userID.
func (s *StatusService) Invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		observability.LoggerFromContext(ctx).Warn("status cache invalidate failed", "err", err)
	}
}
