package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"mindhealth/internal/cache"
	"mindhealth/internal/model"
	"mindhealth/internal/observability"
	"mindhealth/internal/repository"
)

// ReferenceService serves the disorders catalogue and national statistics
type ReferenceService struct {
	repo  repository.ReferenceRepo
	cache cache.ReferenceCache
}

// NewReferenceService creates a new reference service. refCache may be nil.
func NewReferenceService(repo repository.ReferenceRepo, refCache cache.ReferenceCache) *ReferenceService {
	return &ReferenceService{
		repo:  repo,
		cache: refCache,
	}
}

// Disorders returns every disorder sorted by name.
func (s *ReferenceService) Disorders(ctx context.Context) ([]*model.Disorder, error) {
	log := observability.LoggerFromContext(ctx)
	if s.cache != nil {
		cached, err := s.cache.GetDisorders(ctx)
		if err != nil {
			log.Warn("reference cache read failed", "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	disorders, err := s.repo.ListDisorders(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range disorders {
		d.Affected = d.AffectedSplit()
	}

	if s.cache != nil {
		if err := s.cache.SetDisorders(ctx, disorders); err != nil {
			log.Warn("reference cache write failed", "err", err)
		}
	}
	return disorders, nil
}

// Disorder returns one disorder or ErrNotFound.
func (s *ReferenceService) Disorder(ctx context.Context, id string) (*model.Disorder, error) {
	d, err := s.repo.GetDisorder(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	d.Affected = d.AffectedSplit()
	return d, nil
}

// Statistics returns a statistics document or ErrNotFound.
func (s *ReferenceService) Statistics(ctx context.Context, id string) (*model.Statistics, error) {
	log := observability.LoggerFromContext(ctx)
	if s.cache != nil {
		cached, err := s.cache.GetStatistics(ctx, id)
		if err != nil {
			log.Warn("reference cache read failed", "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.GetStatistics(ctx, id)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetStatistics(ctx, stats); err != nil {
			log.Warn("reference cache write failed", "err", err)
		}
	}
	return stats, nil
}

// Overview loads the national statistics and the disorders concurrently.
// Missing statistics leave the field nil.
func (s *ReferenceService) Overview(ctx context.Context) (*model.Overview, error) {
	var out model.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.Statistics(gctx, model.DefaultStatisticsID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		out.Statistics = stats
		return err
	})
	g.Go(func() error {
		disorders, err := s.Disorders(gctx)
		out.Disorders = disorders
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Import replaces the reference data. stats may be nil to keep the stored document.
func (s *ReferenceService) Import(ctx context.Context, disorders []*model.Disorder, stats *model.Statistics) error {
	for i, d := range disorders {
		if d == nil || d.ID == "" {
			return fmt.Errorf("disorder %d: id is required", i)
		}
	}
	if stats != nil && stats.ID == "" {
		return errors.New("statistics: id is required")
	}

	if disorders != nil {
		if err := s.repo.ReplaceDisorders(ctx, disorders); err != nil {
			return err
		}
	}
	if stats != nil {
		if err := s.repo.SaveStatistics(ctx, stats); err != nil {
			return err
		}
	}

	if s.cache != nil {
		if err := s.cache.Flush(ctx); err != nil {
			observability.LoggerFromContext(ctx).Warn("reference cache flush failed", "err", err)
		}
	}
	observability.LoggerFromContext(ctx).Info("reference data imported", "disorders", len(disorders), "statistics", stats != nil)
	return nil
}
