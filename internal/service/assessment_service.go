package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"mindhealth/internal/model"
	"mindhealth/internal/observability"
	"mindhealth/internal/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	// TimestampLayout is how assessment timestamps are stored; lexical order is chronological
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// AssessmentService stores completed self-assessments and keeps the
// owner's dashboard current
type AssessmentService struct {
	repo        repository.AssessmentRepo
	status      *StatusService
	broadcaster Broadcaster
	now         func() time.Time
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(repo repository.AssessmentRepo, status *StatusService) *AssessmentService {
	return &AssessmentService{
		repo:   repo,
		status: status,
		now:    time.Now,
	}
}

// SetBroadcaster sets the WebSocket broadcaster
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit validates and stores a record for userID, then pushes the new
// dashboard to the user's sockets. The returned dashboard is nil when the
// recompute failed after the record was stored.
func (s *AssessmentService) Submit(ctx context.Context, userID string, record *model.AssessmentRecord) (*model.AssessmentRecord, *model.Dashboard, error) {
	if err := validateAssessment(record); err != nil {
		return nil, nil, err
	}

	ts, err := s.stamp(record.Timestamp)
	if err != nil {
		return nil, nil, err
	}
	record.ID = ""
	record.UserID = userID
	record.Timestamp = ts

	if _, err := s.repo.Create(ctx, record); err != nil {
		return nil, nil, fmt.Errorf("store assessment: %w", err)
	}

	log := observability.LoggerFromContext(ctx)
	log.Info("assessment stored", "assessment_id", record.ID, "questions", len(record.SummarizedResults))

	s.status.Invalidate(ctx, userID)
	dashboard, err := s.status.Recompute(ctx, userID)
	if err != nil {
		log.Warn("dashboard recompute failed", "err", err)
		return record, nil, nil
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(userID, "status_update", dashboard)
	}
	return record, dashboard, nil
}

// List returns the user's history, most recent first.
func (s *AssessmentService) List(ctx context.Context, userID string, limit int) ([]*model.AssessmentRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	records, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchAssessments, err)
	}
	return records, nil
}

// Get returns one of the user's assessments.
func (s *AssessmentService) Get(ctx context.Context, userID, id string) (*model.AssessmentRecord, error) {
	record, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchAssessments, err)
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// stamp normalises a client timestamp to TimestampLayout, or uses now.
func (s *AssessmentService) stamp(ts string) (string, error) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return s.now().UTC().Format(TimestampLayout), nil
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return "", fmt.Errorf("%w: timestamp %q is not RFC 3339", ErrInvalidAssessment, ts)
	}
	return t.UTC().Format(TimestampLayout), nil
}

func validateAssessment(record *model.AssessmentRecord) error {
	if record == nil || len(record.SummarizedResults) == 0 {
		return fmt.Errorf("%w: at least one question result is required", ErrInvalidAssessment)
	}
	for i, r := range record.SummarizedResults {
		pe := r.PredictedEmotion
		if pe == nil {
			continue
		}
		if n := len(pe.AllScores); n != 0 && n != model.EmotionCount {
			return fmt.Errorf("%w: result %d has %d scores, want %d", ErrInvalidAssessment, i, n, model.EmotionCount)
		}
		if !unitScore(pe.Score) {
			return fmt.Errorf("%w: result %d score %v is outside [0,1]", ErrInvalidAssessment, i, pe.Score)
		}
		for _, v := range pe.AllScores {
			if !unitScore(v) {
				return fmt.Errorf("%w: result %d score %v is outside [0,1]", ErrInvalidAssessment, i, v)
			}
		}
	}
	return nil
}

// unitScore reports whether v is a finite probability.
func unitScore(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
