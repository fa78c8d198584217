package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"mindhealth/internal/model"
)

var errStoreDown = errors.New("store down")

type memAssessmentRepo struct {
	mu        sync.Mutex
	records   []*model.AssessmentRecord
	nextID    int
	lastLimit int
	fail      bool
}

func (r *memAssessmentRepo) Create(ctx context.Context, record *model.AssessmentRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return "", errStoreDown
	}
	r.nextID++
	record.ID = "a" + string(rune('0'+r.nextID))
	cp := *record
	r.records = append(r.records, &cp)
	return record.ID, nil
}

func (r *memAssessmentRepo) GetByID(ctx context.Context, userID, id string) (*model.AssessmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStoreDown
	}
	for _, rec := range r.records {
		if rec.ID == id && rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *memAssessmentRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.AssessmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	if r.fail {
		return nil, errStoreDown
	}
	var out []*model.AssessmentRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memAssessmentRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memAssessmentRepo) setFail(v bool) {
	r.mu.Lock()
	r.fail = v
	r.mu.Unlock()
}

type memReferenceRepo struct {
	mu        sync.Mutex
	disorders []*model.Disorder
	stats     map[string]*model.Statistics
	reads     int
}

func (r *memReferenceRepo) ListDisorders(ctx context.Context) ([]*model.Disorder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	return append([]*model.Disorder{}, r.disorders...), nil
}

func (r *memReferenceRepo) GetDisorder(ctx context.Context, id string) (*model.Disorder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.disorders {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (r *memReferenceRepo) ReplaceDisorders(ctx context.Context, disorders []*model.Disorder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disorders = disorders
	return nil
}

func (r *memReferenceRepo) GetStatistics(ctx context.Context, id string) (*model.Statistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	return r.stats[id], nil
}

func (r *memReferenceRepo) SaveStatistics(ctx context.Context, stats *model.Statistics) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stats == nil {
		r.stats = map[string]*model.Statistics{}
	}
	r.stats[stats.ID] = stats
	return nil
}

type sentMessage struct {
	userID  string
	msgType string
	payload interface{}
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (b *recordingBroadcaster) BroadcastToUser(userID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, sentMessage{userID, msgType, payload})
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func sadRecord(userID, ts string) *model.AssessmentRecord {
	return &model.AssessmentRecord{
		UserID:    userID,
		Timestamp: ts,
		SummarizedResults: []model.QuestionResult{{
			QuestionID: "q1",
			PredictedEmotion: &model.PredictedEmotion{
				CategoryName: "sad",
				Score:        1,
				AllScores:    []float64{0, 0, 0, 0, 1, 0, 0},
			},
		}},
	}
}
