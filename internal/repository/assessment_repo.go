package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindhealth/internal/model"
)

// AssessmentRepo is the record source of the status dashboard
type AssessmentRepo interface {
	Create(ctx context.Context, record *model.AssessmentRecord) (string, error)
	GetByID(ctx context.Context, userID, id string) (*model.AssessmentRecord, error)
	// ListByUser returns the user's assessments, most recent first. limit <= 0 is unbounded.
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.AssessmentRecord, error)
	EnsureIndexes(ctx context.Context) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, record *model.AssessmentRecord) (string, error) {
	if record.ID == "" {
		id, err := newRecordID()
		if err != nil {
			return "", err
		}
		record.ID = id
	}
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("insert assessment: %w", err)
	}
	return record.ID, nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, userID, id string) (*model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find assessment: %w", err)
	}
	return &record, nil
}

func (r *assessmentRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.AssessmentRecord, error) {
	// _id breaks timestamp ties in insertion order
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer cursor.Close(ctx)

	records := []*model.AssessmentRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode assessments: %w", err)
	}
	return records, nil
}

// newRecordID returns a time-ordered UUID, so later inserts compare greater.
func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate assessment id: %w", err)
	}
	return id.String(), nil
}

func (r *assessmentRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}},
	})
	return err
}
