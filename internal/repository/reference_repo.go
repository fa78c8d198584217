package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindhealth/internal/model"
)

// ReferenceRepo handles the read-mostly reference collections
type ReferenceRepo interface {
	ListDisorders(ctx context.Context) ([]*model.Disorder, error)
	GetDisorder(ctx context.Context, id string) (*model.Disorder, error)
	ReplaceDisorders(ctx context.Context, disorders []*model.Disorder) error
	GetStatistics(ctx context.Context, id string) (*model.Statistics, error)
	SaveStatistics(ctx context.Context, stats *model.Statistics) error
}

type referenceRepo struct {
	disorders  *mongo.Collection
	statistics *mongo.Collection
}

// NewReferenceRepo creates a new reference repository
func NewReferenceRepo(db *mongo.Database) ReferenceRepo {
	return &referenceRepo{
		disorders:  db.Collection("disorders"),
		statistics: db.Collection("statistics"),
	}
}

func (r *referenceRepo) ListDisorders(ctx context.Context) ([]*model.Disorder, error) {
	cursor, err := r.disorders.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list disorders: %w", err)
	}
	defer cursor.Close(ctx)

	disorders := []*model.Disorder{}
	if err = cursor.All(ctx, &disorders); err != nil {
		return nil, fmt.Errorf("decode disorders: %w", err)
	}
	return disorders, nil
}

func (r *referenceRepo) GetDisorder(ctx context.Context, id string) (*model.Disorder, error) {
	var d model.Disorder
	err := r.disorders.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find disorder: %w", err)
	}
	return &d, nil
}

// ReplaceDisorders upserts every entry and removes the ones not in the set.
func (r *referenceRepo) ReplaceDisorders(ctx context.Context, disorders []*model.Disorder) error {
	ids := make([]string, 0, len(disorders))
	opts := options.Replace().SetUpsert(true)
	for _, d := range disorders {
		if _, err := r.disorders.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, opts); err != nil {
			return fmt.Errorf("upsert disorder %s: %w", d.ID, err)
		}
		ids = append(ids, d.ID)
	}
	if _, err := r.disorders.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": ids}}); err != nil {
		return fmt.Errorf("prune disorders: %w", err)
	}
	return nil
}

func (r *referenceRepo) GetStatistics(ctx context.Context, id string) (*model.Statistics, error) {
	raw, err := r.statistics.FindOne(ctx, bson.M{"_id": id}).Raw()
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find statistics: %w", err)
	}

	// nested documents must come back as maps to render as JSON objects
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(raw))
	if err != nil {
		return nil, err
	}
	dec.DefaultDocumentM()

	var stats model.Statistics
	if err := dec.Decode(&stats); err != nil {
		return nil, fmt.Errorf("decode statistics: %w", err)
	}
	return &stats, nil
}

func (r *referenceRepo) SaveStatistics(ctx context.Context, stats *model.Statistics) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.statistics.ReplaceOne(ctx, bson.M{"_id": stats.ID}, stats, opts)
	return err
}
