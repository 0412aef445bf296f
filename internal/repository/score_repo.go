package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aiactcheck/internal/model"
)

// ScoreRepo persists score results. Results are append-only: each
// recomputation is stored as a new document with the next version number.
type ScoreRepo interface {
	Save(ctx context.Context, result *model.ScoreResult) error
	Latest(ctx context.Context, usecaseID string) (*model.ScoreResult, error)
	History(ctx context.Context, usecaseID string) ([]*model.ScoreResult, error)
	LatestVersion(ctx context.Context, usecaseID string) (int, error)
}

type scoreRepo struct {
	collection *mongo.Collection
}

// NewScoreRepo creates a new score repository
func NewScoreRepo(db *mongo.Database) ScoreRepo {
	return &scoreRepo{
		collection: db.Collection("scores"),
	}
}

func (r *scoreRepo) Save(ctx context.Context, result *model.ScoreResult) error {
	_, err := r.collection.InsertOne(ctx, result)
	return err
}

func (r *scoreRepo) Latest(ctx context.Context, usecaseID string) (*model.ScoreResult, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})

	var result model.ScoreResult
	err := r.collection.FindOne(ctx, bson.M{"usecaseId": usecaseID}, opts).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *scoreRepo) History(ctx context.Context, usecaseID string) ([]*model.ScoreResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"usecaseId": usecaseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.ScoreResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *scoreRepo) LatestVersion(ctx context.Context, usecaseID string) (int, error) {
	latest, err := r.Latest(ctx, usecaseID)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 0, nil
	}
	return latest.Version, nil
}
