package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aiactcheck/internal/model"
)

// ResponseRepo handles MongoDB operations for recorded answers. There is one
// logical row per (usecase, question); saving again overwrites it.
type ResponseRepo interface {
	Upsert(ctx context.Context, r *model.Response) error
	GetByUsecase(ctx context.Context, usecaseID string) ([]*model.Response, error)
	DeleteByUsecase(ctx context.Context, usecaseID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Upsert(ctx context.Context, resp *model.Response) error {
	resp.UpdatedAt = time.Now()

	filter := bson.M{
		"usecaseId":    resp.UsecaseID,
		"questionCode": resp.QuestionCode,
	}
	// Every answer slot is written so a type change fully replaces the old
	// shape instead of merging with it.
	update := bson.M{
		"$set": bson.M{
			"singleValue":       resp.SingleValue,
			"multipleCodes":     resp.MultipleCodes,
			"conditionalMain":   resp.ConditionalMain,
			"conditionalKeys":   resp.ConditionalKeys,
			"conditionalValues": resp.ConditionalValues,
			"updatedAt":         resp.UpdatedAt,
		},
		"$setOnInsert": bson.M{"_id": uuid.New().String()},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *responseRepo) GetByUsecase(ctx context.Context, usecaseID string) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"usecaseId": usecaseID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) DeleteByUsecase(ctx context.Context, usecaseID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"usecaseId": usecaseID})
	return err
}
