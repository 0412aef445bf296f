package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"aiactcheck/internal/model"
)

// UsecaseRepo handles MongoDB operations for use cases
type UsecaseRepo interface {
	Create(ctx context.Context, u *model.UseCase) (string, error)
	GetByID(ctx context.Context, id string) (*model.UseCase, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*model.UseCase, error)
	Update(ctx context.Context, u *model.UseCase) error
	Delete(ctx context.Context, id string) error
}

type usecaseRepo struct {
	collection *mongo.Collection
}

// NewUsecaseRepo creates a new use case repository
func NewUsecaseRepo(db *mongo.Database) UsecaseRepo {
	return &usecaseRepo{
		collection: db.Collection("usecases"),
	}
}

func (r *usecaseRepo) Create(ctx context.Context, u *model.UseCase) (string, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

func (r *usecaseRepo) GetByID(ctx context.Context, id string) (*model.UseCase, error) {
	var u model.UseCase
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usecaseRepo) GetByOwner(ctx context.Context, ownerID string) ([]*model.UseCase, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var usecases []*model.UseCase
	if err := cursor.All(ctx, &usecases); err != nil {
		return nil, err
	}
	return usecases, nil
}

func (r *usecaseRepo) Update(ctx context.Context, u *model.UseCase) error {
	u.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	return err
}

func (r *usecaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
