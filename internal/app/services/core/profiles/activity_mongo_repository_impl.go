package profiles

import (
	"context"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityMongoRepository struct {
	Collection *mongo.Collection
}

func NewActivityMongoRepository(db *mongo.Database) contracts.ActivityRepository {
	return &ActivityMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionActivities),
	}
}

func (r *ActivityMongoRepository) Insert(ctx context.Context, activity *models.Activity) error {
	_, err := r.Collection.InsertOne(ctx, activity)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ActivityMongoRepository) FindRecentByUserID(ctx context.Context, userID string, limit int64) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	err := findNewestFirst(ctx, r.Collection, userID, limit, &activities)
	if err != nil {
		return nil, err
	}
	return activities, nil
}

type MedicalHistoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalHistoryMongoRepository(db *mongo.Database) contracts.MedicalHistoryRepository {
	return &MedicalHistoryMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMedicalHistory),
	}
}

func (r *MedicalHistoryMongoRepository) Insert(ctx context.Context, entry *models.MedicalHistoryEntry) error {
	_, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *MedicalHistoryMongoRepository) FindByUserID(ctx context.Context, userID string, limit int64) ([]models.MedicalHistoryEntry, error) {
	entries := make([]models.MedicalHistoryEntry, 0)
	err := findNewestFirst(ctx, r.Collection, userID, limit, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func findNewestFirst(ctx context.Context, collection *mongo.Collection, userID string, limit int64, out interface{}) error {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err)
	}
	return nil
}
