package profiles

import (
	"context"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findSingleton decodes the document keyed by userID into out.
// It reports false without error when no document exists.
func findSingleton(ctx context.Context, collection *mongo.Collection, userID string, out interface{}) (bool, error) {
	err := collection.FindOne(ctx, bson.M{"_id": userID}).Decode(out)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return true, nil
}

// upsertSingleton merge-sets fields on the document keyed by userID and
// decodes the stored result into out. Repeating the same fields leaves the
// document unchanged apart from updatedAt.
func upsertSingleton(ctx context.Context, collection *mongo.Collection, userID string, fields map[string]interface{}, out interface{}) error {
	now := time.Now().UTC()
	set := bson.M{"updatedAt": now}
	for key, value := range fields {
		set[key] = value
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(out)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

type UserProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserProfileMongoRepository(db *mongo.Database) contracts.UserProfileRepository {
	return &UserProfileMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUserProfiles),
	}
}

func (r *UserProfileMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	found, err := findSingleton(ctx, r.Collection, userID, &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (r *UserProfileMongoRepository) Upsert(ctx context.Context, userID string, fields map[string]interface{}) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := upsertSingleton(ctx, r.Collection, userID, fields, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type HealthProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthProfileMongoRepository(db *mongo.Database) contracts.HealthProfileRepository {
	return &HealthProfileMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionHealthProfiles),
	}
}

func (r *HealthProfileMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.HealthProfile, error) {
	var health models.HealthProfile
	found, err := findSingleton(ctx, r.Collection, userID, &health)
	if err != nil || !found {
		return nil, err
	}
	return &health, nil
}

func (r *HealthProfileMongoRepository) Upsert(ctx context.Context, userID string, fields map[string]interface{}) (*models.HealthProfile, error) {
	var health models.HealthProfile
	if err := upsertSingleton(ctx, r.Collection, userID, fields, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

type UserSettingsMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserSettingsMongoRepository(db *mongo.Database) contracts.UserSettingsRepository {
	return &UserSettingsMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUserSettings),
	}
}

func (r *UserSettingsMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	found, err := findSingleton(ctx, r.Collection, userID, &settings)
	if err != nil || !found {
		return nil, err
	}
	return &settings, nil
}

func (r *UserSettingsMongoRepository) Upsert(ctx context.Context, userID string, fields map[string]interface{}) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := upsertSingleton(ctx, r.Collection, userID, fields, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
