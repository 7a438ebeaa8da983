package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookly-backend/internal/domains/profile/model"
	"bookly-backend/internal/shared"
)

const CollectionName = "profiles"

type mongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoRepository(coll *mongo.Collection) RepositoryInterface {
	return &mongoRepository{coll: coll, now: Now}
}

// Now is the clock for document timestamps, truncated to the millisecond precision BSON keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// EnsureIndexes creates the index backing the newest-first listing.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created", Value: -1}},
		Options: options.Index().SetName("created_desc"),
	})
	if err != nil {
		return fmt.Errorf("create profiles index: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := make([]model.Profile, 0)
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	for i := range profiles {
		profiles[i].EnsureDefaults()
	}

	return profiles, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id shared.UserID) (*model.Profile, error) {
	var p model.Profile
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile %q: %w", id, err)
	}

	p.EnsureDefaults()
	return &p, nil
}

func (r *mongoRepository) Create(ctx context.Context, req model.CreateProfileRequest) (*model.Profile, error) {
	p := model.NewProfile(req, r.now())
	if err := p.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrProfileAlreadyExists
		}
		return nil, fmt.Errorf("insert profile %q: %w", p.ID, err)
	}

	return p, nil
}

func (r *mongoRepository) Update(ctx context.Context, id shared.UserID, req model.UpdateProfileRequest) (*model.Profile, error) {
	req.Normalize()
	if req.IsEmpty() {
		return nil, shared.ErrNothingToUpdate
	}
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	set := bson.D{}
	if req.Preferences.FavoriteGenres != nil {
		set = append(set, bson.E{Key: "preferences.favoriteGenres", Value: *req.Preferences.FavoriteGenres})
	}
	if req.Preferences.FavoriteAuthors != nil {
		set = append(set, bson.E{Key: "preferences.favoriteAuthors", Value: *req.Preferences.FavoriteAuthors})
	}
	set = append(set, bson.E{Key: "updated", Value: r.now()})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p model.Profile
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id.String()}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update profile %q: %w", id, err)
	}

	p.EnsureDefaults()
	return &p, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id shared.UserID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return false, fmt.Errorf("delete profile %q: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

// Save reports model.ErrProfileNotFound when the document was deleted since it was read.
func (r *mongoRepository) Save(ctx context.Context, p *model.Profile) error {
	if err := p.Validate(); err != nil {
		return shared.NewValidationError(err)
	}

	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: p.ID.String()}}, p)
	if err != nil {
		return fmt.Errorf("save profile %q: %w", p.ID, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrProfileNotFound
	}
	return nil
}
