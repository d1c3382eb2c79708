package store

import (
	"context"
	"errors"
	"time"

	"bandhan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a registration reuses an email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore provides user collection operations.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(coll *mongo.Collection) *UserStore {
	return &UserStore{coll: coll}
}

func (s *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The unique email index backs the duplicate
// check, so two concurrent registrations cannot both win.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	_, err := s.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

// UpdateProfile applies the given field set and returns the updated record
// without the password.
func (s *UserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var user models.User
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePreferences replaces the nested preferences sub-record.
func (s *UserStore) UpdatePreferences(ctx context.Context, id primitive.ObjectID, prefs models.Preferences) (*models.User, error) {
	return s.UpdateProfile(ctx, id, bson.M{"preferences": prefs})
}

// SetProfilePhoto records a newly uploaded photo as the profile photo and
// appends it to the photo list.
func (s *UserStore) SetProfilePhoto(ctx context.Context, id primitive.ObjectID, path string) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":  bson.M{"profilePhoto": path, "updatedAt": time.Now().UTC()},
		"$push": bson.M{"photos": path},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindMatches runs the configurable match query for the requester. A zero
// result is a valid outcome: the returned slice is never nil.
func (s *UserStore) FindMatches(ctx context.Context, requester *models.User, matchOpts MatchOptions) ([]models.User, error) {
	findOpts := options.Find().SetProjection(matchProjection(matchOpts))
	if matchOpts.Limit > 0 {
		findOpts.SetLimit(matchOpts.Limit)
	}

	cursor, err := s.coll.Find(ctx, BuildMatchFilter(requester, matchOpts), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	candidates := []models.User{}
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}
