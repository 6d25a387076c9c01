package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"auth-service/internal/domain"
	"auth-service/pkg/xerrors"
)

// UserRepository persists account documents in the "users" collection.
// Uniqueness of username and email is enforced by the collection's indexes,
// not by application-level locking; a racing duplicate insert surfaces as a
// duplicate-key error and is reported as a conflict.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return xerrors.ErrUserAlreadyExists
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, xerrors.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByUsernameOrEmail backs the registration pre-check; the unique
// indexes still backstop concurrent registrations.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

// FindByResetOTP matches email AND reset code AND an unexpired window in a
// single query, so a correct code with an expired window never matches.
func (r *UserRepository) FindByResetOTP(ctx context.Context, email, otp string, now time.Time) (*domain.User, error) {
	return r.findOne(ctx, bson.M{
		"email":                   email,
		"resetPasswordOtp":        otp,
		"resetPasswordOtpExpires": bson.M{"$gt": now},
	})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, xerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *UserRepository) SetOTP(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	return r.update(ctx, id, bson.M{
		"$set": bson.M{"otp": code, "otpExpires": expires, "updatedAt": time.Now()},
	})
}

func (r *UserRepository) ClearOTP(ctx context.Context, id primitive.ObjectID) error {
	return r.update(ctx, id, bson.M{
		"$unset": bson.M{"otp": "", "otpExpires": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	})
}

// MarkVerified flips isVerified and drops the otp pair in one update.
func (r *UserRepository) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	return r.update(ctx, id, bson.M{
		"$set":   bson.M{"isVerified": true, "updatedAt": time.Now()},
		"$unset": bson.M{"otp": "", "otpExpires": ""},
	})
}

func (r *UserRepository) SetResetOTP(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	return r.update(ctx, id, bson.M{
		"$set": bson.M{"resetPasswordOtp": code, "resetPasswordOtpExpires": expires, "updatedAt": time.Now()},
	})
}

func (r *UserRepository) ClearResetOTP(ctx context.Context, id primitive.ObjectID) error {
	return r.update(ctx, id, bson.M{
		"$unset": bson.M{"resetPasswordOtp": "", "resetPasswordOtpExpires": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	})
}

// UpdatePassword stores a new digest and drops the reset pair in one update.
func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return r.update(ctx, id, bson.M{
		"$set":   bson.M{"password": hash, "updatedAt": time.Now()},
		"$unset": bson.M{"resetPasswordOtp": "", "resetPasswordOtpExpires": ""},
	})
}

func (r *UserRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return xerrors.ErrUserNotFound
	}
	return nil
}
