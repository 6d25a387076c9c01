package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"auth-service/internal/domain"
)

type EmailLogRepo struct {
	col *mongo.Collection
}

func NewEmailLogRepo(db *mongo.Database) *EmailLogRepo {
	return &EmailLogRepo{col: db.Collection("email_logs")}
}

func (r *EmailLogRepo) LogEmail(ctx context.Context, log domain.EmailLog) error {
	_, err := r.col.InsertOne(ctx, log)
	return err
}
