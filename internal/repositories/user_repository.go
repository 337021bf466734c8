package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

type UserRepository interface {
	// Create inserts the user together with any role extension set on it.
	Create(ctx context.Context, user *db_models.User) error
	FindAll(ctx context.Context) ([]db_models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*db_models.User, error)
	Update(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

func (u *userRepository) FindAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := u.db.WithContext(ctx).
		Preload("Agency").Preload("Business").Preload("Tourist").
		Order("created_at").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return u.first(ctx, "id = ?", id)
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return u.first(ctx, "email = ?", email)
}

func (u *userRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*db_models.User, error) {
	return u.first(ctx, "email = ? OR phone = ?", email, phone)
}

func (u *userRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).
		Preload("Agency").Preload("Business").
		Preload("Tourist").Preload("Tourist.FavoriteCategories").
		Where(query, args...).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Model(user).
		Select("name", "email", "phone", "password_hash").
		Updates(user).Error
}
