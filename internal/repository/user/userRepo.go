package userRepo

import (
	"context"
	"errors"

	"github.com/adityarizki/amora/internal/entity"
	"gorm.io/gorm"
)

type IUserRepo interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	ListCandidates(ctx context.Context, filter entity.CandidateFilter) ([]entity.User, error)
}

type UserRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IUserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	result := r.db.WithContext(ctx).Create(user)
	return user, result.Error
}

func (r *UserRepo) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &user, result.Error
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &user, result.Error
}

func (r *UserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	result := r.db.WithContext(ctx).Save(user)
	return user, result.Error
}

// ListCandidates pages through discovery candidates. Exclusions and profile
// filters are applied in SQL; ranking happens in the usecase.
func (r *UserRepo) ListCandidates(ctx context.Context, filter entity.CandidateFilter) ([]entity.User, error) {
	var users []entity.User

	query := r.db.WithContext(ctx).Model(&entity.User{})

	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}
	if len(filter.Genders) > 0 {
		query = query.Where("gender IN ?", filter.Genders)
	}
	if filter.Intent != "" {
		query = query.Where("intent = ?", filter.Intent)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}

	result := query.
		Order("id").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&users)

	return users, result.Error
}
