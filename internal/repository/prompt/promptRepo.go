package promptRepo

import (
	"context"
	"errors"

	"github.com/adityarizki/amora/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IPromptRepo interface {
	// GetAnswer returns (nil, nil) when the user has not answered that day.
	GetAnswer(ctx context.Context, userID uint, date string) (*entity.DailyPromptAnswer, error)
	UpsertAnswer(ctx context.Context, userID uint, date, answer string) (*entity.DailyPromptAnswer, error)
}

type PromptRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IPromptRepo {
	return &PromptRepo{
		db: db,
	}
}

func (r *PromptRepo) GetAnswer(ctx context.Context, userID uint, date string) (*entity.DailyPromptAnswer, error) {
	var answer entity.DailyPromptAnswer
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&answer)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &answer, nil
}

func (r *PromptRepo) UpsertAnswer(ctx context.Context, userID uint, date, answer string) (*entity.DailyPromptAnswer, error) {
	row := entity.DailyPromptAnswer{
		UserID: userID,
		Date:   date,
		Answer: answer,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
		}).
		Create(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	return &row, nil
}
