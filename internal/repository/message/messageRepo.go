package messageRepo

import (
	"context"
	"errors"

	"github.com/adityarizki/amora/internal/entity"
	"gorm.io/gorm"
)

type IMessageRepo interface {
	CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error)
	GetMessage(ctx context.Context, id uint) (*entity.Message, error)
	ListByMatch(ctx context.Context, matchID uint) ([]entity.Message, error)

	// FindReaction returns (nil, nil) when the user has no reaction yet.
	FindReaction(ctx context.Context, messageID, userID uint) (*entity.Reaction, error)
	SaveReaction(ctx context.Context, reaction *entity.Reaction) error
	DeleteReaction(ctx context.Context, messageID, userID uint) error
	ListReactions(ctx context.Context, messageID uint) ([]entity.Reaction, error)
}

type MessageRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IMessageRepo {
	return &MessageRepo{
		db: db,
	}
}

func (r *MessageRepo) CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	res := r.db.WithContext(ctx).Create(message)
	if message.Reactions == nil {
		message.Reactions = []entity.Reaction{}
	}
	return message, res.Error
}

func (r *MessageRepo) GetMessage(ctx context.Context, id uint) (*entity.Message, error) {
	var message entity.Message
	res := r.db.WithContext(ctx).
		Preload("Reactions").
		Where("id = ?", id).
		First(&message)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if message.Reactions == nil {
		message.Reactions = []entity.Reaction{}
	}
	return &message, res.Error
}

func (r *MessageRepo) ListByMatch(ctx context.Context, matchID uint) ([]entity.Message, error) {
	var messages []entity.Message
	res := r.db.WithContext(ctx).
		Preload("Reactions").
		Where("match_id = ?", matchID).
		Order("created_at ASC, id ASC").
		Find(&messages)
	for i := range messages {
		if messages[i].Reactions == nil {
			messages[i].Reactions = []entity.Reaction{}
		}
	}
	return messages, res.Error
}

func (r *MessageRepo) FindReaction(ctx context.Context, messageID, userID uint) (*entity.Reaction, error) {
	var reaction entity.Reaction
	res := r.db.WithContext(ctx).
		Where("message_id = ? AND user_id = ?", messageID, userID).
		First(&reaction)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &reaction, nil
}

func (r *MessageRepo) SaveReaction(ctx context.Context, reaction *entity.Reaction) error {
	return r.db.WithContext(ctx).Save(reaction).Error
}

func (r *MessageRepo) DeleteReaction(ctx context.Context, messageID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("message_id = ? AND user_id = ?", messageID, userID).
		Delete(&entity.Reaction{}).Error
}

func (r *MessageRepo) ListReactions(ctx context.Context, messageID uint) ([]entity.Reaction, error) {
	reactions := []entity.Reaction{}
	res := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("created_at ASC, id ASC").
		Find(&reactions)
	return reactions, res.Error
}
