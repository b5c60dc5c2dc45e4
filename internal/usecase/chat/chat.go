package chatUseCase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adityarizki/amora/internal/entity"
	matchRepo "github.com/adityarizki/amora/internal/repository/match"
	messageRepo "github.com/adityarizki/amora/internal/repository/message"
)

type IChatUseCase interface {
	Send(ctx context.Context, senderID, matchID uint, content string) (*entity.Message, error)
	List(ctx context.Context, requesterID, matchID uint) ([]entity.Message, error)
	React(ctx context.Context, userID, messageID uint, reactionType string) (*entity.Message, error)
}

type chatUseCase struct {
	matchRepo   matchRepo.IMatchRepo
	messageRepo messageRepo.IMessageRepo
}

func New(matchRepo matchRepo.IMatchRepo, messageRepo messageRepo.IMessageRepo) IChatUseCase {
	return &chatUseCase{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
	}
}

// Send persists a message from a match member to the other member and
// refreshes the match's lastMessage preview.
func (u *chatUseCase) Send(ctx context.Context, senderID, matchID uint, content string) (*entity.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, entity.ErrInvalidArgument
	}

	match, err := u.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasMember(senderID) {
		return nil, entity.ErrNotAuthorized
	}

	message := entity.Message{
		MatchID:     matchID,
		SenderID:    senderID,
		RecipientID: match.OtherMember(senderID),
		Content:     content,
	}

	created, err := u.messageRepo.CreateMessage(ctx, &message)
	if err != nil {
		return nil, fmt.Errorf("persist message: %w", err)
	}

	if err := u.matchRepo.UpdateLastMessage(ctx, matchID, content); err != nil {
		return nil, fmt.Errorf("update match preview: %w", err)
	}

	return created, nil
}

func (u *chatUseCase) List(ctx context.Context, requesterID, matchID uint) ([]entity.Message, error) {
	match, err := u.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasMember(requesterID) {
		return nil, entity.ErrNotAuthorized
	}

	return u.messageRepo.ListByMatch(ctx, matchID)
}

// React toggles the user's reaction on a message: same type again removes
// it, a different type overwrites it, at most one reaction per user per
// message. Returns the message with its updated reaction list.
func (u *chatUseCase) React(ctx context.Context, userID, messageID uint, reactionType string) (*entity.Message, error) {
	if !entity.ValidReactionType(reactionType) {
		return nil, entity.ErrInvalidArgument
	}

	message, err := u.messageRepo.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	match, err := u.matchRepo.GetMatch(ctx, message.MatchID)
	if err != nil {
		return nil, err
	}
	if !match.HasMember(userID) {
		return nil, entity.ErrNotAuthorized
	}

	existing, err := u.messageRepo.FindReaction(ctx, messageID, userID)
	if err != nil {
		return nil, fmt.Errorf("load reaction: %w", err)
	}

	switch {
	case existing == nil:
		err = u.messageRepo.SaveReaction(ctx, &entity.Reaction{
			MessageID: messageID,
			UserID:    userID,
			Type:      reactionType,
			CreatedAt: time.Now(),
		})
	case existing.Type == reactionType:
		err = u.messageRepo.DeleteReaction(ctx, messageID, userID)
	default:
		existing.Type = reactionType
		existing.CreatedAt = time.Now()
		err = u.messageRepo.SaveReaction(ctx, existing)
	}
	if err != nil {
		return nil, fmt.Errorf("toggle reaction: %w", err)
	}

	reactions, err := u.messageRepo.ListReactions(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("reload reactions: %w", err)
	}
	message.Reactions = reactions

	return message, nil
}
