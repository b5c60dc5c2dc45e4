package matchUseCase

import (
	"context"
	"fmt"

	"github.com/adityarizki/amora/internal/entity"
	matchRepo "github.com/adityarizki/amora/internal/repository/match"
	userRepo "github.com/adityarizki/amora/internal/repository/user"
	"github.com/adityarizki/amora/pkg/interests"
)

type IMatchUseCase interface {
	Like(ctx context.Context, actorID, targetID uint) (entity.LikeResponse, error)
	Skip(ctx context.Context, actorID, targetID uint) (entity.SkipResponse, error)
	ListMatches(ctx context.Context, userID uint) ([]entity.MatchSummary, error)
	MatchDetail(ctx context.Context, userID, matchID uint) (*entity.MatchSummary, error)

	// MemberOf re-validates membership for chat and the real-time relay.
	MemberOf(ctx context.Context, userID, matchID uint) (*entity.Match, error)
}

type matchUseCase struct {
	userRepo  userRepo.IUserRepo
	matchRepo matchRepo.IMatchRepo
}

func New(userRepo userRepo.IUserRepo, matchRepo matchRepo.IMatchRepo) IMatchUseCase {
	return &matchUseCase{
		userRepo:  userRepo,
		matchRepo: matchRepo,
	}
}

// Like records the swipe and creates a match when the target already liked
// the actor back. Liking twice is a no-op, never a second match. A like
// after an earlier skip upgrades the swipe, so the pair can still match.
func (m *matchUseCase) Like(ctx context.Context, actorID, targetID uint) (entity.LikeResponse, error) {
	if actorID == targetID {
		return entity.LikeResponse{}, entity.ErrSelfAction
	}

	if _, err := m.userRepo.GetUserByID(ctx, targetID); err != nil {
		return entity.LikeResponse{}, err
	}

	existing, err := m.matchRepo.GetSwipe(ctx, actorID, targetID)
	if err != nil {
		return entity.LikeResponse{}, fmt.Errorf("check existing swipe: %w", err)
	}
	switch {
	case existing == nil:
		if err := m.matchRepo.CreateSwipe(ctx, actorID, targetID, entity.ActionLike); err != nil {
			return entity.LikeResponse{}, fmt.Errorf("persist like: %w", err)
		}
	case existing.Action == entity.ActionLike:
		return entity.LikeResponse{Liked: true}, nil
	default:
		if err := m.matchRepo.UpdateSwipeAction(ctx, actorID, targetID, entity.ActionLike); err != nil {
			return entity.LikeResponse{}, fmt.Errorf("upgrade skip to like: %w", err)
		}
	}

	reciprocal, err := m.matchRepo.HasLiked(ctx, targetID, actorID)
	if err != nil {
		return entity.LikeResponse{}, fmt.Errorf("check reciprocity: %w", err)
	}
	if !reciprocal {
		return entity.LikeResponse{Liked: true}, nil
	}

	match, _, err := m.matchRepo.FindOrCreateMatch(ctx, actorID, targetID)
	if err != nil {
		return entity.LikeResponse{}, fmt.Errorf("create match: %w", err)
	}

	id := match.ID
	return entity.LikeResponse{Liked: true, MatchCreated: true, MatchID: &id}, nil
}

// Skip hides the target from the feed. It never demotes an earlier like:
// the feed exclusion already covers the pair either way.
func (m *matchUseCase) Skip(ctx context.Context, actorID, targetID uint) (entity.SkipResponse, error) {
	if actorID == targetID {
		return entity.SkipResponse{}, entity.ErrSelfAction
	}

	existing, err := m.matchRepo.GetSwipe(ctx, actorID, targetID)
	if err != nil {
		return entity.SkipResponse{}, fmt.Errorf("check existing swipe: %w", err)
	}
	if existing != nil {
		return entity.SkipResponse{Skipped: true}, nil
	}

	if err := m.matchRepo.CreateSwipe(ctx, actorID, targetID, entity.ActionSkip); err != nil {
		return entity.SkipResponse{}, fmt.Errorf("persist skip: %w", err)
	}

	return entity.SkipResponse{Skipped: true}, nil
}

func (m *matchUseCase) ListMatches(ctx context.Context, userID uint) ([]entity.MatchSummary, error) {
	me, err := m.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches, err := m.matchRepo.MatchesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := []entity.MatchSummary{}
	for _, match := range matches {
		other, err := m.userRepo.GetUserByID(ctx, match.OtherMember(userID))
		if err != nil {
			// Skip entries whose counterpart vanished rather than failing
			// the whole list.
			continue
		}

		reasons, mutual := interests.MatchReasons(me.ProfileQuestions, other.ProfileQuestions)
		summaries = append(summaries, entity.MatchSummary{
			ID:          match.ID,
			OtherUser:   other,
			LastMessage: match.LastMessage,
			UpdatedAt:   match.UpdatedAt,
			Reasons:     reasons,
			Mutual:      mutual,
		})
	}

	return summaries, nil
}

func (m *matchUseCase) MatchDetail(ctx context.Context, userID, matchID uint) (*entity.MatchSummary, error) {
	match, err := m.MemberOf(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}

	me, err := m.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := m.userRepo.GetUserByID(ctx, match.OtherMember(userID))
	if err != nil {
		return nil, err
	}

	reasons, mutual := interests.MatchReasons(me.ProfileQuestions, other.ProfileQuestions)
	return &entity.MatchSummary{
		ID:          match.ID,
		OtherUser:   other,
		LastMessage: match.LastMessage,
		UpdatedAt:   match.UpdatedAt,
		Reasons:     reasons,
		Mutual:      mutual,
	}, nil
}

func (m *matchUseCase) MemberOf(ctx context.Context, userID, matchID uint) (*entity.Match, error) {
	match, err := m.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasMember(userID) {
		return nil, entity.ErrNotAuthorized
	}
	return match, nil
}
