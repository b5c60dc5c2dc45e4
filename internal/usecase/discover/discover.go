package discoverUseCase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adityarizki/amora/internal/entity"
	matchRepo "github.com/adityarizki/amora/internal/repository/match"
	userRepo "github.com/adityarizki/amora/internal/repository/user"
	"github.com/adityarizki/amora/pkg/interests"
)

// Stack is a named discovery filter/sort preset. Unknown query values fall
// back to StackNone.
type Stack int

const (
	StackNone Stack = iota
	StackNewToday
	StackMusicTwins
)

func ParseStack(s string) Stack {
	switch s {
	case "new-today":
		return StackNewToday
	case "music-twins":
		return StackMusicTwins
	default:
		return StackNone
	}
}

const defaultLimit = 20

type IDiscoverUseCase interface {
	Discover(ctx context.Context, userID uint, page, limit int, intent string, stack Stack) (entity.DiscoverResponse, error)
}

type discoverUseCase struct {
	userRepo  userRepo.IUserRepo
	matchRepo matchRepo.IMatchRepo
	now       func() time.Time
}

func New(userRepo userRepo.IUserRepo, matchRepo matchRepo.IMatchRepo) IDiscoverUseCase {
	return &discoverUseCase{
		userRepo:  userRepo,
		matchRepo: matchRepo,
		now:       time.Now,
	}
}

// Discover builds one page of candidates for the user: never themselves,
// never anyone already liked or skipped, restricted to the genders they are
// looking for and optionally to an exact intent. Every candidate carries the
// mutual-interest summary against the requester.
func (d *discoverUseCase) Discover(ctx context.Context, userID uint, page, limit int, intent string, stack Stack) (entity.DiscoverResponse, error) {
	me, err := d.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return entity.DiscoverResponse{}, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}

	swiped, err := d.matchRepo.SwipedTargetIDs(ctx, userID)
	if err != nil {
		return entity.DiscoverResponse{}, fmt.Errorf("load swiped ids: %w", err)
	}

	filter := entity.CandidateFilter{
		ExcludeIDs: append([]uint{userID}, swiped...),
		Genders:    me.LookingFor,
		Intent:     intent,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	if stack == StackNewToday {
		start := localMidnight(d.now())
		filter.CreatedAfter = &start
	}

	candidates, err := d.userRepo.ListCandidates(ctx, filter)
	if err != nil {
		return entity.DiscoverResponse{}, fmt.Errorf("list candidates: %w", err)
	}

	users := []entity.DiscoverUser{}
	for _, candidate := range candidates {
		if candidate.Photos == nil {
			candidate.Photos = entity.StringList{}
		}
		users = append(users, entity.DiscoverUser{
			User:   candidate,
			Mutual: interests.Compute(me.ProfileQuestions, candidate.ProfileQuestions),
		})
	}

	// music-twins re-sorts the fetched page by overlap; it does not filter.
	if stack == StackMusicTwins {
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Mutual.Count > users[j].Mutual.Count
		})
	}

	return entity.DiscoverResponse{
		Page:  page,
		Limit: limit,
		Count: len(users),
		Users: users,
	}, nil
}

func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
