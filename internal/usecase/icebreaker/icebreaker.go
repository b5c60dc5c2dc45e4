package icebreakerUseCase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adityarizki/amora/internal/entity"
	matchRepo "github.com/adityarizki/amora/internal/repository/match"
	promptRepo "github.com/adityarizki/amora/internal/repository/prompt"
	userRepo "github.com/adityarizki/amora/internal/repository/user"
	"github.com/adityarizki/amora/pkg/gemini"
	"github.com/adityarizki/amora/pkg/interests"
)

const maxStarters = 6

var genericStarters = []string{
	"What's something fun you did recently?",
	"Two truths and a lie? I'll go first if you want.",
	"What are you oddly good at?",
	"Favorite way to spend a Sunday?",
	"What's your go-to comfort food?",
}

var dailyPrompts = []string{
	"What's your ideal Sunday?",
	"Pick one: beach day or mountain hike?",
	"What hobby could you talk about for hours?",
	"What's a small joy that makes your day?",
	"What song do you play on repeat?",
}

type IIcebreakerUseCase interface {
	// Starters suggests conversation openers; matchID 0 yields only the
	// generic list.
	Starters(ctx context.Context, userID, matchID uint) (entity.StartersResponse, error)
	PickupLine(ctx context.Context, userID, matchID uint) (entity.PickupLineResponse, error)
	TodayPrompt(ctx context.Context, userID uint) (entity.TodayPromptResponse, error)
	AnswerPrompt(ctx context.Context, userID uint, answer string) (entity.AnswerPromptResponse, error)
}

type icebreakerUseCase struct {
	userRepo   userRepo.IUserRepo
	matchRepo  matchRepo.IMatchRepo
	promptRepo promptRepo.IPromptRepo
	ai         *gemini.Client
	now        func() time.Time
}

func New(userRepo userRepo.IUserRepo, matchRepo matchRepo.IMatchRepo, promptRepo promptRepo.IPromptRepo, ai *gemini.Client) IIcebreakerUseCase {
	return &icebreakerUseCase{
		userRepo:   userRepo,
		matchRepo:  matchRepo,
		promptRepo: promptRepo,
		ai:         ai,
		now:        time.Now,
	}
}

func (u *icebreakerUseCase) Starters(ctx context.Context, userID, matchID uint) (entity.StartersResponse, error) {
	tailored := []string{}

	if matchID != 0 {
		me, other, err := u.matchMembers(ctx, userID, matchID)
		if err != nil {
			return entity.StartersResponse{}, err
		}

		mutual := interests.Compute(me.ProfileQuestions, other.ProfileQuestions)
		if len(mutual.MusicGenres) > 0 {
			g := mutual.MusicGenres[0]
			tailored = append(tailored,
				fmt.Sprintf("What %s track never gets old for you?", g),
				fmt.Sprintf("Seen any great %s concerts lately?", g),
			)
		}
		if len(mutual.Hobbies) > 0 {
			h := mutual.Hobbies[0]
			tailored = append(tailored,
				fmt.Sprintf("What's your favorite way to do %s around here?", h),
				fmt.Sprintf("How did you get into %s?", h),
			)
		}
		if len(mutual.Passions) > 0 {
			tailored = append(tailored, fmt.Sprintf("What do you love most about %s?", mutual.Passions[0]))
		}
	}

	seen := map[string]bool{}
	starters := []string{}
	for _, s := range append(tailored, genericStarters...) {
		if seen[s] || len(starters) == maxStarters {
			continue
		}
		seen[s] = true
		starters = append(starters, s)
	}

	return entity.StartersResponse{Starters: starters}, nil
}

// PickupLine asks the AI backend for one opener tailored to the other
// member's profile. gemini.ErrNotConfigured and gemini.ErrNoContent pass
// through for the HTTP layer to map.
func (u *icebreakerUseCase) PickupLine(ctx context.Context, userID, matchID uint) (entity.PickupLineResponse, error) {
	if !u.ai.Configured() {
		return entity.PickupLineResponse{}, gemini.ErrNotConfigured
	}

	_, other, err := u.matchMembers(ctx, userID, matchID)
	if err != nil {
		return entity.PickupLineResponse{}, err
	}

	line, err := u.ai.Generate(ctx, pickupPrompt(other))
	if err != nil {
		return entity.PickupLineResponse{}, err
	}

	return entity.PickupLineResponse{Line: line}, nil
}

func (u *icebreakerUseCase) TodayPrompt(ctx context.Context, userID uint) (entity.TodayPromptResponse, error) {
	now := u.now()
	date := todayKey(now)

	existing, err := u.promptRepo.GetAnswer(ctx, userID, date)
	if err != nil {
		return entity.TodayPromptResponse{}, fmt.Errorf("load prompt answer: %w", err)
	}

	response := entity.TodayPromptResponse{
		Date:   date,
		Prompt: promptOfTheDay(now),
	}
	if existing != nil {
		response.Answered = true
		response.Answer = existing.Answer
	}
	return response, nil
}

func (u *icebreakerUseCase) AnswerPrompt(ctx context.Context, userID uint, answer string) (entity.AnswerPromptResponse, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return entity.AnswerPromptResponse{}, entity.ErrInvalidArgument
	}

	date := todayKey(u.now())
	saved, err := u.promptRepo.UpsertAnswer(ctx, userID, date, answer)
	if err != nil {
		return entity.AnswerPromptResponse{}, fmt.Errorf("save prompt answer: %w", err)
	}

	return entity.AnswerPromptResponse{Saved: true, Date: date, Answer: saved.Answer}, nil
}

// matchMembers loads the match, verifies the requester belongs to it and
// returns both member profiles.
func (u *icebreakerUseCase) matchMembers(ctx context.Context, userID, matchID uint) (*entity.User, *entity.User, error) {
	match, err := u.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, nil, err
	}
	if !match.HasMember(userID) {
		return nil, nil, entity.ErrNotAuthorized
	}

	me, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	other, err := u.userRepo.GetUserByID(ctx, match.OtherMember(userID))
	if err != nil {
		return nil, nil, err
	}
	return me, other, nil
}

func pickupPrompt(other *entity.User) string {
	bits := []string{}
	if other.Name != "" {
		bits = append(bits, "Name: "+other.Name)
	}
	if other.Age > 0 {
		bits = append(bits, fmt.Sprintf("Age: %d", other.Age))
	}
	if other.Gender != "" {
		bits = append(bits, "Gender: "+other.Gender)
	}
	if other.Bio != "" {
		bits = append(bits, "Bio: "+other.Bio)
	}
	if len(other.ProfileQuestions.MusicGenres) > 0 {
		bits = append(bits, "Music: "+strings.Join(other.ProfileQuestions.MusicGenres, ", "))
	}
	if len(other.ProfileQuestions.Hobbies) > 0 {
		bits = append(bits, "Hobbies: "+strings.Join(other.ProfileQuestions.Hobbies, ", "))
	}
	if len(other.ProfileQuestions.Passions) > 0 {
		bits = append(bits, "Passions: "+strings.Join(other.ProfileQuestions.Passions, ", "))
	}
	if other.ProfileQuestions.About != "" {
		bits = append(bits, "About: "+other.ProfileQuestions.About)
	}

	return "You are helping with a dating chat opener. Create ONE short, respectful, playful pickup line tailored to this profile. " +
		"Avoid anything creepy, explicit, or offensive. Keep it under 25 words. If you reference interests, do it lightly.\n\n" +
		"PROFILE:\n" + strings.Join(bits, "\n") + "\n\nReturn only the line, no quotes."
}

func todayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func promptOfTheDay(t time.Time) string {
	dayIndex := t.Unix() / (24 * 3600)
	return dailyPrompts[int(dayIndex)%len(dailyPrompts)]
}
