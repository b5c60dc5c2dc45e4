package profileUseCase

import (
	"context"
	"strings"

	"github.com/adityarizki/amora/internal/entity"
	userRepo "github.com/adityarizki/amora/internal/repository/user"
)

// Static option lists for the onboarding questions.
var questionOptions = entity.QuestionOptions{
	Genders:     entity.Genders,
	Intents:     entity.Intents,
	MusicGenres: []string{"Pop", "Rock", "Hip-Hop", "R&B", "Jazz", "Classical", "EDM", "Country", "Indie", "K-Pop"},
	Hobbies:     []string{"Travel", "Cooking", "Gaming", "Reading", "Movies", "Hiking", "Gym", "Art", "Dancing", "Photography"},
	Passions:    []string{"Tech", "Music", "Sports", "Food", "Fashion", "Animals", "Environment", "Entrepreneurship", "Volunteering", "Learning"},
}

type IProfileUseCase interface {
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, request entity.UpdateProfileRequest) (*entity.User, error)
	AddPhotos(ctx context.Context, userID uint, paths []string) (*entity.User, error)
	RemovePhoto(ctx context.Context, userID uint, index *int, path string) (*entity.User, error)
	SubmitQuestions(ctx context.Context, userID uint, request entity.SubmitQuestionsRequest) (*entity.User, error)
	QuestionOptions() entity.QuestionOptions
}

type profileUseCase struct {
	userRepo userRepo.IUserRepo
}

func New(userRepo userRepo.IUserRepo) IProfileUseCase {
	return &profileUseCase{
		userRepo: userRepo,
	}
}

func (p *profileUseCase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return p.userRepo.GetUserByID(ctx, userID)
}

func (p *profileUseCase) UpdateProfile(ctx context.Context, userID uint, request entity.UpdateProfileRequest) (*entity.User, error) {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil && *request.Name != "" {
		user.Name = strings.TrimSpace(*request.Name)
	}
	if request.Age != nil && *request.Age >= 18 {
		user.Age = *request.Age
	}
	if request.Bio != nil {
		user.Bio = *request.Bio
	}
	if request.Gender != nil && contains(entity.Genders, *request.Gender) {
		user.Gender = *request.Gender
	}
	if request.Intent != nil && contains(entity.Intents, *request.Intent) {
		user.Intent = *request.Intent
	}
	if request.LookingFor != nil {
		user.LookingFor = cleanList(*request.LookingFor)
	}
	if request.Photos != nil {
		user.Photos = cleanList(*request.Photos)
	}

	return p.userRepo.UpdateUser(ctx, user)
}

func (p *profileUseCase) AddPhotos(ctx context.Context, userID uint, paths []string) (*entity.User, error) {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Photos = append(user.Photos, paths...)
	return p.userRepo.UpdateUser(ctx, user)
}

// RemovePhoto drops a photo either by index or by exact path. Unknown
// index/path leaves the profile untouched.
func (p *profileUseCase) RemovePhoto(ctx context.Context, userID uint, index *int, path string) (*entity.User, error) {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	at := -1
	if index != nil {
		if *index >= 0 && *index < len(user.Photos) {
			at = *index
		}
	} else if path != "" {
		for i, photo := range user.Photos {
			if photo == path {
				at = i
				break
			}
		}
	}

	if at == -1 {
		return user, nil
	}

	user.Photos = append(user.Photos[:at], user.Photos[at+1:]...)
	return p.userRepo.UpdateUser(ctx, user)
}

func (p *profileUseCase) SubmitQuestions(ctx context.Context, userID uint, request entity.SubmitQuestionsRequest) (*entity.User, error) {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Gender != "" && contains(entity.Genders, request.Gender) {
		user.Gender = request.Gender
	}
	if request.Intent != "" && contains(entity.Intents, request.Intent) {
		user.Intent = request.Intent
	}
	if len(request.LookingFor) > 0 {
		user.LookingFor = cleanList(request.LookingFor)
	}

	user.ProfileQuestions = entity.ProfileQuestions{
		MusicGenres: cleanList(request.MusicGenres),
		Hobbies:     cleanList(request.Hobbies),
		Passions:    cleanList(request.Passions),
		About:       strings.TrimSpace(request.About),
	}
	user.ProfileComplete = true

	return p.userRepo.UpdateUser(ctx, user)
}

func (p *profileUseCase) QuestionOptions() entity.QuestionOptions {
	return questionOptions
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func cleanList(values []string) entity.StringList {
	out := entity.StringList{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
