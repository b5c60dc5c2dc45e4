package authUseCase

import (
	"context"
	"errors"
	"fmt"

	"github.com/adityarizki/amora/internal/entity"
	userRepo "github.com/adityarizki/amora/internal/repository/user"
	"github.com/adityarizki/amora/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned by SignupUser when the email already has an
// account; maps to 409 at the HTTP layer.
var ErrEmailTaken = errors.New("email already in use")

type IAuthUseCase interface {
	SignupUser(ctx context.Context, request entity.CreateUserRequest) (*entity.User, string, error)
	SignIn(ctx context.Context, email, password string) (*entity.User, string, error)
}

type authUseCase struct {
	userRepo userRepo.IUserRepo
}

func New(userRepo userRepo.IUserRepo) IAuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
	}
}

func (p *authUseCase) SignupUser(ctx context.Context, request entity.CreateUserRequest) (*entity.User, string, error) {
	existing, err := p.userRepo.GetUserByEmail(ctx, request.Email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, "", fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), 10)
	if err != nil {
		return nil, "", err
	}

	user := entity.User{
		Name:       request.Name,
		Email:      request.Email,
		Password:   string(hashedPassword),
		Age:        request.Age,
		Bio:        request.Bio,
		Photos:     entity.StringList{},
		Gender:     entity.GenderOther,
		Intent:     entity.IntentFriends,
		LookingFor: entity.StringList(entity.Genders),
	}

	created, err := p.userRepo.CreateUser(ctx, &user)
	if err != nil {
		return nil, "", err
	}

	token, err := jwt.CreateToken(created.ID)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

func (p *authUseCase) SignIn(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := p.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", entity.ErrNotAuthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrNotAuthorized
	}

	token, err := jwt.CreateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
