package authUseCase

import (
	"context"
	"testing"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/adityarizki/amora/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[uint]*entity.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, entity.ErrNotFound
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) ListCandidates(ctx context.Context, filter entity.CandidateFilter) ([]entity.User, error) {
	return nil, nil
}

func TestSignupHashesPasswordAndIssuesToken(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	uc := New(repo)

	user, token, err := uc.SignupUser(ctx, entity.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter22",
		Age:      25,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// profile defaults
	assert.NotNil(t, user.Photos)
	assert.Equal(t, entity.GenderOther, user.Gender)
	assert.Equal(t, entity.StringList(entity.Genders), user.LookingFor)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc := New(newFakeUserRepo())

	request := entity.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "hunter22", Age: 25}
	_, _, err := uc.SignupUser(ctx, request)
	require.NoError(t, err)

	_, _, err = uc.SignupUser(ctx, request)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInChecksCredentials(t *testing.T) {
	ctx := context.Background()
	uc := New(newFakeUserRepo())

	_, _, err := uc.SignupUser(ctx, entity.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", Password: "hunter22", Age: 25,
	})
	require.NoError(t, err)

	user, token, err := uc.SignIn(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ana@example.com", user.Email)

	_, _, err = uc.SignIn(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, entity.ErrNotAuthorized)

	_, _, err = uc.SignIn(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, entity.ErrNotAuthorized)
}
