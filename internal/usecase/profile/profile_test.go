package profileUseCase

import (
	"context"
	"testing"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uint]*entity.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
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
	return nil, entity.ErrNotFound
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) ListCandidates(ctx context.Context, filter entity.CandidateFilter) ([]entity.User, error) {
	return nil, nil
}

func fixture() (*fakeUserRepo, IProfileUseCase) {
	repo := &fakeUserRepo{users: map[uint]*entity.User{
		1: {ID: 1, Name: "Ana", Age: 25, Photos: entity.StringList{"/uploads/a.jpg", "/uploads/b.jpg"}},
	}}
	return repo, New(repo)
}

func TestUpdateProfilePartial(t *testing.T) {
	ctx := context.Background()
	_, uc := fixture()

	bio := "new bio"
	gender := entity.GenderFemale
	badGender := "dragon"
	tooYoung := 12

	user, err := uc.UpdateProfile(ctx, 1, entity.UpdateProfileRequest{
		Bio:    &bio,
		Gender: &gender,
	})
	require.NoError(t, err)
	assert.Equal(t, "new bio", user.Bio)
	assert.Equal(t, entity.GenderFemale, user.Gender)
	assert.Equal(t, "Ana", user.Name)

	// invalid values are ignored, not errors
	user, err = uc.UpdateProfile(ctx, 1, entity.UpdateProfileRequest{
		Gender: &badGender,
		Age:    &tooYoung,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GenderFemale, user.Gender)
	assert.Equal(t, 25, user.Age)
}

func TestRemovePhotoByIndexAndPath(t *testing.T) {
	ctx := context.Background()
	_, uc := fixture()

	index := 0
	user, err := uc.RemovePhoto(ctx, 1, &index, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StringList{"/uploads/b.jpg"}, user.Photos)

	user, err = uc.RemovePhoto(ctx, 1, nil, "/uploads/b.jpg")
	require.NoError(t, err)
	assert.Empty(t, user.Photos)

	// unknown path leaves the profile untouched
	user, err = uc.RemovePhoto(ctx, 1, nil, "/uploads/missing.jpg")
	require.NoError(t, err)
	assert.Empty(t, user.Photos)
}

func TestSubmitQuestionsCompletesProfile(t *testing.T) {
	ctx := context.Background()
	_, uc := fixture()

	user, err := uc.SubmitQuestions(ctx, 1, entity.SubmitQuestionsRequest{
		Gender:      entity.GenderFemale,
		Intent:      entity.IntentSerious,
		LookingFor:  []string{entity.GenderMale},
		MusicGenres: []string{" Pop ", "", "Rock"},
		Hobbies:     []string{"Hiking"},
		About:       "  hello  ",
	})
	require.NoError(t, err)

	assert.True(t, user.ProfileComplete)
	assert.Equal(t, entity.StringList{"Pop", "Rock"}, user.ProfileQuestions.MusicGenres)
	assert.Equal(t, "hello", user.ProfileQuestions.About)
	assert.Equal(t, entity.StringList{entity.GenderMale}, user.LookingFor)
}

func TestQuestionOptionsListsEnums(t *testing.T) {
	_, uc := fixture()

	options := uc.QuestionOptions()
	assert.Equal(t, entity.Genders, options.Genders)
	assert.Equal(t, entity.Intents, options.Intents)
	assert.NotEmpty(t, options.MusicGenres)
	assert.NotEmpty(t, options.Hobbies)
	assert.NotEmpty(t, options.Passions)
}
