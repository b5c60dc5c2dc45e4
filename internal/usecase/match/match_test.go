package matchUseCase

import (
	"context"
	"testing"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swipeKey struct {
	actor  uint
	target uint
}

// fakeMatchRepo is an in-memory stand-in for the swipe and match tables,
// keeping one swipe row per actor/target pair like the real schema.
type fakeMatchRepo struct {
	swipes  map[swipeKey]entity.SwipeAction
	matches []*entity.Match
	nextID  uint
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{
		swipes: map[swipeKey]entity.SwipeAction{},
		nextID: 1,
	}
}

func (f *fakeMatchRepo) CreateSwipe(ctx context.Context, actorID, targetID uint, action entity.SwipeAction) error {
	key := swipeKey{actorID, targetID}
	if _, ok := f.swipes[key]; ok {
		return nil
	}
	f.swipes[key] = action
	return nil
}

func (f *fakeMatchRepo) GetSwipe(ctx context.Context, actorID, targetID uint) (*entity.Swipe, error) {
	action, ok := f.swipes[swipeKey{actorID, targetID}]
	if !ok {
		return nil, nil
	}
	return &entity.Swipe{ActorID: actorID, TargetID: targetID, Action: action}, nil
}

func (f *fakeMatchRepo) UpdateSwipeAction(ctx context.Context, actorID, targetID uint, action entity.SwipeAction) error {
	key := swipeKey{actorID, targetID}
	if _, ok := f.swipes[key]; !ok {
		return entity.ErrNotFound
	}
	f.swipes[key] = action
	return nil
}

func (f *fakeMatchRepo) HasLiked(ctx context.Context, actorID, targetID uint) (bool, error) {
	return f.swipes[swipeKey{actorID, targetID}] == entity.ActionLike, nil
}

func (f *fakeMatchRepo) SwipedTargetIDs(ctx context.Context, actorID uint) ([]uint, error) {
	ids := []uint{}
	for key := range f.swipes {
		if key.actor == actorID {
			ids = append(ids, key.target)
		}
	}
	return ids, nil
}

func (f *fakeMatchRepo) FindOrCreateMatch(ctx context.Context, a, b uint) (*entity.Match, bool, error) {
	lo, hi := entity.OrderPair(a, b)
	for _, m := range f.matches {
		if m.UserOneID == lo && m.UserTwoID == hi {
			return m, false, nil
		}
	}
	match := &entity.Match{ID: f.nextID, UserOneID: lo, UserTwoID: hi}
	f.nextID++
	f.matches = append(f.matches, match)
	return match, true, nil
}

func (f *fakeMatchRepo) GetMatch(ctx context.Context, id uint) (*entity.Match, error) {
	for _, m := range f.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (f *fakeMatchRepo) MatchesForUser(ctx context.Context, userID uint) ([]entity.Match, error) {
	out := []entity.Match{}
	for _, m := range f.matches {
		if m.HasMember(userID) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) UpdateLastMessage(ctx context.Context, matchID uint, preview string) error {
	for _, m := range f.matches {
		if m.ID == matchID {
			m.LastMessage = preview
			return nil
		}
	}
	return entity.ErrNotFound
}

type fakeUserRepo struct {
	users map[uint]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
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

func testUsers() (*fakeUserRepo, *fakeMatchRepo) {
	users := newFakeUserRepo(
		&entity.User{ID: 1, Name: "Ana", Email: "ana@example.com"},
		&entity.User{ID: 2, Name: "Ben", Email: "ben@example.com"},
		&entity.User{ID: 3, Name: "Cleo", Email: "cleo@example.com"},
	)
	return users, newFakeMatchRepo()
}

func TestMutualLikeCreatesExactlyOneMatch(t *testing.T) {
	ctx := context.Background()
	users, matches := testUsers()
	uc := New(users, matches)

	first, err := uc.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.False(t, first.MatchCreated)
	assert.Nil(t, first.MatchID)

	second, err := uc.Like(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, second.MatchCreated)
	require.NotNil(t, second.MatchID)

	assert.Len(t, matches.matches, 1)
	match := matches.matches[0]
	assert.True(t, match.HasMember(1))
	assert.True(t, match.HasMember(2))
}

func TestRepeatedLikeIsNoOp(t *testing.T) {
	ctx := context.Background()
	users, matches := testUsers()
	uc := New(users, matches)

	_, err := uc.Like(ctx, 1, 2)
	require.NoError(t, err)
	_, err = uc.Like(ctx, 2, 1)
	require.NoError(t, err)

	again, err := uc.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, again.Liked)
	assert.False(t, again.MatchCreated)
	assert.Nil(t, again.MatchID)
	assert.Len(t, matches.matches, 1)
}

func TestLikeAfterSkipUpgradesAndCanMatch(t *testing.T) {
	ctx := context.Background()
	users, matches := testUsers()
	uc := New(users, matches)

	_, err := uc.Skip(ctx, 1, 2)
	require.NoError(t, err)
	_, err = uc.Like(ctx, 2, 1)
	require.NoError(t, err)

	// changing my mind: the skip becomes a like and the pair matches
	result, err := uc.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, result.MatchCreated)
	require.NotNil(t, result.MatchID)
	assert.Len(t, matches.matches, 1)

	liked, err := matches.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestSkipWithoutLikeNeverMatches(t *testing.T) {
	ctx := context.Background()
	users, matches := testUsers()
	uc := New(users, matches)

	_, err := uc.Skip(ctx, 1, 2)
	require.NoError(t, err)

	result, err := uc.Like(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.False(t, result.MatchCreated)
	assert.Empty(t, matches.matches)

	liked, err := matches.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestSkipAfterLikeKeepsLike(t *testing.T) {
	ctx := context.Background()
	users, matches := testUsers()
	uc := New(users, matches)

	_, err := uc.Like(ctx, 1, 2)
	require.NoError(t, err)
	result, err := uc.Skip(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	liked, err := matches.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestSelfLikeRejected(t *testing.T) {
	users, matches := testUsers()
	uc := New(users, matches)

	_, err := uc.Like(context.Background(), 1, 1)
	assert.ErrorIs(t, err, entity.ErrSelfAction)
}

func TestLikeUnknownTarget(t *testing.T) {
	users, matches := testUsers()
	uc := New(users, matches)

	_, err := uc.Like(context.Background(), 1, 99)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSkipIsIdempotent(t *testing.T) {
	ctx := context.Background()
	users, matches := testUsers()
	uc := New(users, matches)

	result, err := uc.Skip(ctx, 1, 3)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	_, err = uc.Skip(ctx, 1, 3)
	require.NoError(t, err)

	ids, err := matches.SwipedTargetIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, ids)
}

func TestMatchDetailRequiresMembership(t *testing.T) {
	ctx := context.Background()
	users, matches := testUsers()
	uc := New(users, matches)

	_, err := uc.Like(ctx, 1, 2)
	require.NoError(t, err)
	result, err := uc.Like(ctx, 2, 1)
	require.NoError(t, err)

	detail, err := uc.MatchDetail(ctx, 1, *result.MatchID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), detail.OtherUser.ID)

	_, err = uc.MatchDetail(ctx, 3, *result.MatchID)
	assert.ErrorIs(t, err, entity.ErrNotAuthorized)
}
