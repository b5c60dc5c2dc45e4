package match__test

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/adityarizki/amora/internal/entity"
	helper_test "github.com/adityarizki/amora/test/helper"
	"gotest.tools/assert"
)

var globalResources *helper_test.TestServerResources

func TestMain(m *testing.M) {
	resources, err := helper_test.SetupTestServer(context.TODO())
	var code int

	if err != nil {
		log.Printf("Failed to set up test server: %s", err)
		code = 1
	} else {
		globalResources = resources
		code = m.Run()
	}

	resources.CleanupTestServer()
	os.Exit(code)
}

func TestMutualLikeFlow(t *testing.T) {
	base := globalResources.BaseURL

	ana := helper_test.RegisterUser(t, base, "Ana", "ana-flow@example.com", "password123")
	ben := helper_test.RegisterUser(t, base, "Ben", "ben-flow@example.com", "password123")

	var first entity.LikeResponse
	resp := helper_test.DoJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/users/like/%d", base, ben.User.ID), ana.Token, nil, &first)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, first.Liked)
	assert.Equal(t, false, first.MatchCreated)

	var second entity.LikeResponse
	resp = helper_test.DoJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/users/like/%d", base, ana.User.ID), ben.Token, nil, &second)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, second.MatchCreated)
	assert.Assert(t, second.MatchID != nil)

	// exactly one match row for the pair
	var count int64
	globalResources.ORM.Model(&entity.Match{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// re-like does not create a second match
	var again entity.LikeResponse
	resp = helper_test.DoJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/users/like/%d", base, ben.User.ID), ana.Token, nil, &again)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, again.MatchCreated)

	globalResources.ORM.Model(&entity.Match{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLikeAfterSkipStillMatches(t *testing.T) {
	base := globalResources.BaseURL

	cleo := helper_test.RegisterUser(t, base, "Cleo", "cleo-upgrade@example.com", "password123")
	dan := helper_test.RegisterUser(t, base, "Dan", "dan-upgrade@example.com", "password123")

	resp := helper_test.DoJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/users/skip/%d", base, dan.User.ID), cleo.Token, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var theirs entity.LikeResponse
	resp = helper_test.DoJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/users/like/%d", base, cleo.User.ID), dan.Token, nil, &theirs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, theirs.MatchCreated)

	// the earlier skip does not lock the pair out
	var mine entity.LikeResponse
	resp = helper_test.DoJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/users/like/%d", base, dan.User.ID), cleo.Token, nil, &mine)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, mine.MatchCreated)
	assert.Assert(t, mine.MatchID != nil)

	var swipe entity.Swipe
	err := globalResources.ORM.
		Where("actor_id = ? AND target_id = ?", cleo.User.ID, dan.User.ID).
		First(&swipe).Error
	assert.NilError(t, err)
	assert.Equal(t, entity.ActionLike, swipe.Action)
}

func TestSelfLikeRejected(t *testing.T) {
	base := globalResources.BaseURL

	user := helper_test.RegisterUser(t, base, "Solo", "solo@example.com", "password123")

	resp := helper_test.DoJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/users/like/%d", base, user.User.ID), user.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSwipedUsersLeaveDiscovery(t *testing.T) {
	base := globalResources.BaseURL

	_, err := helper_test.PopulateUsers(globalResources.ORM, 3)
	assert.NilError(t, err)

	me := helper_test.RegisterUser(t, base, "Seeker", "seeker@example.com", "password123")

	var before entity.DiscoverResponse
	resp := helper_test.DoJSON(t, http.MethodGet,
		base+"/api/users/discover?page=1&limit=50", me.Token, nil, &before)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Assert(t, before.Count > 0)

	skipped := before.Users[0].ID
	resp = helper_test.DoJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/users/skip/%d", base, skipped), me.Token, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var after entity.DiscoverResponse
	resp = helper_test.DoJSON(t, http.MethodGet,
		base+"/api/users/discover?page=1&limit=50", me.Token, nil, &after)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, u := range after.Users {
		assert.Assert(t, u.ID != skipped, "skipped user %d still in feed", skipped)
	}
}
