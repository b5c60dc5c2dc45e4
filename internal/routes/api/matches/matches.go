package apiMatches

import (
	"net/http"
	"strconv"

	"github.com/adityarizki/amora/internal/routes/api/respond"
	discoverUseCase "github.com/adityarizki/amora/internal/usecase/discover"
	matchUseCase "github.com/adityarizki/amora/internal/usecase/match"
	"github.com/adityarizki/amora/pkg/http_util"
	"github.com/labstack/echo"
)

func LikeHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.BadRequest(c, "invalid user id")
	}

	result, err := matchCase.Like(c.Request().Context(), respond.CurrentUserID(c), uint(targetID))
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, result)
}

func SkipHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.BadRequest(c, "invalid user id")
	}

	result, err := matchCase.Skip(c.Request().Context(), respond.CurrentUserID(c), uint(targetID))
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, result)
}

func DiscoverHandler(c echo.Context, discoverCase discoverUseCase.IDiscoverUseCase) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	intent := c.QueryParam("intent")
	stack := discoverUseCase.ParseStack(c.QueryParam("stack"))

	feed, err := discoverCase.Discover(c.Request().Context(), respond.CurrentUserID(c), page, limit, intent, stack)
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, feed)
}

func ListMatchesHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	matches, err := matchCase.ListMatches(c.Request().Context(), respond.CurrentUserID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, matches)
}

func MatchDetailHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.BadRequest(c, "invalid match id")
	}

	detail, err := matchCase.MatchDetail(c.Request().Context(), respond.CurrentUserID(c), uint(matchID))
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, detail)
}
