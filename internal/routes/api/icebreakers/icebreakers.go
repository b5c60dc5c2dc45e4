package apiIcebreakers

import (
	"net/http"
	"strconv"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/adityarizki/amora/internal/routes/api/respond"
	icebreakerUseCase "github.com/adityarizki/amora/internal/usecase/icebreaker"
	"github.com/adityarizki/amora/pkg/http_util"
	"github.com/labstack/echo"
)

func StartersHandler(c echo.Context, icebreakerCase icebreakerUseCase.IIcebreakerUseCase) error {
	var matchID uint
	if raw := c.QueryParam("matchId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return http_util.BadRequest(c, "invalid match id")
		}
		matchID = uint(parsed)
	}

	starters, err := icebreakerCase.Starters(c.Request().Context(), respond.CurrentUserID(c), matchID)
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, starters)
}

func PickupLineHandler(c echo.Context, icebreakerCase icebreakerUseCase.IIcebreakerUseCase) error {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.BadRequest(c, "invalid match id")
	}

	line, err := icebreakerCase.PickupLine(c.Request().Context(), respond.CurrentUserID(c), uint(matchID))
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, line)
}

func TodayPromptHandler(c echo.Context, icebreakerCase icebreakerUseCase.IIcebreakerUseCase) error {
	prompt, err := icebreakerCase.TodayPrompt(c.Request().Context(), respond.CurrentUserID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, prompt)
}

func AnswerPromptHandler(c echo.Context, icebreakerCase icebreakerUseCase.IIcebreakerUseCase) error {
	reqBody, err := http_util.Decode[entity.AnswerPromptRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "invalid request")
	}

	saved, err := icebreakerCase.AnswerPrompt(c.Request().Context(), respond.CurrentUserID(c), reqBody.Answer)
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, saved)
}
