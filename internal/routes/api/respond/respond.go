package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/adityarizki/amora/internal/entity"
	authUseCase "github.com/adityarizki/amora/internal/usecase/auth"
	"github.com/adityarizki/amora/pkg/gemini"
	"github.com/adityarizki/amora/pkg/http_util"
	"github.com/labstack/echo"
)

// Error maps the domain sentinels to their HTTP status. Unexpected errors
// are logged and surface as a generic 500 body.
func Error(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		return http_util.Message(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, entity.ErrSelfAction), errors.Is(err, entity.ErrNotAuthorized):
		return http_util.Message(c, http.StatusForbidden, "not authorized")
	case errors.Is(err, entity.ErrNotFound):
		return http_util.Message(c, http.StatusNotFound, "not found")
	case errors.Is(err, authUseCase.ErrEmailTaken):
		return http_util.Message(c, http.StatusConflict, "email already in use")
	case errors.Is(err, gemini.ErrNotConfigured):
		return http_util.Message(c, http.StatusNotImplemented, "AI not configured")
	case errors.Is(err, gemini.ErrNoContent):
		return http_util.Message(c, http.StatusBadGateway, "AI returned no content")
	default:
		log.Printf("request failed: %v", err)
		return http_util.Message(c, http.StatusInternalServerError, "something went wrong")
	}
}

// CurrentUser returns the profile stored by the JWT middleware.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get("userProfile").(*entity.User)
	return user
}

func CurrentUserID(c echo.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}
