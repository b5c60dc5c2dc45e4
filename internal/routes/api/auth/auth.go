package apiAuth

import (
	"net/http"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/adityarizki/amora/internal/routes/api/respond"
	authUseCase "github.com/adityarizki/amora/internal/usecase/auth"
	"github.com/adityarizki/amora/pkg/http_util"
	"github.com/labstack/echo"
)

func SignUpHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.CreateUserRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "invalid request")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, map[string]interface{}{
			"message":  "Bad request check your request",
			"problems": problems,
		})
	}

	user, token, err := authCase.SignupUser(c.Request().Context(), reqBody)
	if err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusCreated, entity.AuthResponse{Token: token, User: user})
}

func SignInHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.SignInRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "invalid request")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.BadRequest(c, "Bad request check your request")
	}

	user, token, err := authCase.SignIn(c.Request().Context(), reqBody.Email, reqBody.Password)
	if err != nil {
		return http_util.Message(c, http.StatusUnauthorized, "invalid credentials")
	}

	return http_util.Encode(c, http.StatusOK, entity.AuthResponse{Token: token, User: user})
}

func MeHandler(c echo.Context) error {
	user := respond.CurrentUser(c)
	if user == nil {
		return http_util.Message(c, http.StatusUnauthorized, "invalid token")
	}
	return http_util.Encode(c, http.StatusOK, user)
}
