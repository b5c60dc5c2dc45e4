package routesAPI

import (
	"net/http"

	appMiddleware "github.com/adityarizki/amora/internal/middleware"
	userRepo "github.com/adityarizki/amora/internal/repository/user"
	apiAuth "github.com/adityarizki/amora/internal/routes/api/auth"
	apiIcebreakers "github.com/adityarizki/amora/internal/routes/api/icebreakers"
	apiMatches "github.com/adityarizki/amora/internal/routes/api/matches"
	apiMessages "github.com/adityarizki/amora/internal/routes/api/messages"
	apiUsers "github.com/adityarizki/amora/internal/routes/api/users"
	authUseCase "github.com/adityarizki/amora/internal/usecase/auth"
	chatUseCase "github.com/adityarizki/amora/internal/usecase/chat"
	discoverUseCase "github.com/adityarizki/amora/internal/usecase/discover"
	icebreakerUseCase "github.com/adityarizki/amora/internal/usecase/icebreaker"
	matchUseCase "github.com/adityarizki/amora/internal/usecase/match"
	profileUseCase "github.com/adityarizki/amora/internal/usecase/profile"
	"github.com/adityarizki/amora/internal/ws"
	"github.com/labstack/echo"
	echoMiddleware "github.com/labstack/echo/middleware"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	UserRepo       userRepo.IUserRepo
	AuthCase       authUseCase.IAuthUseCase
	ProfileCase    profileUseCase.IProfileUseCase
	MatchCase      matchUseCase.IMatchUseCase
	DiscoverCase   discoverUseCase.IDiscoverUseCase
	ChatCase       chatUseCase.IChatUseCase
	IcebreakerCase icebreakerUseCase.IIcebreakerUseCase
	Hub            *ws.Hub
	AILimiter      *appMiddleware.RateLimiter
	UploadsDir     string
	ClientOrigin   string
}

func InitAPIRoutes(e *echo.Echo, deps Deps) {
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{deps.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.Static("/uploads", deps.UploadsDir)
	e.GET("/ws", ws.ServeWS(deps.Hub))

	api := e.Group("/api")

	api.POST("/auth/register", func(c echo.Context) error {
		return apiAuth.SignUpHandler(c, deps.AuthCase)
	})
	api.POST("/auth/login", func(c echo.Context) error {
		return apiAuth.SignInHandler(c, deps.AuthCase)
	})

	authed := api.Group("", appMiddleware.JWTMiddleware(deps.UserRepo))

	authed.GET("/auth/me", apiAuth.MeHandler)

	authed.GET("/users/me", func(c echo.Context) error {
		return apiUsers.GetMeHandler(c, deps.ProfileCase)
	})
	authed.PUT("/users/me", func(c echo.Context) error {
		return apiUsers.UpdateMeHandler(c, deps.ProfileCase)
	})
	authed.PUT("/users/me/photos", func(c echo.Context) error {
		return apiUsers.UploadPhotosHandler(c, deps.ProfileCase, deps.UploadsDir)
	})
	authed.DELETE("/users/me/photos", func(c echo.Context) error {
		return apiUsers.DeletePhotoHandler(c, deps.ProfileCase)
	})
	authed.GET("/users/questions/options", func(c echo.Context) error {
		return apiUsers.QuestionOptionsHandler(c, deps.ProfileCase)
	})
	authed.POST("/users/questions", func(c echo.Context) error {
		return apiUsers.SubmitQuestionsHandler(c, deps.ProfileCase)
	})

	authed.POST("/users/like/:id", func(c echo.Context) error {
		return apiMatches.LikeHandler(c, deps.MatchCase)
	})
	authed.POST("/users/skip/:id", func(c echo.Context) error {
		return apiMatches.SkipHandler(c, deps.MatchCase)
	})
	authed.GET("/users/discover", func(c echo.Context) error {
		return apiMatches.DiscoverHandler(c, deps.DiscoverCase)
	})

	authed.GET("/matches", func(c echo.Context) error {
		return apiMatches.ListMatchesHandler(c, deps.MatchCase)
	})
	authed.GET("/matches/:id", func(c echo.Context) error {
		return apiMatches.MatchDetailHandler(c, deps.MatchCase)
	})

	authed.GET("/messages/:id", func(c echo.Context) error {
		return apiMessages.ListHandler(c, deps.ChatCase)
	})
	authed.POST("/messages/:id", func(c echo.Context) error {
		return apiMessages.SendHandler(c, deps.ChatCase, deps.Hub)
	})
	authed.POST("/messages/:id/react", func(c echo.Context) error {
		return apiMessages.ReactHandler(c, deps.ChatCase, deps.Hub)
	})

	authed.GET("/starters", func(c echo.Context) error {
		return apiIcebreakers.StartersHandler(c, deps.IcebreakerCase)
	})
	authed.GET("/prompts/today", func(c echo.Context) error {
		return apiIcebreakers.TodayPromptHandler(c, deps.IcebreakerCase)
	})
	authed.POST("/prompts/answer", func(c echo.Context) error {
		return apiIcebreakers.AnswerPromptHandler(c, deps.IcebreakerCase)
	})
	authed.GET("/ai/pickup-line/:id", func(c echo.Context) error {
		return apiIcebreakers.PickupLineHandler(c, deps.IcebreakerCase)
	}, deps.AILimiter.Middleware())
}
