package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adityarizki/amora/internal/config"
	"github.com/adityarizki/amora/internal/datastore/postgres"
	redisClient "github.com/adityarizki/amora/internal/datastore/redis"
	appMiddleware "github.com/adityarizki/amora/internal/middleware"
	matchRepo "github.com/adityarizki/amora/internal/repository/match"
	messageRepo "github.com/adityarizki/amora/internal/repository/message"
	promptRepo "github.com/adityarizki/amora/internal/repository/prompt"
	userRepo "github.com/adityarizki/amora/internal/repository/user"
	routesAPI "github.com/adityarizki/amora/internal/routes/api"
	authUseCase "github.com/adityarizki/amora/internal/usecase/auth"
	chatUseCase "github.com/adityarizki/amora/internal/usecase/chat"
	discoverUseCase "github.com/adityarizki/amora/internal/usecase/discover"
	icebreakerUseCase "github.com/adityarizki/amora/internal/usecase/icebreaker"
	matchUseCase "github.com/adityarizki/amora/internal/usecase/match"
	profileUseCase "github.com/adityarizki/amora/internal/usecase/profile"
	"github.com/adityarizki/amora/internal/ws"
	"github.com/adityarizki/amora/pkg/gemini"
	"github.com/adityarizki/amora/pkg/jwt"
	"github.com/labstack/echo"
	"golang.org/x/time/rate"
)

// Run wires the datastores, usecases and HTTP surface together and serves
// until ctx is cancelled or a termination signal arrives. args[0], when
// present, selects the env prefix for configuration keys (default "dev").
func Run(ctx context.Context, w io.Writer, args []string) error {
	env := "dev"
	if len(args) > 0 && args[0] != "" {
		env = args[0]
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if secret := cfg.Get("JWT_SECRET"); secret != "" {
		jwt.SetSecret(secret)
	}

	db, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"),
		cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		return err
	}

	rdb, err := redisClient.Connect(cfg.Get("REDIS_HOST"), cfg.Get("REDIS_PORT"))
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	users := userRepo.New(db)
	matches := matchRepo.New(db, rdb)
	messages := messageRepo.New(db)
	prompts := promptRepo.New(db)

	ai := gemini.NewClient(cfg.Get("GEMINI_API_KEY"), cfg.Get("GEMINI_MODEL"))

	authCase := authUseCase.New(users)
	profileCase := profileUseCase.New(users)
	matchCase := matchUseCase.New(users, matches)
	discoverCase := discoverUseCase.New(users, matches)
	chatCase := chatUseCase.New(matches, messages)
	icebreakerCase := icebreakerUseCase.New(users, matches, prompts, ai)

	hub := ws.NewHub(matchCase, chatCase)
	go hub.Run()

	e := echo.New()
	routesAPI.InitAPIRoutes(e, routesAPI.Deps{
		UserRepo:       users,
		AuthCase:       authCase,
		ProfileCase:    profileCase,
		MatchCase:      matchCase,
		DiscoverCase:   discoverCase,
		ChatCase:       chatCase,
		IcebreakerCase: icebreakerCase,
		Hub:            hub,
		AILimiter:      appMiddleware.NewRateLimiter(rate.Every(10*time.Second), 3),
		UploadsDir:     cfg.Get("UPLOADS_DIR"),
		ClientOrigin:   cfg.Get("CLIENT_ORIGIN"),
	})

	server := &http.Server{
		Addr:    ":" + cfg.Get("PORT"),
		Handler: e,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(w, "Server starting on %s\n", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
