package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/labyrinth-api/api"
	api_i "github.com/beka-birhanu/labyrinth-api/api/i"
	identityapi "github.com/beka-birhanu/labyrinth-api/api/identity"
	puzzleapi "github.com/beka-birhanu/labyrinth-api/api/puzzle"
	"github.com/beka-birhanu/labyrinth-api/config"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/repo"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/token"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/rs/zerolog"
)

// Global variables for dependencies
var (
	userRepo         i.UserRepo
	puzzleRepo       i.PuzzleRepo
	jwtTokenizer     i.Tokenizer
	authService      i.Authenticator
	puzzleService    i.PuzzleManager
	authController   api_i.Controller
	puzzleController api_i.Controller
	router           *api.Router
	appLogger        zerolog.Logger
)

func initRepos() {
	userRepo = repo.NewUserRepo()
	puzzleRepo = repo.NewPuzzleRepo()
	appLogger.Info().Msg("In-memory repositories initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info().Msg("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer, config.NewLogger("AUTH"))
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating auth service")
	}
	appLogger.Info().Msg("Auth service initialized")
}

func initPuzzleService() {
	var err error
	puzzleService, err = service.NewPuzzleService(puzzleRepo, userRepo, config.NewLogger("PUZZLE"), &service.PuzzleOptions{
		MaxDimension: config.Envs.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating puzzle service")
	}
	appLogger.Info().Msg("Puzzle service initialized")
}

func initAuthController() {
	authController = identityapi.NewIdentityServer(authService)
	appLogger.Info().Msg("Auth controller initialized")
}

func initPuzzleController() {
	var err error
	puzzleController, err = puzzleapi.NewPuzzleController(puzzleService)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating puzzle controller")
	}
	appLogger.Info().Msg("Puzzle controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, puzzleController},
		AuthorizationMiddleware: identityapi.Authoriz(t),
	})
	appLogger.Info().Msg("Router initialized")
}

func main() {
	config.SetLogLevel(config.Envs.LogLevel)
	appLogger = config.NewLogger("APP")

	// Initialize dependencies
	initRepos()
	initJWTTokenizer()
	initAuthService()
	initPuzzleService()
	initAuthController()
	initPuzzleController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error().Err(err).Msg("Starting server")
		os.Exit(1)
	}
}
