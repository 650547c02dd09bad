package main

import (
	"io"
	"os"

	"github.com/budgetglass/backend/internal/config"
	"github.com/budgetglass/backend/internal/identity"
	"github.com/budgetglass/backend/internal/router"
	"github.com/budgetglass/backend/internal/upstream"
	"github.com/budgetglass/backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, the environment wins either way
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	store, err := identity.Connect(cfg.DataDir)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	client := upstream.New(cfg.UpstreamURL)

	// The answering service usually lives in the same deployment as the
	// data API, but can be pointed elsewhere
	asker := client
	if cfg.AskURL != cfg.UpstreamURL {
		asker = upstream.New(cfg.AskURL)
	}

	viewmodel.DocumentsBasePath = cfg.DocumentsBaseURL

	r, teardown, err := router.Router()
	defer teardown()

	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(&r.RouterGroup, client, asker, store)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
