package main

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/luqihan/charityevents/internal/server"
)

func main() {
	// The .env file is optional, every setting has a default.
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)

	// Human readable logs for development, JSON for release.
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

	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
