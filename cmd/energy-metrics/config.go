package main

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EnvDataFile names the environment variable holding the default input file.
const EnvDataFile = "ENERGY_DATA_FILE"

// resolveSource returns the input file reference: the --source flag when set,
// otherwise ENERGY_DATA_FILE, otherwise "" (synthetic data).
func resolveSource(flagValue string, logger zerolog.Logger) string {
	if flagValue != "" {
		return flagValue
	}
	source := strings.TrimSpace(os.Getenv(EnvDataFile))
	if source != "" {
		logger.Debug().Str("source", source).Msg("using input file from " + EnvDataFile)
	}
	return source
}

// newLogger builds the console logger for one invocation. Every entry carries
// a run_id so the lines of a single run can be correlated. An unknown level
// name is warned about and replaced by info.
func newLogger(w io.Writer, levelName string) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Timestamp().
		Str("run_id", uuid.New().String()).
		Logger()

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelName)))
	if err != nil || level == zerolog.NoLevel {
		logger.Warn().Str("value", levelName).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}
