package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults so library packages never see a nil logger.
var Log = logrus.New()

// Init configures the global logger from the environment. Call it once from
// main.
//
// LOG_LEVEL selects the level (default "info"). LOG_FORMAT=json switches to
// the JSON formatter; anything else uses the text formatter.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput is Init with an explicit destination. The terminal viewer
// uses it to keep log lines off the screen it draws on.
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}
