package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init so that library
// code and tests never hit a nil logger; Init only reconfigures it.
var Log = logrus.New()

// Init configures the global logger from the environment.
// Call it once from main (or TestMain).
func Init() {
	configure(os.Stdout)
}

// InitFile is Init for hosts that own stdout (the terminal client draws the
// game there), so log lines go to a file instead.
func InitFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	configure(f)
	return f, nil
}

func configure(out io.Writer) {
	// 1. Level from LOG_LEVEL, "info" by default. "debug" shows every turn.
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Formatter: "json" for log collection, text otherwise.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   out == io.Writer(os.Stdout),
		})
	}

	Log.SetOutput(out)
}
