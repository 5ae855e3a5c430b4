package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}

func ParseLogLevel(name string) (LogLevel, error) {
	switch l := LogLevel(strings.ToLower(name)); l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return l, nil
	default:
		return "", fmt.Errorf("%v is not a valid LogLevel", name)
	}
}

type LogFormat string

const (
	LogFormatHuman LogFormat = "human"
	LogFormatJson  LogFormat = "json"
)

func (l LogFormat) String() string {
	return string(l)
}

func ParseLogFormat(name string) (LogFormat, error) {
	switch f := LogFormat(strings.ToLower(name)); f {
	case LogFormatHuman, LogFormatJson:
		return f, nil
	default:
		return "", fmt.Errorf("%v is not a valid LogFormat", name)
	}
}

type LoggingConfig struct {
	Level  LogLevel
	Format LogFormat
}

// Init builds the process logger. Unknown levels fall back to info and unknown formats to
// human, so a bad env var never prevents the CLI from starting.
func Init(conf *LoggingConfig) zerolog.Logger {
	var logger zerolog.Logger
	if f, err := ParseLogFormat(conf.Format.String()); err == nil && f == LogFormatJson {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	level, err := ParseLogLevel(conf.Level.String())
	if err != nil {
		level = LogLevelInfo
	}

	return logger.Level(toZerolog(level)).With().Timestamp().Logger()
}

func toZerolog(l LogLevel) zerolog.Level {
	switch l {
	case LogLevelTrace:
		return zerolog.TraceLevel
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
