package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicjohnson145/envop/internal/logging"
	"github.com/spf13/viper"
)

type HistoryKind string

const (
	HistoryKindSqlite HistoryKind = "sqlite"
	HistoryKindNone   HistoryKind = "none"
)

func (h HistoryKind) String() string {
	return string(h)
}

func ParseHistoryKind(name string) (HistoryKind, error) {
	switch k := HistoryKind(strings.ToLower(name)); k {
	case HistoryKindSqlite, HistoryKindNone:
		return k, nil
	default:
		return "", fmt.Errorf("%v is not a valid HistoryKind", name)
	}
}

const (
	LoggingLevel  = "log.level"
	LoggingFormat = "log.format"

	OPBinary = "op.binary"

	EnvFile      = "env.file"
	ProvisionDir = "provision.dir"

	HistoryType   = "history.kind"
	HistoryDBPath = "history.db_path"

	GitCheck = "git.check"

	ReleaseAPIURL = "release.api_url"
	ReleaseRepo   = "release.repo"
)

var (
	// Prompts and logs share the terminal, keep the CLI quiet unless asked
	DefaultLogLevel  = logging.LogLevelWarn.String()
	DefaultLogFormat = logging.LogFormatHuman.String()

	DefaultOPBinary = "op"

	DefaultEnvFile      = ".env"
	DefaultProvisionDir = "."

	DefaultHistoryType = HistoryKindSqlite.String()

	DefaultGitCheck = true

	DefaultReleaseAPIURL = "https://api.github.com"
	DefaultReleaseRepo   = "nicjohnson145/envop"
)

func InitConfig() error {
	viper.SetDefault(LoggingLevel, DefaultLogLevel)
	viper.SetDefault(LoggingFormat, DefaultLogFormat)

	viper.SetDefault(OPBinary, DefaultOPBinary)

	viper.SetDefault(EnvFile, DefaultEnvFile)
	viper.SetDefault(ProvisionDir, DefaultProvisionDir)

	viper.SetDefault(HistoryType, DefaultHistoryType)
	viper.SetDefault(HistoryDBPath, DefaultHistoryDBPath())

	viper.SetDefault(GitCheck, DefaultGitCheck)

	viper.SetDefault(ReleaseAPIURL, DefaultReleaseAPIURL)
	viper.SetDefault(ReleaseRepo, DefaultReleaseRepo)

	viper.SetEnvPrefix("envop")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigName(".envop")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

func DefaultHistoryDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "envop", "history.db")
	}
	return filepath.Join(dir, "envop", "history.db")
}
