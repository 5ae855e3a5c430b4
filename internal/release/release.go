package release

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/nicjohnson145/envop/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/mod/semver"
)

type CheckerConfig struct {
	Logger  zerolog.Logger
	Client  *http.Client
	BaseURL string
	Repo    string
}

func NewChecker(conf CheckerConfig) *Checker {
	client := conf.Client
	if client == nil {
		client = http.DefaultClient
	}

	return &Checker{
		log:     conf.Logger,
		client:  client,
		baseURL: conf.BaseURL,
		repo:    conf.Repo,
	}
}

func NewCheckerFromEnv(logger zerolog.Logger) *Checker {
	return NewChecker(CheckerConfig{
		Logger:  logger,
		BaseURL: viper.GetString(config.ReleaseAPIURL),
		Repo:    viper.GetString(config.ReleaseRepo),
	})
}

// Checker looks up published envop releases
type Checker struct {
	log     zerolog.Logger
	client  *http.Client
	baseURL string
	repo    string
}

func (c *Checker) LatestVersion(ctx context.Context) (string, error) {
	type respType struct {
		TagName string `json:"tag_name"`
	}

	var resp respType
	var errResp map[string]any

	err := requests.
		URL(c.baseURL).
		Pathf("repos/%v/releases/latest", c.repo).
		Header("accept", "application/vnd.github+json").
		ToJSON(&resp).
		ErrorJSON(&errResp).
		Client(c.client).
		Fetch(ctx)
	if err != nil {
		c.log.Debug().Interface("body", errResp).Msg("error response body")
		return "", fmt.Errorf("error getting latest release: %w", err)
	}

	return resp.TagName, nil
}

type Status struct {
	Current  string
	Latest   string
	Outdated bool
}

func (c *Checker) Check(ctx context.Context, current string) (*Status, error) {
	latest, err := c.LatestVersion(ctx)
	if err != nil {
		return nil, err
	}

	return &Status{
		Current:  current,
		Latest:   latest,
		Outdated: IsNewer(current, latest),
	}, nil
}

// IsNewer reports whether candidate is a later semantic version than current. Development
// builds that don't parse as a version are never considered outdated.
func IsNewer(current string, candidate string) bool {
	cur, cand := canonical(current), canonical(candidate)
	if !semver.IsValid(cur) || !semver.IsValid(cand) {
		return false
	}
	return semver.Compare(cand, cur) > 0
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
