package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	// Escape hatch for unit testing without a terminal
	unitTestAskFunc func(survey.Prompt, any, ...survey.AskOpt) error
)

var (
	ErrNotInteractive = errors.New("an interactive terminal is required")
	ErrAborted        = errors.New("aborted by user")
	ErrNoOptions      = errors.New("nothing to select from")
)

type SurveyConfig struct {
	Logger zerolog.Logger
	// Opts apply to every question, e.g. survey.WithStdio
	Opts []survey.AskOpt
}

func NewSurvey(conf SurveyConfig) *Survey {
	return &Survey{
		log:  conf.Logger,
		opts: conf.Opts,
	}
}

// Survey asks questions on the terminal
type Survey struct {
	log  zerolog.Logger
	opts []survey.AskOpt
}

func (s *Survey) ask(p survey.Prompt, response any, opts ...survey.AskOpt) error {
	ask := survey.AskOne
	if unitTestAskFunc != nil {
		ask = unitTestAskFunc
	}

	all := append(append([]survey.AskOpt{}, s.opts...), opts...)
	err := ask(p, response, all...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func (s *Survey) Select(message string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	var idx int
	if err := s.ask(&survey.Select{Message: message, Options: options}, &idx); err != nil {
		return 0, fmt.Errorf("error selecting: %w", err)
	}

	s.log.Debug().Str("choice", options[idx]).Msg("selected")
	return idx, nil
}

func (s *Survey) MultiSelect(message string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	idxs := []int{}
	if err := s.ask(&survey.MultiSelect{Message: message, Options: options}, &idxs); err != nil {
		return nil, fmt.Errorf("error selecting: %w", err)
	}

	return idxs, nil
}

func (s *Survey) Input(message string) (string, error) {
	var out string
	if err := s.ask(&survey.Input{Message: message}, &out, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return out, nil
}

func (s *Survey) Confirm(message string, def bool) (bool, error) {
	out := def
	if err := s.ask(&survey.Confirm{Message: message, Default: def}, &out); err != nil {
		return false, fmt.Errorf("error confirming: %w", err)
	}
	return out, nil
}

// RequireTerminal errors unless stdin is attached to a terminal
func RequireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotInteractive
	}
	return nil
}
