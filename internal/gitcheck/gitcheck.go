package gitcheck

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/rs/zerolog"
)

const infoExcludePath = ".git/info/exclude"

type CheckerConfig struct {
	Logger zerolog.Logger
	// RootFS resolves the global and system exclude files, defaults to the OS root
	RootFS billy.Filesystem
}

func NewChecker(conf CheckerConfig) *Checker {
	root := conf.RootFS
	if root == nil {
		root = osfs.New("/")
	}

	return &Checker{
		log:  conf.Logger,
		root: root,
	}
}

// Checker answers whether a file would be left out of commits
type Checker struct {
	log  zerolog.Logger
	root billy.Filesystem
}

// IsIgnored reports whether path is kept out of commits by git: excluded by .gitignore,
// .git/info/exclude or the global/system core.excludesFile, and not already tracked. inRepo is
// false when the path is not inside a git repository at all.
func (c *Checker) IsIgnored(path string) (bool, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, false, fmt.Errorf("error resolving path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			c.log.Debug().Str("path", abs).Msg("not inside a git repository")
			return false, false, nil
		}
		return false, false, fmt.Errorf("error opening repository: %w", err)
	}

	tree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("error getting work tree: %w", err)
	}

	rel, err := filepath.Rel(tree.Filesystem.Root(), abs)
	if err != nil {
		return false, true, fmt.Errorf("error computing repo relative path: %w", err)
	}
	rel = filepath.ToSlash(rel)

	idx, err := repo.Storer.Index()
	if err != nil {
		return false, true, fmt.Errorf("error reading index: %w", err)
	}
	if _, err := idx.Entry(rel); err == nil {
		c.log.Debug().Str("path", rel).Msg("path is tracked")
		return false, true, nil
	} else if !errors.Is(err, index.ErrEntryNotFound) {
		return false, true, fmt.Errorf("error looking up index entry: %w", err)
	}

	extra, err := c.excludePatterns(tree.Filesystem)
	if err != nil {
		return false, true, err
	}

	ignored, err := MatchIgnored(tree.Filesystem, rel, extra...)
	if err != nil {
		return false, true, err
	}

	return ignored, true, nil
}

// excludePatterns collects the patterns that live outside of .gitignore files, lowest
// priority first
func (c *Checker) excludePatterns(work billy.Filesystem) ([]gitignore.Pattern, error) {
	system, err := gitignore.LoadSystemPatterns(c.root)
	if err != nil {
		return nil, fmt.Errorf("error reading system excludes: %w", err)
	}

	global, err := gitignore.LoadGlobalPatterns(c.root)
	if err != nil {
		return nil, fmt.Errorf("error reading global excludes: %w", err)
	}

	info, err := readInfoExclude(work)
	if err != nil {
		return nil, err
	}

	patterns := append(system, global...)
	return append(patterns, info...), nil
}

func readInfoExclude(work billy.Filesystem) ([]gitignore.Pattern, error) {
	f, err := work.Open(infoExcludePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening %v: %w", infoExcludePath, err)
	}
	defer f.Close()

	patterns := []gitignore.Pattern{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %v: %w", infoExcludePath, err)
	}

	return patterns, nil
}

// MatchIgnored applies extra followed by every .gitignore found in fs to the slash or OS
// separated rel path. Later patterns take precedence.
func MatchIgnored(fs billy.Filesystem, rel string, extra ...gitignore.Pattern) (bool, error) {
	patterns, err := gitignore.ReadPatterns(fs, nil)
	if err != nil {
		return false, fmt.Errorf("error reading ignore patterns: %w", err)
	}

	all := append(append([]gitignore.Pattern{}, extra...), patterns...)
	parts := strings.Split(filepath.ToSlash(rel), "/")
	return gitignore.NewMatcher(all).Match(parts, false), nil
}
