package envsync

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/nicjohnson145/envop/internal/envfile"
	"github.com/nicjohnson145/envop/internal/onepassword"
	"github.com/nicjohnson145/envop/internal/util"
)

const (
	ProvisionPrefix = ".env.provision"

	ProvisionHeader = "# This provision file was auto-generated by envop. You can remove this comment and modify the file as you like.\n" +
		"# Only missing variables will be appended when generating again.\n"
)

// ProvisionFileName is the provision file for a section, nil meaning no section
func ProvisionFileName(section *onepassword.Section) string {
	if section == nil || section.Label == "" {
		return ProvisionPrefix
	}
	return ProvisionPrefix + "." + section.Label
}

func (s *Syncer) provisionPath(section *onepassword.Section) string {
	return filepath.Join(s.provisionDir, ProvisionFileName(section))
}

// DiscoverProvisionFiles lists provision files at the root of fsys in lexical order
func DiscoverProvisionFiles(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, ProvisionPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("error globbing provision files: %w", err)
	}

	files := []string{}
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("error inspecting %v: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		files = append(files, m)
	}

	sort.Strings(files)
	return files, nil
}

// writeProvision appends the references that the file doesn't have a key for yet, creating
// the file when needed. Returns what was appended.
func (s *Syncer) writeProvision(path string, refs []envfile.Variable) ([]envfile.Variable, error) {
	exists, err := util.PathExists(path)
	if err != nil {
		return nil, fmt.Errorf("error determining provision file existence: %w", err)
	}

	var current []envfile.Variable
	if exists {
		current, err = envfile.Read(path)
		if err != nil {
			return nil, fmt.Errorf("error reading provision file: %w", err)
		}
	} else {
		s.println("Didn't find provision file, creating a new one!")
		if err := util.EnsureParentDir(path); err != nil {
			return nil, err
		}
		if err := envfile.Create(path, ProvisionHeader); err != nil {
			return nil, fmt.Errorf("error creating provision file: %w", err)
		}
	}

	// first reference wins when an item has several fields with the same label
	missing := []envfile.Variable{}
	for _, ref := range refs {
		if _, ok := envfile.Lookup(current, ref.Key); ok {
			continue
		}
		if _, ok := envfile.Lookup(missing, ref.Key); ok {
			continue
		}
		missing = append(missing, ref)
	}

	if err := envfile.Append(path, missing); err != nil {
		return nil, fmt.Errorf("error writing provision file: %w", err)
	}

	return missing, nil
}
