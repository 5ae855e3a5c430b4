package envfile

import (
	"fmt"
	"os"
	"strings"
)

type Variable struct {
	Key   string
	Value string
	Line  int
}

func (v Variable) String() string {
	return fmt.Sprintf("%v -> %v", v.Key, v.Value)
}

// Parse reads KEY=VALUE lines. Comments and lines without an '=' are skipped, Line is the
// zero-based line the variable came from.
func Parse(contents string) []Variable {
	vars := []Variable{}

	for i, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
		if key == "" {
			continue
		}

		vars = append(vars, Variable{
			Key:   key,
			Value: unquote(value),
			Line:  i,
		})
	}

	return vars
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

func Read(path string) ([]Variable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(b)), nil
}

func Lookup(vars []Variable, key string) (Variable, bool) {
	for _, v := range vars {
		if v.Key == key {
			return v, true
		}
	}
	return Variable{}, false
}

// Unsynced returns the variables of source that target doesn't hold with the same value
func Unsynced(source []Variable, target []Variable) []Variable {
	out := []Variable{}
	for _, s := range source {
		synced := false
		for _, t := range target {
			if s.Key == t.Key && s.Value == t.Value {
				synced = true
				break
			}
		}
		if !synced {
			out = append(out, s)
		}
	}
	return out
}

func Create(path string, header string) error {
	if err := os.WriteFile(path, []byte(header), 0644); err != nil { //nolint: gosec
		return fmt.Errorf("error creating file: %w", err)
	}
	return nil
}

// Append adds KEY=VALUE lines to the end of an existing file
func Append(path string, vars []Variable) error {
	if len(vars) == 0 {
		return nil
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	var b strings.Builder
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		b.WriteString("\n")
	}
	for _, v := range vars {
		b.WriteString(fmt.Sprintf("%v=%v\n", v.Key, v.Value))
	}

	fl, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("error opening file for append: %w", err)
	}
	defer fl.Close()

	if _, err := fl.WriteString(b.String()); err != nil {
		return fmt.Errorf("error appending to file: %w", err)
	}

	return nil
}
