package onepassword

import (
	"fmt"
	"strings"

	"github.com/nicjohnson145/envop/internal/envfile"
)

var (
	assignmentEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`, `=`, `\=`)
)

// FieldInSection reports whether a field belongs to the given section. A nil section selects
// the fields that sit outside of any labeled section.
func FieldInSection(field Field, section *Section) bool {
	if section == nil {
		return field.Section == nil || field.Section.Label == ""
	}
	return field.Section != nil && field.Section.Label == section.Label
}

func FieldToVariable(field Field) (envfile.Variable, bool) {
	if field.Label == "" || field.Value == nil || field.Purpose == PurposeNotes {
		return envfile.Variable{}, false
	}
	return envfile.Variable{
		Key:   field.Label,
		Value: *field.Value,
	}, true
}

func FieldToReference(field Field) (envfile.Variable, bool) {
	if field.Label == "" || field.Purpose == PurposeNotes {
		return envfile.Variable{}, false
	}
	return envfile.Variable{
		Key:   field.Label,
		Value: field.Reference,
	}, true
}

// SectionVariables converts every field of the section with the given conversion
func SectionVariables(item *ItemDetails, section *Section, convert func(Field) (envfile.Variable, bool)) []envfile.Variable {
	out := []envfile.Variable{}
	if item == nil {
		return out
	}
	for _, field := range item.Fields {
		if !FieldInSection(field, section) {
			continue
		}
		if v, ok := convert(field); ok {
			out = append(out, v)
		}
	}
	return out
}

// Assignment builds an `op item edit` assignment statement storing value as a text field
func Assignment(section *Section, key string, value string) string {
	field := assignmentEscaper.Replace(key)
	if section != nil {
		field = assignmentEscaper.Replace(section.Label) + "." + field
	}
	return fmt.Sprintf("%v[text]=%v", field, value)
}
