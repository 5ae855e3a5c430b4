package onepassword

import (
	"fmt"
)

const (
	PurposeNotes = "NOTES"

	CategorySecureNote = "Secure Note"
)

type Vault struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (v Vault) String() string {
	return v.Name
}

type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (i Item) String() string {
	return i.Title
}

type Section struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

func (s Section) String() string {
	if s.Label == "" {
		return fmt.Sprintf("No label, id: %v", s.ID)
	}
	return s.Label
}

type Field struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Purpose   string   `json:"purpose,omitempty"`
	Label     string   `json:"label,omitempty"`
	Value     *string  `json:"value,omitempty"`
	Reference string   `json:"reference"`
	Section   *Section `json:"section,omitempty"`
}

type ItemDetails struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Version      int       `json:"version,omitempty"`
	Vault        Vault     `json:"vault"`
	Category     string    `json:"category"`
	LastEditedBy string    `json:"last_edited_by,omitempty"`
	CreatedAt    string    `json:"created_at,omitempty"`
	UpdatedAt    string    `json:"updated_at,omitempty"`
	Sections     []Section `json:"sections,omitempty"`
	Fields       []Field   `json:"fields"`
}
