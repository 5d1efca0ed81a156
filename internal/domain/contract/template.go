package contract

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

// DefaultTitle is used when a contract is created with a blank title.
const DefaultTitle = "Our Relationship Contract"

//go:embed template.yaml
var defaultTemplateYAML []byte

// Template pre-fills the creation form.
type Template struct {
	Title string   `json:"title" yaml:"title"`
	Terms []string `json:"terms" yaml:"terms"`
}

func ParseTemplate(data []byte) (Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("parse contract template: %w", err)
	}
	if t.Title == "" {
		t.Title = DefaultTitle
	}
	return t, nil
}

// DefaultTemplate returns a fresh copy of the embedded template.
func DefaultTemplate() Template {
	t, err := ParseTemplate(defaultTemplateYAML)
	if err != nil {
		panic(err)
	}
	return t
}
