package projectconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// definition is a single field as the host writes it to project config.
type definition struct {
	UID               string
	Handle            string
	Name              string
	Instructions      string
	Searchable        bool
	TranslationMethod string
	Type              string

	decode func(target any) error
}

type yamlDefinition struct {
	UID               string    `yaml:"uid"`
	Handle            string    `yaml:"handle"`
	Name              string    `yaml:"name"`
	Instructions      string    `yaml:"instructions"`
	Searchable        bool      `yaml:"searchable"`
	TranslationMethod string    `yaml:"translationMethod"`
	Type              string    `yaml:"type"`
	Settings          yaml.Node `yaml:"settings"`
}

type jsonDefinition struct {
	UID               string          `json:"uid"`
	Handle            string          `json:"handle"`
	Name              string          `json:"name"`
	Instructions      string          `json:"instructions"`
	Searchable        bool            `json:"searchable"`
	TranslationMethod string          `json:"translationMethod"`
	Type              string          `json:"type"`
	Settings          json.RawMessage `json:"settings"`
}

func (d yamlDefinition) definition() definition {
	settings := d.Settings
	return definition{
		UID:               d.UID,
		Handle:            d.Handle,
		Name:              d.Name,
		Instructions:      d.Instructions,
		Searchable:        d.Searchable,
		TranslationMethod: d.TranslationMethod,
		Type:              d.Type,
		decode: func(target any) error {
			// Absent or null settings leave the zero value in place.
			if settings.Kind == 0 || settings.Tag == "!!null" {
				return nil
			}
			return settings.Decode(target)
		},
	}
}

func (d jsonDefinition) definition() definition {
	settings := bytes.TrimSpace(d.Settings)
	return definition{
		UID:               d.UID,
		Handle:            d.Handle,
		Name:              d.Name,
		Instructions:      d.Instructions,
		Searchable:        d.Searchable,
		TranslationMethod: d.TranslationMethod,
		Type:              d.Type,
		decode: func(target any) error {
			if len(settings) == 0 || bytes.Equal(settings, []byte("null")) {
				return nil
			}
			return json.Unmarshal(settings, target)
		},
	}
}

func isJSON(source string) bool {
	return strings.EqualFold(path.Ext(source), ".json")
}

func parseDefinition(data []byte, source string) (definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return definition{}, fmt.Errorf("projectconfig: file %s is empty", source)
	}
	if isJSON(source) {
		var doc jsonDefinition
		if err := json.Unmarshal(data, &doc); err != nil {
			return definition{}, fmt.Errorf("projectconfig: parse %s: %w", source, err)
		}
		return doc.definition(), nil
	}
	var doc yamlDefinition
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return definition{}, fmt.Errorf("projectconfig: parse %s: %w", source, err)
	}
	return doc.definition(), nil
}

func parseProject(data []byte, source string) (map[string]definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	out := make(map[string]definition)
	if isJSON(source) {
		var doc struct {
			Fields map[string]jsonDefinition `json:"fields"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("projectconfig: parse %s: %w", source, err)
		}
		for uid, def := range doc.Fields {
			out[uid] = def.definition()
		}
		return out, nil
	}
	var doc struct {
		Fields map[string]yamlDefinition `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("projectconfig: parse %s: %w", source, err)
	}
	for uid, def := range doc.Fields {
		out[uid] = def.definition()
	}
	return out, nil
}
