package config

import (
	"gopkg.in/yaml.v3"
)

// yamlParser adapts gopkg.in/yaml.v3 to the koanf.Parser interface so a
// YAML base file can be layered underneath the environment.
type yamlParser struct{}

// YAMLParser returns a koanf parser for YAML documents.
func YAMLParser() *yamlParser {
	return &yamlParser{}
}

// Unmarshal parses YAML bytes into a nested map.
func (p *yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	return out, nil
}

// Marshal encodes a nested map back into YAML.
func (p *yamlParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
