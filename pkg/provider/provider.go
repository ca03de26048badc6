package provider

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed providers.yaml
var providersYaml []byte

type Region struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type Provider struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Regions []Region `yaml:"regions" json:"regions"`
	Logo    string   `yaml:"logo" json:"logo"`
}

// Load parses the embedded provider catalog. The set is static; deployments
// reference providers by id but are not validated against it.
func Load() ([]Provider, error) {
	var document struct {
		Providers []Provider `yaml:"providers"`
	}
	if err := yaml.Unmarshal(providersYaml, &document); err != nil {
		return nil, fmt.Errorf("failed to parse provider catalog: %v", err)
	}
	return document.Providers, nil
}
