package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileOverrides is the YAML form of the URL scheme settings. Fields left
// out of the file keep the values loaded from the environment.
type FileOverrides struct {
	HomeURL    *string `yaml:"home_url"`
	Org        *string `yaml:"org"`
	SingleOrg  *string `yaml:"single_org"`
	BaseDomain *string `yaml:"base_domain"`
	PathOnly   *bool   `yaml:"path_only"`
	PluginURL  *string `yaml:"plugin_url"`
}

// LoadFile applies the overrides found in the YAML file at path.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var overrides FileOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	c.Apply(overrides)
	return nil
}

// Apply copies every field set in o onto c.
func (c *Config) Apply(o FileOverrides) {
	if o.HomeURL != nil {
		c.HomeURL = *o.HomeURL
	}
	if o.Org != nil {
		c.Org = *o.Org
	}
	if o.SingleOrg != nil {
		c.SingleOrg = *o.SingleOrg
	}
	if o.BaseDomain != nil {
		c.BaseDomain = *o.BaseDomain
	}
	if o.PathOnly != nil {
		c.PathOnly = *o.PathOnly
	}
	if o.PluginURL != nil {
		c.PluginURL = *o.PluginURL
	}
}
