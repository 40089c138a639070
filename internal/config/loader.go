package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".idcard"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML shape of the .idcard configuration file.
// Every field is optional; flags override file values.
//
// Example:
//
//	region_db: /srv/idcard/data
//	fake:
//	  region: "3301"
//	  min_year: 1970
//	  max_year: 2000
//	  gender: female
type File struct {
	// RegionDB is the directory holding the SQLite region database.
	RegionDB string `yaml:"region_db"`

	// Fake holds default constraints for the fake command.
	Fake FakeDefaults `yaml:"fake"`
}

// FakeDefaults are the file-level defaults for fake ID generation.
type FakeDefaults struct {
	Region  string `yaml:"region"`
	MinYear int    `yaml:"min_year"`
	MaxYear int    `yaml:"max_year"`
	Gender  string `yaml:"gender"`
}

// LoadConfigFile loads defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .idcard in the current directory
//  3. Look for .idcard in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply overlays the file values onto the config, leaving flag-set values
// in place where the file has none.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.RegionDB != "" {
		c.RegionDBDir = f.RegionDB
	}
	if f.Fake.Region != "" && c.FakeRegion == "" {
		c.FakeRegion = f.Fake.Region
	}
	if f.Fake.MinYear != 0 && c.FakeMinYear == 0 {
		c.FakeMinYear = f.Fake.MinYear
	}
	if f.Fake.MaxYear != 0 && c.FakeMaxYear == 0 {
		c.FakeMaxYear = f.Fake.MaxYear
	}
	if f.Fake.Gender != "" && c.FakeGender == "" {
		c.FakeGender = f.Fake.Gender
	}
}
