package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, `
region_db: /srv/idcard/data
fake:
  region: "3301"
  min_year: 1970
  max_year: 2000
  gender: female
`)
		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.RegionDB != "/srv/idcard/data" {
			t.Errorf("RegionDB = %q", cf.RegionDB)
		}
		if cf.Fake.Region != "3301" || cf.Fake.MinYear != 1970 || cf.Fake.MaxYear != 2000 || cf.Fake.Gender != "female" {
			t.Errorf("Fake = %+v", cf.Fake)
		}
	})

	t.Run("empty file yields zero values", func(t *testing.T) {
		t.Parallel()
		cf, err := LoadConfigFile(writeConfigFile(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.RegionDB != "" || cf.Fake.Region != "" {
			t.Errorf("expected zero values, got %+v", cf)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfigFile(writeConfigFile(t, "fake: [broken")); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path wins", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "")
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile(%q) = %q", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("FindConfigFile = %q, expected empty", got)
		}
	})
}

func TestConfigApply(t *testing.T) {
	t.Parallel()

	t.Run("file fills unset values", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Apply(&File{
			RegionDB: "/srv/data",
			Fake:     FakeDefaults{Region: "3301", MinYear: 1970, MaxYear: 2000, Gender: "female"},
		})
		if cfg.RegionDBDir != "/srv/data" {
			t.Errorf("RegionDBDir = %q", cfg.RegionDBDir)
		}
		if cfg.FakeRegion != "3301" || cfg.FakeMinYear != 1970 || cfg.FakeMaxYear != 2000 || cfg.FakeGender != "female" {
			t.Errorf("fake defaults not applied: %+v", cfg)
		}
	})

	t.Run("flag values win over file values", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.FakeRegion = "2301"
		cfg.FakeMinYear = 1980
		cfg.Apply(&File{Fake: FakeDefaults{Region: "3301", MinYear: 1970, Gender: "male"}})
		if cfg.FakeRegion != "2301" {
			t.Errorf("FakeRegion = %q, flag value must win", cfg.FakeRegion)
		}
		if cfg.FakeMinYear != 1980 {
			t.Errorf("FakeMinYear = %d, flag value must win", cfg.FakeMinYear)
		}
		if cfg.FakeGender != "male" {
			t.Errorf("FakeGender = %q, file must fill the unset value", cfg.FakeGender)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		before := cfg.RegionDBDir
		cfg.Apply(nil)
		if cfg.RegionDBDir != before || cfg.FakeRegion != "" {
			t.Error("Apply(nil) mutated the config")
		}
	})
}
