package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/idcard/internal/config"
)

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	if cmd.Use != "idcard" {
		t.Errorf("Use = %q, expected idcard", cmd.Use)
	}

	expected := []string{"validate", "inspect", "upgrade", "fake", "region", "version"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q is not registered", name)
		}
	}

	if cmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("persistent flag verbose is not registered")
	}
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	t.Run("valid number", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "validate", "230127197908177456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "230127197908177456") || !strings.Contains(out, "valid") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("legacy number is shown in upgraded form", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "validate", "632123820927051")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "632123198209270518") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("invalid number sets the exit error", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "validate", "230127197908177457")
		if !errors.Is(err, ErrInvalidNumbers) {
			t.Errorf("expected ErrInvalidNumbers, got %v", err)
		}
	})

	t.Run("several numbers make a summary", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "validate", "A123456789", "G123456A")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 2 {
			t.Errorf("expected 2 summary lines, got %d:\n%s", len(lines), out)
		}
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "validate", "--json", "230127197908177456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `"jurisdiction": "CN-18"`) {
			t.Errorf("unexpected JSON output:\n%s", out)
		}
	})

	t.Run("no arguments is a configuration error", func(t *testing.T) {
		t.Parallel()
		if _, err := execute(t, "validate"); err == nil {
			t.Error("expected error when no number is given")
		}
	})

	t.Run("conflicting formats", func(t *testing.T) {
		t.Parallel()
		if _, err := execute(t, "validate", "--json", "--markdown", "230127197908177456"); err == nil {
			t.Error("expected error for conflicting formats")
		}
	})
}

func TestInspectCommand(t *testing.T) {
	t.Parallel()

	t.Run("decodes a mainland number", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "inspect", "511702800222130")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"511702198002221308", "1980-02-22", "male", "四川"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("invalid number sets the exit error", func(t *testing.T) {
		t.Parallel()
		if _, err := execute(t, "inspect", "Q155304680"); !errors.Is(err, ErrInvalidNumbers) {
			t.Errorf("expected ErrInvalidNumbers, got %v", err)
		}
	})
}

func TestUpgradeCommand(t *testing.T) {
	t.Parallel()

	t.Run("upgrades a legacy number", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "upgrade", "632123820927051")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(out) != "632123198209270518" {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("rejects an 18-digit number", func(t *testing.T) {
		t.Parallel()
		if _, err := execute(t, "upgrade", "632123198209270518"); err == nil {
			t.Error("expected error for an 18-digit number")
		}
	})
}

func TestFakeCommand(t *testing.T) {
	t.Parallel()

	t.Run("generates the requested count of valid numbers", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "fake", "--count", "3", "--region", "3301")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 numbers, got %d:\n%s", len(lines), out)
		}
		for _, line := range lines {
			if !strings.HasPrefix(line, "3301") || len(line) != 18 {
				t.Errorf("unexpected number %q", line)
			}
		}
	})

	t.Run("unknown gender", func(t *testing.T) {
		t.Parallel()
		if _, err := execute(t, "fake", "--gender", "other"); err == nil {
			t.Error("expected error for unknown gender")
		}
	})

	t.Run("zero count", func(t *testing.T) {
		t.Parallel()
		if _, err := execute(t, "fake", "--count", "0"); !errors.Is(err, config.ErrInvalidCount) {
			t.Errorf("expected config.ErrInvalidCount, got %v", err)
		}
	})
}

func TestRegionCommand(t *testing.T) {
	t.Parallel()

	t.Run("six-digit lookup", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "region", "511702")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(out) != "四川省达州市通川区" {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("two-digit province fallback", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "region", "23")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(out) != "黑龙江" {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		if _, err := execute(t, "region", "000000"); err == nil {
			t.Error("expected error for an unknown code")
		}
	})
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "idcard version") {
		t.Errorf("output = %q", out)
	}
}
