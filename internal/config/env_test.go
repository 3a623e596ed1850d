package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := []struct {
		val  string
		want int
	}{
		{"", 8},
		{"3", 3},
		{"0", 8},
		{"-1", 8},
		{"many", 8},
	}
	for _, tc := range cases {
		t.Setenv("INT_TEST", tc.val)
		if got := intEnvOrDefault("INT_TEST", 8); got != tc.want {
			t.Fatalf("intEnvOrDefault(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}

func TestLoadDotEnvFillsUnsetOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DOTENV_FRESH=from-file\nDOTENV_SET=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("DOTENV_SET", "from-env")
	t.Setenv("DOTENV_FRESH", "")
	os.Unsetenv("DOTENV_FRESH")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if got := os.Getenv("DOTENV_FRESH"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("DOTENV_SET"); got != "from-env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
