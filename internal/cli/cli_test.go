package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".cache", "diskmap")
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", "diskmap") {
		t.Errorf("cacheDir() = %q, should honor XDG_CACHE_HOME", dir)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in       string
		fallback string
		want     []string
	}{
		{"", "svg", []string{"svg"}},
		{"dot", "svg", []string{"dot"}},
		{"svg,png", "svg", []string{"svg", "png"}},
		{"svg, png", "svg", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		if got := parseFormats(tt.in, tt.fallback); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q, %q) = %v, want %v", tt.in, tt.fallback, got, tt.want)
		}
	}
}

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	if root.Use != "diskmap" {
		t.Errorf("root.Use = %q, want %q", root.Use, "diskmap")
	}

	want := map[string]bool{
		"map":        false,
		"lattice":    false,
		"render":     false,
		"explore":    false,
		"cache":      false,
		"completion": false,
	}
	for _, sub := range root.Commands() {
		name := strings.Fields(sub.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output string
		input  string
		format string
		multi  bool
		want   string
	}{
		{"", "graphs/petersen.json", "svg", false, "petersen.svg"},
		{"", "petersen.json", "png", true, "petersen.png"},
		{"out.svg", "petersen.json", "svg", false, "out.svg"},
		{"out", "petersen.json", "svg", true, "out.svg"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.output, tt.input, tt.format, tt.multi); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q",
				tt.output, tt.input, tt.format, tt.multi, got, tt.want)
		}
	}
}
