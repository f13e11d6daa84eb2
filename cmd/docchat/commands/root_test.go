// ABOUTME: Tests for root command wiring
// ABOUTME: Verifies subcommand registration and persistent flags

package commands

import "testing"

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	if root.Use != "docchat" {
		t.Errorf("Use = %q, want docchat", root.Use)
	}

	want := map[string]bool{
		"chat":    false,
		"ask":     false,
		"mcp":     false,
		"version": false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Subcommand %q not registered", name)
		}
	}
}

func TestNewRootCmd_QuietFlag(t *testing.T) {
	root := NewRootCmd()

	flag := root.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not registered")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want false", flag.DefValue)
	}
}
