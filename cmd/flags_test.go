package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestGetCliFlag(t *testing.T) {
	// Test 1 - the flag keeps its registered default when none is supplied.
	got := switches.getCliFlag("region", "")
	if got.val != "" {
		t.Fatalf("test 1 failed: expected no default value on flag %q; got %v", got.name, got.val)
	}
	// Test 2 - a supplied default value overrides the registered one.
	d := "us-east-1"
	got = switches.getCliFlag("region", d)
	if got.val != d {
		t.Fatalf("test 2 failed: expected default value %v to be applied; got %v", d, got.val)
	}
}

func TestAddFlag(t *testing.T) {
	c := &cobra.Command{Use: "mock"}
	var s string
	var b bool
	switches.addFlag(c, &s, "log-level", "debug", false, "")
	switches.addFlag(c, &b, "stage-only", "", false, "")
	f := c.Flags().Lookup("log-level")
	if f == nil {
		t.Fatal("expected flag log-level to be registered")
	}
	if f.DefValue != "debug" {
		t.Fatal("expected default value debug; got ", f.DefValue)
	}
	if c.Flags().Lookup("stage-only") == nil {
		t.Fatal("expected flag stage-only to be registered")
	}
}
