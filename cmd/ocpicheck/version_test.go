package main

import "testing"

func TestVersionCommandExists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Run == nil {
		t.Error("versionCmd.Run should not be nil")
	}
}

func TestRootCommandWiring(t *testing.T) {
	wanted := map[string]bool{
		"validate": false,
		"watch":    false,
		"serve":    false,
		"samples":  false,
		"version":  false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := wanted[cmd.Name()]; ok {
			wanted[cmd.Name()] = true
		}
	}

	for name, found := range wanted {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
