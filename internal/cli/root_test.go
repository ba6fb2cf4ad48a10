package cli

import "testing"

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "rankdex" {
		t.Errorf("Use = %q, want %q", rootCmd.Use, "rankdex")
	}
	if rootCmd.Short == "" {
		t.Error("rootCmd should have a short description")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	expected := []string{"build", "query"}
	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}
