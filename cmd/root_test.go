package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_Help(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("rootCmd.Execute() error = %v", err)
	}

	output := stdout.String()
	for _, sub := range []string{"chat", "list", "show", "export", "serve", "delete"} {
		if !strings.Contains(output, sub) {
			t.Errorf("help output should mention %q subcommand", sub)
		}
	}
}

func TestLoadConfig_StoreFlagOverride(t *testing.T) {
	originalStoreURL := storeURL
	originalConfigPath := configPath
	defer func() {
		storeURL = originalStoreURL
		configPath = originalConfigPath
	}()

	configPath = t.TempDir() + "/missing.yaml"
	storeURL = "http://flag-wins:9999"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.StoreURL != "http://flag-wins:9999" {
		t.Errorf("StoreURL = %q, want flag override", cfg.StoreURL)
	}
}
