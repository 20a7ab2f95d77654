package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/chatbox/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	storeURL   string
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chatbox",
	Short: "Terminal chat client with persistent conversations",
	Long: `A terminal chat client backed by an OpenAI-compatible completion
endpoint and a small chat store API.

Conversations are persisted through the chat store and can be listed,
resumed, exported, and deleted. A local chat store server ships with the
tool ('chatbox serve').

Quick Start:
  chatbox serve &                 # start the bundled chat store
  chatbox chat                    # start chatting (needs GROQ_API_KEY)
  chatbox list                    # list saved chats
  chatbox show <chat-id>          # print one chat's transcript
  chatbox export <chat-id> -f md  # export a chat as Markdown

For detailed usage, see: https://github.com/iksnae/chatbox`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storeURL, "store", "", "Chat store base URL (default http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/chatbox/config.yaml)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig resolves settings: flags beat the config file beats defaults.
func loadConfig() (*internal.Config, error) {
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if storeURL != "" {
		cfg.StoreURL = storeURL
	}
	return cfg, nil
}
