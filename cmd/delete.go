package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iksnae/chatbox/internal/chatstore"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <chat-id>",
	Short: "Delete a saved chat",
	Long:  `Delete a chat from the chat store. This cannot be undone.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := chatstore.New(cfg.StoreURL)
		if err := client.DeleteChat(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete chat: %w", err)
		}

		fmt.Printf("Deleted chat %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
