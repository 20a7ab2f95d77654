package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iksnae/chatbox/internal"
	"github.com/iksnae/chatbox/internal/chatstore"
)

var showLimit int

var (
	// Styles for show command
	chatHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	chatMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <chat-id>",
	Short: "Show a chat's transcript",
	Long:  `Display the messages of a saved chat.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := chatstore.New(cfg.StoreURL)
		chat, err := client.GetChat(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get chat: %w", err)
		}

		displayChat(chat, showLimit)
		return nil
	},
}

func displayChat(chat *internal.Chat, limit int) {
	title := chat.Title
	if title == "" {
		title = "Untitled chat"
	}
	fmt.Println(chatHeaderStyle.Render(title))
	fmt.Println(chatMetaStyle.Render(fmt.Sprintf("ID: %s • %d message(s)", chat.ID, len(chat.Messages))))

	messages := chat.Messages
	if limit > 0 && len(messages) > limit {
		fmt.Println(chatMetaStyle.Render(fmt.Sprintf("(showing last %d)", limit)))
		messages = messages[len(messages)-limit:]
	}

	for _, msg := range messages {
		if msg.Role == internal.RoleUser {
			fmt.Println(userMessageStyle.Render("user:"))
		} else {
			fmt.Println(assistantMessageStyle.Render(msg.Role + ":"))
		}
		fmt.Println(messageContentStyle.Render(msg.Content))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showLimit, "limit", 0, "Only show the last N messages (0 = all)")
}
