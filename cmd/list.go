package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iksnae/chatbox/internal"
	"github.com/iksnae/chatbox/internal/chatstore"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved chats",
	Long:  `List all chats saved in the chat store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := chatstore.New(cfg.StoreURL)
		chats, err := client.ListChats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list chats: %w", err)
		}

		displayChats(chats)
		return nil
	},
}

func displayChats(chats []internal.Chat) {
	if len(chats) == 0 {
		fmt.Println(headerStyle.Render("No saved chats"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("Found %d chat(s)", len(chats)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Messages")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, chat := range chats {
		title := chat.Title
		if title == "" {
			title = "Untitled"
		}
		if len(title) > 50 {
			title = title[:47] + "..."
		}

		// Show short ID (first 8 chars) for readability
		shortID := chat.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n",
			idStyle.Render(shortID),
			title,
			countStyle.Render(strconv.Itoa(len(chat.Messages))),
		)
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("Tip: Use the full ID (e.g. ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(chats[0].ID) +
		idStyle.Render(") with `chatbox show <id>`"))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
