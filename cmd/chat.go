package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iksnae/chatbox/internal"
	"github.com/iksnae/chatbox/internal/chatstore"
	"github.com/iksnae/chatbox/internal/completion"
)

var chatModel string

// consoleView renders session state to the terminal
type consoleView struct {
	prompt    *color.Color
	assistant *color.Color
	notice    *color.Color
}

func newConsoleView() *consoleView {
	return &consoleView{
		prompt:    color.New(color.FgGreen, color.Bold),
		assistant: color.New(color.FgCyan, color.Bold),
		notice:    color.New(color.FgYellow),
	}
}

// FocusPrompt marks the prompt as ready for input
func (v *consoleView) FocusPrompt() {
	_, _ = v.prompt.Print("You: ")
}

func (v *consoleView) showReply(content string) {
	_, _ = v.assistant.Print("Assistant: ")
	fmt.Printf("%s\n\n", content)
}

func (v *consoleView) showNotice(format string, args ...interface{}) {
	_, _ = v.notice.Printf(format+"\n", args...)
}

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session against the configured completion
endpoint. Conversations are saved through the chat store as you go.

Inside the session:
  /new           start a new chat
  /chats         list saved chats
  /open <id>     resume a saved chat
  /delete <id>   delete a saved chat
  /quit          leave the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("no API key configured: set GROQ_API_KEY or api_key in the config file")
		}

		model := cfg.Model
		if chatModel != "" {
			model = chatModel
		}

		completer := completion.New(cfg.APIKey, cfg.APIBase, model)
		store := chatstore.New(cfg.StoreURL)
		view := newConsoleView()
		session := internal.NewSession(completer, store, view)

		fmt.Printf("chatbox - model %s, chat store %s\n", model, cfg.StoreURL)
		fmt.Println("Type a prompt and press Enter. Commands: /new /chats /open <id> /delete <id> /quit")
		fmt.Println("---")

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if err := session.Initialize(ctx); err != nil {
			internal.LogWarn("failed to load chat list: %v", err)
		} else if n := len(session.Snapshot().ChatSummaries); n > 0 {
			internal.LogDebug("loaded %d saved chat(s)", n)
		}

		runChatLoop(ctx, session, view, os.Stdin)
		return nil
	},
}

// runChatLoop reads user input until EOF or /quit. The prompt is re-focused
// after every turn; errors are reported and never end the loop.
func runChatLoop(ctx context.Context, session *internal.Session, view *consoleView, in *os.File) {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "/quit" || line == "exit" {
			fmt.Println("Goodbye!")
			return
		}

		if line != "" {
			handleChatLine(ctx, session, view, line)
		}

		view.FocusPrompt()
	}
}

func handleChatLine(ctx context.Context, session *internal.Session, view *consoleView, line string) {
	command, arg := parseChatCommand(line)

	switch command {
	case "/new":
		session.StartNewChat()
		view.showNotice("Started a new chat.")
	case "/chats":
		showChatSummaries(view, session.Snapshot().ChatSummaries)
	case "/open":
		if arg == "" {
			view.showNotice("Usage: /open <chat-id>")
			return
		}
		if err := session.SelectChat(ctx, arg); err != nil {
			view.showNotice("Could not open chat: %v", err)
			return
		}
		for _, msg := range session.Snapshot().ActiveTranscript {
			if msg.Role == internal.RoleUser {
				_, _ = view.prompt.Print("You: ")
				fmt.Println(msg.Content)
			} else {
				view.showReply(msg.Content)
			}
		}
	case "/delete":
		if arg == "" {
			view.showNotice("Usage: /delete <chat-id>")
			return
		}
		if err := session.DeleteChat(ctx, arg); err != nil {
			view.showNotice("Could not delete chat: %v", err)
			return
		}
		view.showNotice("Chat deleted.")
	case "":
		session.SetDraft(line)
		if err := session.SubmitPrompt(ctx, line); err != nil {
			// The reply may still have arrived when only persistence failed.
			var storeErr *internal.StoreError
			if errors.As(err, &storeErr) {
				showLatestReply(session, view)
				view.showNotice("Warning: this turn was not saved: %v", err)
			} else {
				view.showNotice("Error: %v", err)
			}
			return
		}
		showLatestReply(session, view)
	default:
		view.showNotice("Unknown command %s", command)
	}
}

// parseChatCommand splits a slash command from its argument. Plain prompts
// return an empty command.
func parseChatCommand(line string) (command, arg string) {
	if !strings.HasPrefix(line, "/") {
		return "", line
	}
	parts := strings.SplitN(line, " ", 2)
	command = parts[0]
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return command, arg
}

func showLatestReply(session *internal.Session, view *consoleView) {
	transcript := session.Snapshot().ActiveTranscript
	if len(transcript) == 0 {
		return
	}
	last := transcript[len(transcript)-1]
	if last.Role == internal.RoleAssistant {
		view.showReply(last.Content)
	}
}

func showChatSummaries(view *consoleView, summaries []internal.ChatSummary) {
	if len(summaries) == 0 {
		view.showNotice("No saved chats.")
		return
	}
	for _, summary := range summaries {
		fmt.Printf("  %s  %s\n", summary.ID, summary.Title)
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Model to use for completions (default from config)")
}
