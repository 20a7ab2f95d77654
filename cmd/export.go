package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iksnae/chatbox/internal"
	"github.com/iksnae/chatbox/internal/chatstore"
	"github.com/iksnae/chatbox/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <chat-id>",
	Short: "Export a chat to file",
	Long: `Export a saved chat in one of several formats (json, jsonl, md, yaml).

By default the chat is written to stdout; use --output to write a file.
Use 'chatbox list' to see available chat IDs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := chatstore.New(cfg.StoreURL)
		chat, err := client.GetChat(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get chat: %w", err)
		}

		var w io.Writer = os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
			}
			defer func() { _ = f.Close() }()
			w = f
		}

		if err := exporter.Export(chat, w); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
		}

		if exportOutput != "" {
			internal.LogInfo("Exported chat %s to %s", chat.ID, exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, jsonl, md, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}
