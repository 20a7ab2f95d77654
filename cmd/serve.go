package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iksnae/chatbox/internal"
	"github.com/iksnae/chatbox/internal/server"
	"github.com/iksnae/chatbox/internal/store"
)

var (
	serveAddr   string
	serveDBPath string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bundled chat store server",
	Long: `Run a local chat store server backed by SQLite.

The server exposes the /api/chat endpoints the other commands consume.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := serveDBPath
		if dbPath == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			dbPath = filepath.Join(homeDir, ".local", "share", "chatbox", "chats.db")
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open chat database: %w", err)
		}
		defer func() { _ = st.Close() }()

		httpServer := &http.Server{
			Addr:    serveAddr,
			Handler: server.New(st),
		}

		errCh := make(chan error, 1)
		go func() {
			internal.LogInfo("chat store listening on %s (db: %s)", serveAddr, dbPath)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case sig := <-sigCh:
			internal.LogInfo("received %s, shutting down", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "Path to the SQLite database (default ~/.local/share/chatbox/chats.db)")
}
