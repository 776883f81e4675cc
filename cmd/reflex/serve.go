package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/platform/tui"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the reflex SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH user gets their own grid settings and history, stored in the
server's database under their user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.reflex/host_key

Examples:
  reflex serve                           # Listen on :23235 with auto-generated key
  reflex serve --ssh :2222               # Listen on port 2222
  reflex serve --host-key ./my_host_key  # Use specific host key
  reflex serve --db ./reflex.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config, 30)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	serverCfg := tui.NewSSHServerConfig(cfg)
	serverCfg.HostKeyPath = flagHostKey
	if flagSSHAddr != "" {
		serverCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	var kv storage.KV
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open database", "path", cfg.Storage.DBPath, "error", err)
	} else {
		kv = store
		defer store.Close()
	}

	server, err := tui.NewSSHServer(serverCfg, kv, logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting reflex SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
