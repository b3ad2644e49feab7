package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [scene]",
	Short: "Serve the scene viewer over SSH",
	Long: `Start an SSH server that shows a scene viewer to every connection.

Each SSH connection gets its own room built from the scene, so sessions
never see each other's probes or spawned entities. The scene defaults
to "arena".

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.collide/host_key

Examples:
  collide serve                       # Serve arena on the configured address
  collide serve gallery --ssh :2222   # Serve gallery on port 2222

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, args []string) error {
	name := "arena"
	if len(args) == 1 {
		name = args[0]
	}

	server := app.cfg.Server
	if cmd.Flags().Changed("ssh") {
		server.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		server.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		server.IdleTimeoutMinutes = flagIdleTimeout
	}

	store := tryOpenStore()
	sc, err := loadScene(name, store)
	if store != nil {
		store.Close()
	}
	if err != nil {
		return err
	}

	srv, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:      server.Address,
		HostKeyPath:  server.HostKey,
		IdleTimeout:  server.IdleTimeout(),
		Scene:        sc,
		Seed:         app.cfg.Runtime.Seed,
		TickInterval: app.cfg.Runtime.TickInterval(),
		Logger:       app.logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving %s on %s\n", sc.Name, srv.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return srv.ListenAndServe(ctx)
}
