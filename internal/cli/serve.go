package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/subsplit/subsplit/internal/config"
	"github.com/subsplit/subsplit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the subtitle upload web interface",
	Long: `Serve a small web page where an SRT file and a maximum line length
can be submitted, returning the rewritten file as a download.

Settings come from an optional TOML config file; flags override it.

Examples:
  subsplit serve
  subsplit serve --addr 0.0.0.0:8080
  subsplit serve --open`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().
		String("addr", "", "Listen address (default from config, 127.0.0.1:5000)")
	serveCmd.Flags().
		String("config", "subsplit.toml", "Path to TOML config file")
	serveCmd.Flags().
		IntP("max-length", "m", 0, "Default max line length when the form omits one")
	serveCmd.Flags().
		Bool("open", false, "Open the page in a browser once serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if maxLength, _ := cmd.Flags().GetInt("max-length"); maxLength > 0 {
		cfg.MaxLength = maxLength
	}
	if cmd.Flags().Changed("open") {
		cfg.OpenBrowser, _ = cmd.Flags().GetBool("open")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	srv := server.New(cfg.Addr, cfg.MaxLength, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	if cfg.OpenBrowser {
		go func() {
			// give the listener a moment to come up
			time.Sleep(1250 * time.Millisecond)
			url := "http://" + cfg.Addr + "/"
			if err := browser.OpenURL(url); err != nil {
				logger.Warnw("Failed to open browser", "url", url, "error", err)
			}
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
