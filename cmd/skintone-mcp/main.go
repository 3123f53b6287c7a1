package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tonewise/skintone-mcp/internal/config"
	"github.com/tonewise/skintone-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "skintone-mcp",
	Short: "MCP server for skin tone analysis and color recommendations",
	Long: `skintone-mcp detects the dominant skin tone of a photograph, recolors
skin regions toward a chosen tone band, and maps tone bands to curated
color palettes.

The server communicates via the MCP protocol over stdin/stdout.
Configure it in your MCP client.

Environment variables:
  SKINTONE_UPLOAD_DIR        Directory for persisted images (default "uploads")
  SKINTONE_MAX_UPLOAD_BYTES  Upload size cap in bytes (default 16 MiB)
  SKINTONE_LOG_LEVEL         Log level: debug, info, warn, error (default "info")`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		// stdout carries the protocol; everything else goes to stderr.
		logrus.SetOutput(os.Stderr)
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
		logrus.Debugf("skintone-mcp %s (built %s, commit %s)", Version, BuildTime, GitCommit)

		return server.New(cfg).Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skintone-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
