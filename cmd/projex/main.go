// Command projex runs the project dashboard: an HTTP API with the bundled
// frontend, or a terminal task board.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
	appName = "projex"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags override the loaded configuration when set.
type flags struct {
	configPath string
	addr       string
	dbPath     string
	staticDir  string
	logLevel   string
	memory     bool
	fast       bool
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Project management dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Env file with settings (default ./config.env when present)")
	cmd.PersistentFlags().StringVar(&f.dbPath, "db", "", "Path to sqlite database file")
	cmd.PersistentFlags().BoolVar(&f.memory, "memory", false, "Keep data in memory only")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&f.fast, "fast", false, "Skip the simulated request latency")

	cmd.AddCommand(serveCmd(&f), boardCmd(&f))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}
