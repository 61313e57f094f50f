package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/slashwq/writemsg/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is set during build
	Version = "dev"
	// GitCommit is set during build
	GitCommit = "none"
	// BuildDate is set during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "writemsg [flags] [message...]",
	Short: "Print a timestamped, colorized console message",
	Long: `Writemsg prints a timestamped console message, colorized by
severity category, and can append a plain-text copy to a file.

Debug and verbose messages are suppressed unless the matching mode is
enabled. With no message arguments, each line read from stdin is
emitted as its own message.

Examples:
  writemsg "Deploy finished"
  writemsg -c error "Connection refused"
  writemsg -c success -o build.log "All tests passed"
  make 2>&1 | writemsg -c verbose --verbose`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runCmdImpl,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
}

func init() {
	rootCmd.PersistentFlags().StringP("category", "c", "info", "Message category: debug, verbose, info, success, warn, or error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable ANSI styling in console output")
	rootCmd.PersistentFlags().StringP("out-file", "o", "", "Append the plain-text form of each message to this file")
	rootCmd.PersistentFlags().Bool("debug", false, "Emit debug-category messages")
	rootCmd.PersistentFlags().Bool("verbose", false, "Emit verbose-category messages")

	// Legacy alias for --out-file, kept for compatibility with older
	// scripts. Resolved in resolveOutFile; the formatter never sees it.
	rootCmd.PersistentFlags().String("path", "", "Append the plain-text form of each message to this file")
	_ = rootCmd.PersistentFlags().MarkDeprecated("path", "use --out-file instead")

	// Add tracing flags
	rootCmd.PersistentFlags().Bool("trace", false, "Record a session trace to a file")
	rootCmd.PersistentFlags().String("trace-file", "", "Path to the trace file (default: ~/.cache/writemsg/logs/writemsg-<timestamp>.log)")

	// Bind standard Go flags to pflag
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	// Add subcommands
	rootCmd.AddCommand(completionCmd())
}

// completionCmd creates the completion command for shell completion scripts
func completionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for writemsg.
To load completions:

Bash:
  $ source <(writemsg completion bash)

Zsh:
  $ source <(writemsg completion zsh)

Fish:
  $ writemsg completion fish | source
`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish"},
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				cmd.Root().GenFishCompletion(os.Stdout, true)
			}
		},
	}

	return cmd
}

// runCmdImpl implements the root command: resolve configuration, build
// the app, and run it over the argument or stdin input.
func runCmdImpl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Flags win over config file and environment.
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor, _ = cmd.Flags().GetBool("no-color")
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace, _ = cmd.Flags().GetBool("trace")
	}
	if cmd.Flags().Changed("trace-file") {
		cfg.TraceFile, _ = cmd.Flags().GetString("trace-file")
	}

	outFileFlag, _ := cmd.Flags().GetString("out-file")
	pathFlag, _ := cmd.Flags().GetString("path")
	cfg.OutFile = resolveOutFile(outFileFlag, pathFlag, cfg.OutFile)

	categoryStr, _ := cmd.Flags().GetString("category")

	app, err := NewApp(cfg, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Error closing trace: %v\n", closeErr)
		}
	}()

	return app.Run(categoryStr, args)
}

// resolveOutFile picks the output file path: --out-file wins, then the
// deprecated --path alias, then the configured value.
func resolveOutFile(outFile, path, configured string) string {
	if outFile != "" {
		return outFile
	}
	if path != "" {
		return path
	}
	return configured
}

// main is the entry point of the application
func main() {
	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(1)
	}
}
