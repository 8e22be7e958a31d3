package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

const appName = "passcheck"

var (
	version  = "0.1.0"
	cfgFile  string
	logLevel = new(slog.LevelVar)
)

func main() {
	// Setup logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

// newRootCmd creates and configures the root command. Kept as a
// constructor so tests can build fresh, isolated instances.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     appName,
		Short:   "passcheck estimates password strength and suggests improvements",
		Version: version,
		Long: `Passcheck evaluates passwords through a pipeline of checks: a
minimum-length gate, membership tests against weak and banned
wordlists, entropy estimation, and a character-diversity policy.

Running without a subcommand enters the interactive loop.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return SetupApp(cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), globalApp)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default passcheck.toml in the working directory)")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInteractiveCmd())

	return cmd
}

// newCheckCmd creates the single-password check command
func newCheckCmd() *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "check <password>",
		Short: "Check the strength of a single password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := globalApp.CheckAndRecord(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), FormatResult(result))
			fmt.Fprintln(cmd.OutOrStdout(), globalApp.checker.SuggestImprovements(args[0]))

			if exportPath != "" {
				if err := ExportResults(globalApp.results.Records(), exportPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Results exported to %s.\n", exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "write check results as JSON to this path")

	return cmd
}

// newGenerateCmd creates the password generation command
func newGenerateCmd() *cobra.Command {
	var length int
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length == 0 {
				length = globalApp.config.GetSettings().GeneratorLength
			}
			if length <= 0 {
				return fmt.Errorf("length must be positive, got %d", length)
			}

			password := GeneratePassword(length)
			fmt.Fprintln(cmd.OutOrStdout(), password)

			if copyToClipboard {
				if err := clipboard.WriteAll(password); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Password copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "password length (default from config)")
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "copy the password to the clipboard")

	return cmd
}

// newInteractiveCmd creates the interactive loop command
func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Check passwords in an interactive loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), globalApp)
		},
	}
}
