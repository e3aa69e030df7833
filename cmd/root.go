// Package cmd implements the CLI for htmldown using Cobra.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// logLevelEnv selects the logrus level; unset means "warn".
const logLevelEnv = "HTMLDOWN_LOG_LEVEL"

var rootCmd = &cobra.Command{
	Use:     "htmldown",
	Short:   "htmldown — convert HTML to Markdown-flavored plain text",
	Version: "0.1",
	Long: `htmldown reads an HTML document from standard input and writes a
Markdown rendering of it to standard output. Paragraphs, emphasis, links,
images, blockquotes and nested lists are preserved; whitespace is normalized.

Usage:
  htmldown [--format markdown] < page.html`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runConvert,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("htmldown failed")
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	logrus.SetOutput(cmd.ErrOrStderr())
	level := logrus.WarnLevel
	if v := os.Getenv(logLevelEnv); v != "" {
		parsed, err := logrus.ParseLevel(v)
		if err != nil {
			return err
		}
		level = parsed
	}
	logrus.SetLevel(level)
	return nil
}
