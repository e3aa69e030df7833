// Package cmd — conversion.
// The root command runs the pipeline: read stdin → parse → render → write.
package cmd

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/htmldown/core"
	"github.com/gaurav-prasanna/htmldown/core/markdown"
	"github.com/gaurav-prasanna/htmldown/core/output"
	"github.com/gaurav-prasanna/htmldown/core/parse"
	"github.com/gaurav-prasanna/htmldown/core/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Flag variables.
var flagFormat string

func init() {
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", string(core.FormatMarkdown),
		fmt.Sprintf("Output format (%s)", strings.Join(formatNames(), ", ")))
}

func runConvert(cmd *cobra.Command, _ []string) error {
	log := logrus.WithField("format", flagFormat)

	// Select the renderer first so a bad flag fails before reading input.
	renderer, err := render.New(core.Format(flagFormat), markdown.WithLogger(log))
	if err != nil {
		return err
	}

	return convert(cmd, parse.New(), renderer, output.New(cmd.OutOrStdout()), log)
}

// convert runs stdin through the parser and renderer and writes the result.
func convert(cmd *cobra.Command, parser core.Parser, renderer core.Renderer, writer *output.Writer, log logrus.FieldLogger) error {
	doc, err := parser.Parse(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	log.Debug("Parsed input document")

	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.WithField("bytes", len(data)).Debug("Rendered document")

	return writer.Write(data)
}

func formatNames() []string {
	var names []string
	for _, f := range render.Formats() {
		names = append(names, string(f))
	}
	return names
}
