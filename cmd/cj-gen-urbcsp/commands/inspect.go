package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/michal-dobrogost/csp-json/csp"
	"github.com/michal-dobrogost/csp-json/internal/logger"
	"github.com/michal-dobrogost/csp-json/stats"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [FILE|-]",
		Short: "Validate a CSP-JSON document and print summary statistics as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}

			doc, err := readDocument(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}
			if err := csp.Validate(doc); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			sum, err := stats.Summarize(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.L().Debug("cli.inspected", "source", name, "constraints", sum.Constraints)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(sum); err != nil {
				return fmt.Errorf("write summary: %w", err)
			}
			return enc.Close()
		},
	}
}

// readDocument decodes a document from stdin ("-") or a file.
func readDocument(stdin io.Reader, name string) (*csp.Document, error) {
	if name == "-" {
		doc, err := csp.Decode(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return doc, nil
	}

	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := csp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}
