package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/michal-dobrogost/csp-json/internal/logger"
	"github.com/michal-dobrogost/csp-json/internal/paramfile"
	"github.com/michal-dobrogost/csp-json/urbcsp"
)

const rootLong = `Generate one uniform random binary CSP instance as CSP-JSON.

Arguments: #vars #vals #constraints #nogoods seed #instance [#constraintDefs]

  If #constraintDefs is missing it is set to equal #constraints.
  Negative seeds are accepted; flags must come before the arguments.
  Alternatively pass --params FILE with the same values as YAML keys
  n, d, c, t, s, i and optional k.`

// rootOptions holds flag values shared by the root command and its hooks.
type rootOptions struct {
	paramsFile string
	output     string
	debug      bool
	logFormat  string

	cleanup func()
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:           "cj-gen-urbcsp [flags] n d c t s i [k]",
		Short:         "Generate uniform random binary CSP instances (CSP-JSON)",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if o.paramsFile != "" {
				if len(args) != 0 {
					return usageErrorf("--params and positional arguments are exclusive")
				}
				return nil
			}
			if len(args) != 6 && len(args) != 7 {
				return usageErrorf("expected 6 or 7 arguments, got %d", len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := logger.Setup(logger.Config{
				Writer: cmd.ErrOrStderr(),
				Format: logger.Format(o.logFormat),
				Debug:  o.debug,
			})
			if err != nil {
				return usageErrorf("--log-format %q: %v", o.logFormat, err)
			}
			o.cleanup = cleanup
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if o.cleanup != nil {
				o.cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := o.collectParams(args)
			if err != nil {
				return err
			}
			ps, err := params.Resolve()
			if err != nil {
				return err
			}

			log := logger.L()
			text, err := urbcsp.Render(ps, urbcsp.WithLogger(log))
			if err != nil {
				return err
			}
			log.Info("cli.generated", "id", ps.ID(), "bytes", len(text))

			return o.emit(cmd.OutOrStdout(), text)
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})
	// Arguments after the first positional are never parsed as flags, so a
	// negative seed such as "-5" reaches the generator.
	root.Flags().SetInterspersed(false)

	root.Flags().StringVar(&o.paramsFile, "params", "", "read n, d, c, t, s, i, k from a YAML file")
	root.Flags().StringVarP(&o.output, "output", "o", "", "write the document to a file instead of stdout")
	root.PersistentFlags().BoolVar(&o.debug, "debug", false, "verbose logging to stderr")
	root.PersistentFlags().StringVar(&o.logFormat, "log-format", string(logger.FormatText), "log format: text or json")

	root.AddCommand(inspectCmd(), versionCmd())
	return root
}

// collectParams reads parameters from --params or from positional arguments.
func (o *rootOptions) collectParams(args []string) (urbcsp.Params, error) {
	if o.paramsFile != "" {
		return paramfile.Load(o.paramsFile)
	}

	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return urbcsp.Params{}, usageErrorf("argument %d (%q) is not an integer", i+1, a)
		}
		vals[i] = v
	}

	p := urbcsp.Params{N: vals[0], D: vals[1], C: vals[2], T: vals[3], S: vals[4], I: vals[5]}
	if len(vals) == 7 {
		p.K = &vals[6]
	}
	return p, nil
}

// emit writes the finished document in one piece.
func (o *rootOptions) emit(stdout io.Writer, text []byte) error {
	if o.output == "" || o.output == "-" {
		if _, err := stdout.Write(text); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(filepath.Clean(o.output), text, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", o.output, err)
	}
	return nil
}
