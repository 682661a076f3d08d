package commands

import (
	"fmt"
	"io"

	"github.com/speakeasy-api/querystyle/cmd/querystyle/commands/cmdutil"
	"github.com/speakeasy-api/querystyle/cmd/querystyle/internal/input"
	"github.com/speakeasy-api/querystyle/params"
	"github.com/speakeasy-api/querystyle/value"
	"github.com/speakeasy-api/querystyle/yml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// NewBuildCmd returns the build command.
func NewBuildCmd() *cobra.Command {
	var (
		configPath string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "build [values|-]",
		Short: "Render a set of parameters from a values document",
		Long: `Render every parameter declared in a config file using the values document.

The values document is a mapping from parameter name to value. Parameters without
a value are skipped, or reported as an error with --strict. Output has one line
per location: query and body parameters are joined with '&', path, header and
cookie parameters are written one per line as "<in> <name>: <fragment>".`,
		Args: cmdutil.StdinOrFileArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, configPath, strict)
		},
		Example: `  querystyle build --config params.yaml values.yaml
  cat values.yaml | querystyle build --config params.yaml`,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the parameter config file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a declared parameter has no value")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string, configPath string, strict bool) error {
	logger := Logger(cmd)
	defer func() { _ = logger.Sync() }()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	set, err := cfg.ParameterSet()
	if err != nil {
		return err
	}

	r, source, err := cmdutil.OpenInput(cmd, cmdutil.InputFileFromArgs(args))
	if err != nil {
		return err
	}
	defer r.Close()

	root, err := input.Read(cmd.Context(), r, cfg.MaxNodes)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}
	values, err := valuesByName(root)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", source, err)
	}

	bindings := set.Bind(func(name string) (any, bool) {
		v, ok := values[name]
		return v, ok
	})
	logger.Debug("bound parameters",
		zap.String("config", configPath),
		zap.String("source", source),
		zap.Int("parameters", set.Len()),
		zap.Int("bound", len(bindings)),
	)

	unbound := set.Unbound(bindings)
	for _, k := range unbound {
		logger.Debug("parameter without value", zap.String("name", k.Name), zap.Stringer("in", k.In))
	}
	if strict && len(unbound) > 0 {
		return params.ErrMissingValue.Wrapf("%s in %s", unbound[0].Name, unbound[0].In)
	}

	return writeBindings(cmd, cmd.OutOrStdout(), bindings, logger)
}

func valuesByName(root *yaml.Node) (map[string]value.Value, error) {
	values := map[string]value.Value{}
	node := yml.ResolveDocument(root)
	if node == nil || node.Kind == 0 {
		return values, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of parameter names, got %s", node.Line, yml.NodeKindToString(node.Kind))
	}

	for k, v := range yml.MappingPairs(node) {
		val, err := value.FromYAML(v)
		if err != nil {
			return nil, err
		}
		values[yml.ResolveAlias(k).Value] = val
	}
	return values, nil
}

func writeBindings(cmd *cobra.Command, w io.Writer, bindings []params.Binding, logger *zap.Logger) error {
	for _, in := range params.Locations {
		var group []params.Binding
		for _, b := range bindings {
			if b.Parameter.In == in {
				group = append(group, b)
			}
		}
		if len(group) == 0 {
			continue
		}

		switch in {
		case params.ParameterInQuery, params.ParameterInBody:
			out, err := params.EncodeAll(cmd.Context(), group, params.WithLogger(logger))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", in, out); err != nil {
				return err
			}
		default:
			for _, b := range group {
				out, err := b.Parameter.Encode(b.Value)
				if err != nil {
					return fmt.Errorf("encoding parameter %q: %w", b.Parameter.Name, err)
				}
				if _, err := fmt.Fprintf(w, "%s %s: %s\n", in, b.Parameter.Name, out); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
