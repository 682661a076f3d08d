package commands

import (
	"fmt"

	"github.com/speakeasy-api/querystyle/cmd/querystyle/commands/cmdutil"
	"github.com/speakeasy-api/querystyle/cmd/querystyle/internal/input"
	"github.com/speakeasy-api/querystyle/params"
	"github.com/speakeasy-api/querystyle/pointer"
	"github.com/speakeasy-api/querystyle/style"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type encodeFlags struct {
	name          string
	style         string
	in            string
	explode       bool
	allowReserved bool
	normalize     bool
	deep          []string
	path          string
	legacyPath    string
	maxNodes      int
}

// NewEncodeCmd returns the encode command.
func NewEncodeCmd() *cobra.Command {
	flags := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode [file|-]",
		Short: "Render a YAML or JSON value as a single parameter",
		Long: `Render a YAML or JSON value as a single request parameter.

The style defaults from the parameter location: path and header parameters use
simple, query, cookie and body parameters use form. Use --style to pick
deepObject or deepForm instead.`,
		Args: cmdutil.StdinOrFileArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args, flags)
		},
		Example: `  # Render a query parameter
  echo '[blue, black]' | querystyle encode --name color

  # Render part of a document as a deepObject
  querystyle encode values.yaml --name filter --style deepObject --path '$.filter'

  # Render a form body with a nested field in deepObject notation
  querystyle encode body.yaml --in body --style deepForm --deep address`,
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Parameter name")
	cmd.Flags().StringVar(&flags.style, "style", "", "Serialization style (simple, form, deepObject, deepForm)")
	cmd.Flags().StringVar(&flags.in, "in", string(params.ParameterInQuery), "Parameter location (path, query, header, cookie, body)")
	cmd.Flags().BoolVar(&flags.explode, "explode", false, "Explode arrays and objects (defaults to true for form)")
	cmd.Flags().BoolVar(&flags.allowReserved, "allow-reserved", false, "Leave reserved characters unescaped in query parameters")
	cmd.Flags().BoolVar(&flags.normalize, "nfc", false, "Normalize text to Unicode NFC before escaping")
	cmd.Flags().StringSliceVar(&flags.deep, "deep", nil, "Fields rendered in deepObject notation by deepForm (can be repeated or comma-separated)")
	cmd.Flags().StringVar(&flags.path, "path", "", "RFC 9535 JSONPath selecting the value to render")
	cmd.Flags().StringVar(&flags.legacyPath, "legacy-path", "", "Legacy yamlpath expression selecting the value to render")
	cmd.Flags().IntVar(&flags.maxNodes, "max-nodes", input.DefaultMaxNodes, "Maximum number of YAML nodes read (0 for no limit)")
	cmd.MarkFlagsMutuallyExclusive("path", "legacy-path")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string, flags *encodeFlags) error {
	logger := Logger(cmd)
	defer func() { _ = logger.Sync() }()

	p := &params.Parameter{
		Name:          flags.name,
		In:            params.ParameterIn(flags.in),
		AllowReserved: flags.allowReserved,
		Normalize:     flags.normalize,
		DeepFields:    flags.deep,
	}
	if flags.style != "" {
		p.Style = pointer.From(style.SerializationStyle(flags.style))
	}
	if cmd.Flags().Changed("explode") {
		p.Explode = pointer.From(flags.explode)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	r, source, err := cmdutil.OpenInput(cmd, cmdutil.InputFileFromArgs(args))
	if err != nil {
		return err
	}
	defer r.Close()

	root, err := input.Read(cmd.Context(), r, flags.maxNodes)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	path, legacy := flags.path, false
	if flags.legacyPath != "" {
		path, legacy = flags.legacyPath, true
	}
	nodes, err := input.Select(root, path, legacy)
	if err != nil {
		return err
	}
	v, err := input.Value(nodes)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", source, err)
	}

	logger.Debug("encoding value",
		zap.String("source", source),
		zap.String("name", p.Name),
		zap.Stringer("in", p.In),
		zap.Stringer("style", p.GetStyle()),
		zap.Bool("explode", p.GetExplode()),
		zap.Stringer("kind", v.Kind()),
	)

	out, err := p.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", source, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
