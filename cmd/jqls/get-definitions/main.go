package get_definitions

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/jqls/pkg/parser"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	filePath string
	strategy string
	fs       afero.Fs
}

func NewGetDefinitionsCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "get-definitions [file-path]",
		Short: "recover function definitions from a filter file",
	}

	cmd.Flags().StringVar(&me.strategy, "extent-strategy", "indentation", "extent strategy: indentation or next-header")
	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.filePath = args[0]
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	content, err := afero.ReadFile(me.fs, me.filePath)
	if err != nil {
		return errors.Errorf("failed to read file: %w", err)
	}

	strategy := parser.ExtentIndentation
	switch me.strategy {
	case "indentation":
	case "next-header":
		strategy = parser.ExtentNextHeader
	default:
		return errors.Errorf("unknown extent strategy: %s", me.strategy)
	}

	defs := parser.ParseDefinitionsWithStrategy(ctx, content, strategy)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(defs); err != nil {
		return errors.Errorf("failed to encode definitions: %w", err)
	}

	return nil
}
