package get_hover

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/jqls/pkg/hover"
	"github.com/walteh/jqls/pkg/position"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	filePath  string
	line      int
	character int
	fs        afero.Fs
}

func NewGetHoverCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "get-hover [file-path] [line] [character]",
		Short: "get hover information for a position in a filter file",
	}

	cmd.Args = cobra.ExactArgs(3)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.filePath = args[0]
		var err error
		me.line, err = strconv.Atoi(args[1])
		if err != nil {
			return errors.Errorf("invalid line number: %w", err)
		}
		me.character, err = strconv.Atoi(args[2])
		if err != nil {
			return errors.Errorf("invalid character number: %w", err)
		}
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	content, err := afero.ReadFile(me.fs, me.filePath)
	if err != nil {
		return errors.Errorf("failed to read file: %w", err)
	}

	pos := position.NewRawPositionFromLineAndColumn(me.line, me.character, "", string(content))

	info, err := hover.BuildHoverResponseFromText(ctx, content, pos)
	if err != nil {
		return errors.Errorf("failed to build hover response: %w", err)
	}

	out := map[string]any{"contents": ""}
	if info != nil {
		out["contents"] = strings.Join(info.Content, "\n")
		out["offset"] = info.Position.Offset
		out["text"] = info.Position.Text
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Errorf("failed to encode hover response: %w", err)
	}

	return nil
}
