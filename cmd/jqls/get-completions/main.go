package get_completions

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/jqls/pkg/completion"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	filePath    string
	line        int
	character   int
	triggerChar string
	fs          afero.Fs
}

func NewGetCompletionsCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "get-completions [file-path] [line] [character]",
		Short: "get completions for a position in a filter file",
	}

	cmd.Flags().StringVar(&me.triggerChar, "trigger-char", "", "the trigger character reported by the host, if any")
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

	items, err := completion.GetCompletions(ctx, content, me.line, me.character, me.triggerChar)
	if err != nil {
		return errors.Errorf("failed to build completions: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return errors.Errorf("failed to encode completions: %w", err)
	}

	return nil
}
