package get_tokens

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/jqls/pkg/semtok"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	filePath string
	fs       afero.Fs
}

func NewGetTokensCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "get-tokens [file-path]",
		Short: "classify semantic tokens in a filter file",
	}

	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.filePath = args[0]
		return me.Run(cmd.Context())
	}

	return cmd
}

// tokenOutput is the wire shape for one classified token
type tokenOutput struct {
	Text         string `json:"text"`
	Offset       int    `json:"offset"`
	Line         int    `json:"line"`
	Character    int    `json:"character"`
	EndLine      int    `json:"endLine"`
	EndCharacter int    `json:"endCharacter"`
	Type         string `json:"type"`
	Modifier     string `json:"modifier"`
}

func (me *Handler) Run(ctx context.Context) error {
	content, err := afero.ReadFile(me.fs, me.filePath)
	if err != nil {
		return errors.Errorf("failed to read file: %w", err)
	}

	tokens, err := semtok.GetTokensForText(ctx, content)
	if err != nil {
		return errors.Errorf("failed to classify tokens: %w", err)
	}

	out := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		rng := tok.Range.GetRange(string(content))
		out = append(out, tokenOutput{
			Text:         tok.Range.Text,
			Offset:       tok.Range.Offset,
			Line:         rng.Start.Line,
			Character:    rng.Start.Character,
			EndLine:      rng.End.Line,
			EndCharacter: rng.End.Character,
			Type:         tok.Type.String(),
			Modifier:     tok.Modifier.String(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Errorf("failed to encode tokens: %w", err)
	}

	return nil
}
