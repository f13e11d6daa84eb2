// ABOUTME: One-shot ask command: load a source, ask one question, print the answer
// ABOUTME: Useful for scripting and quick lookups without the REPL
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/docchat/internal/models"
)

var (
	askPDF  string
	askWord string
	askURL  string
)

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question about a document",
		Long: `Load one source and ask a single question.

Exactly one of --pdf, --word or --url must be given. The question may be
any chat input, including commands like "summary" or "find: keyword".`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
		Example: `  docchat ask --pdf contract.pdf "find: payment terms"
  docchat ask --url https://example.com/policy "what is the refund policy"`,
	}

	cmd.Flags().StringVar(&askPDF, "pdf", "", "PDF file to load")
	cmd.Flags().StringVar(&askWord, "word", "", "Word (.docx) file to load")
	cmd.Flags().StringVar(&askURL, "url", "", "Website URL to load")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	var kind models.SourceKind
	var ref string
	count := 0
	for _, source := range []struct {
		kind models.SourceKind
		ref  string
	}{
		{models.SourcePDF, askPDF},
		{models.SourceWord, askWord},
		{models.SourceWeb, askURL},
	} {
		if source.ref != "" {
			kind, ref = source.kind, source.ref
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("exactly one of --pdf, --word or --url is required")
	}

	session, err := buildSession(logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := session.Load(ctx, kind, ref); err != nil {
		return fmt.Errorf("loading %s: %w", ref, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), session.Send(ctx, args[0]))
	return nil
}
