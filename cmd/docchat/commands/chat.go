// ABOUTME: Interactive chat REPL over a loaded document
// ABOUTME: Reads lines from stdin; :pdf/:word/:web load sources, anything else is a question
package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/docchat/internal/models"
)

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session.

Session commands:
  :pdf <path>    load a PDF file
  :word <path>   load a Word (.docx) file
  :web <url>     load a website
  :new           start a new chat (keeps the loaded document)
  :quit          exit

Anything else is sent as a question. Type 'help' for query commands.`,
		Args: cobra.NoArgs,
		RunE: runChat,
		Example: `  docchat chat
  > :pdf contract.pdf
  > find: termination clause
  > summary page 2`,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	session, err := buildSession(logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "docchat ready. :pdf/:word/:web to load, :quit to exit.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if done := runSessionCommand(ctx, cmd, session, line); done {
				return nil
			}
			continue
		}

		fmt.Fprintln(out, session.Send(ctx, line))
		fmt.Fprintln(out)
	}

	return scanner.Err()
}

// runSessionCommand handles a ":" REPL command. Returns true on :quit.
func runSessionCommand(ctx context.Context, cmd *cobra.Command, session sessionLoader, line string) bool {
	out := cmd.OutOrStdout()

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":quit", ":q", ":exit":
		return true
	case ":new":
		session.NewChat()
		fmt.Fprintln(out, "New chat started. Type 'help' to see commands.")
	case ":pdf":
		loadInto(ctx, cmd, session, models.SourcePDF, arg)
	case ":word":
		loadInto(ctx, cmd, session, models.SourceWord, arg)
	case ":web":
		loadInto(ctx, cmd, session, models.SourceWeb, arg)
	default:
		fmt.Fprintf(out, "Unknown command %q. Use :pdf, :word, :web, :new or :quit.\n", name)
	}
	return false
}

// sessionLoader is the slice of the session the REPL needs.
type sessionLoader interface {
	Load(ctx context.Context, kind models.SourceKind, ref string) error
	NewChat()
	ChunkCount() int
	Send(ctx context.Context, input string) string
}

func loadInto(ctx context.Context, cmd *cobra.Command, session sessionLoader, kind models.SourceKind, ref string) {
	out := cmd.OutOrStdout()

	if ref == "" {
		fmt.Fprintf(out, "Usage: :%s <path or url>\n", kind)
		return
	}

	if err := session.Load(ctx, kind, ref); err != nil {
		fmt.Fprintf(out, "Load failed: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Loaded %s (%d chunks). Ask away.\n", ref, session.ChunkCount())
}
