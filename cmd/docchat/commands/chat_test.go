// ABOUTME: Tests for the chat REPL command handling
// ABOUTME: Exercises ":" commands against a stub session

package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/harper/docchat/internal/models"
)

// stubSession records the calls the REPL makes.
type stubSession struct {
	loadKind models.SourceKind
	loadRef  string
	loadErr  error
	newChats int
	sent     []string
}

func (s *stubSession) Load(ctx context.Context, kind models.SourceKind, ref string) error {
	s.loadKind = kind
	s.loadRef = ref
	return s.loadErr
}

func (s *stubSession) NewChat() { s.newChats++ }

func (s *stubSession) ChunkCount() int { return 3 }

func (s *stubSession) Send(ctx context.Context, input string) string {
	s.sent = append(s.sent, input)
	return "answer"
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunSessionCommand_Quit(t *testing.T) {
	cmd, _ := testCmd()

	for _, line := range []string{":quit", ":q", ":exit"} {
		if done := runSessionCommand(context.Background(), cmd, &stubSession{}, line); !done {
			t.Errorf("runSessionCommand(%q) = false, want true", line)
		}
	}
}

func TestRunSessionCommand_LoadPDF(t *testing.T) {
	cmd, out := testCmd()
	session := &stubSession{}

	done := runSessionCommand(context.Background(), cmd, session, ":pdf contract.pdf")
	if done {
		t.Error("Load command should not end the session")
	}
	if session.loadKind != models.SourcePDF || session.loadRef != "contract.pdf" {
		t.Errorf("Load called with (%q, %q)", session.loadKind, session.loadRef)
	}
	if !strings.Contains(out.String(), "Loaded contract.pdf (3 chunks)") {
		t.Errorf("Output = %q", out.String())
	}
}

func TestRunSessionCommand_LoadKinds(t *testing.T) {
	tests := []struct {
		line string
		kind models.SourceKind
		ref  string
	}{
		{":word report.docx", models.SourceWord, "report.docx"},
		{":web https://example.com", models.SourceWeb, "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, _ := testCmd()
			session := &stubSession{}

			runSessionCommand(context.Background(), cmd, session, tt.line)
			if session.loadKind != tt.kind || session.loadRef != tt.ref {
				t.Errorf("Load called with (%q, %q), want (%q, %q)",
					session.loadKind, session.loadRef, tt.kind, tt.ref)
			}
		})
	}
}

func TestRunSessionCommand_LoadMissingArg(t *testing.T) {
	cmd, out := testCmd()
	session := &stubSession{}

	runSessionCommand(context.Background(), cmd, session, ":pdf")
	if session.loadRef != "" {
		t.Error("Load should not be called without an argument")
	}
	if !strings.Contains(out.String(), "Usage: :pdf") {
		t.Errorf("Output = %q", out.String())
	}
}

func TestRunSessionCommand_LoadFailure(t *testing.T) {
	cmd, out := testCmd()
	session := &stubSession{loadErr: errors.New("corrupt file")}

	runSessionCommand(context.Background(), cmd, session, ":pdf bad.pdf")
	if !strings.Contains(out.String(), "Load failed") {
		t.Errorf("Output = %q", out.String())
	}
}

func TestRunSessionCommand_New(t *testing.T) {
	cmd, out := testCmd()
	session := &stubSession{}

	runSessionCommand(context.Background(), cmd, session, ":new")
	if session.newChats != 1 {
		t.Errorf("NewChat called %d times, want 1", session.newChats)
	}
	if !strings.Contains(out.String(), "New chat started") {
		t.Errorf("Output = %q", out.String())
	}
}

func TestRunSessionCommand_Unknown(t *testing.T) {
	cmd, out := testCmd()

	runSessionCommand(context.Background(), cmd, &stubSession{}, ":bogus")
	if !strings.Contains(out.String(), "Unknown command") {
		t.Errorf("Output = %q", out.String())
	}
}
