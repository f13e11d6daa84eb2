// ABOUTME: Root command wiring for the docchat CLI
// ABOUTME: Registers chat, ask, mcp and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var quiet bool

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "docchat",
		Short: "Chat with PDF, Word and web documents",
		Long: `docchat answers questions about a loaded document.

Load a PDF, a Word file or a website, then ask free-text questions or
use commands like "summary", "summary page 3", "page 5" and
"find: refund policy". Typos are corrected against the document's own
vocabulary and queries are expanded with synonyms before searching.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress log output")

	root.AddCommand(NewChatCmd())
	root.AddCommand(NewAskCmd())
	root.AddCommand(NewMCPCmd())
	root.AddCommand(NewVersionCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
