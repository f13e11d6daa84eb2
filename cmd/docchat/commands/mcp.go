// ABOUTME: MCP command starts a Model Context Protocol server over stdio
// ABOUTME: Enables LLM agents to load documents and ask questions through docchat
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/docchat/internal/mcp"
)

// NewMCPCmd creates the MCP command.
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs docchat as an MCP (Model Context Protocol) server over stdio,
exposing load_document, load_url, ask, find and summarize tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  docchat mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "docchat": {
  #       "command": "docchat",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	session, err := buildSession(logger)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"docchat",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, session)

	logger.Info().Msg("docchat MCP server starting on stdio")
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
