// ABOUTME: MCP tool handler implementations for the docchat server
// ABOUTME: Thin wrappers routing tool calls through the session turn controller
package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/docchat/internal/core"
	"github.com/harper/docchat/internal/models"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	session *core.Session
}

// LoadDocument handles the load_document tool.
func (h *Handlers) LoadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}

	kind := models.SourceKind(strings.ToLower(request.GetString("kind", "")))
	switch kind {
	case models.SourcePDF, models.SourceWord:
	case "":
		if strings.EqualFold(filepath.Ext(path), ".docx") {
			kind = models.SourceWord
		} else {
			kind = models.SourcePDF
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported kind %q (use pdf or word)", kind)), nil
	}

	if err := h.session.Load(ctx, kind, path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Loaded %s: %d chunks", path, h.session.ChunkCount())), nil
}

// LoadURL handles the load_url tool.
func (h *Handlers) LoadURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawURL, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url argument is required and must be a string"), nil
	}

	if err := h.session.Load(ctx, models.SourceWeb, rawURL); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Loaded %s: %d chunks", rawURL, h.session.ChunkCount())), nil
}

// Ask handles the ask tool.
func (h *Handlers) Ask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	return mcp.NewToolResultText(h.session.Send(ctx, question)), nil
}

// Find handles the find tool.
func (h *Handlers) Find(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := request.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError("keyword argument is required and must be a string"), nil
	}

	return mcp.NewToolResultText(h.session.Send(ctx, "find: "+keyword)), nil
}

// Summarize handles the summarize tool.
func (h *Handlers) Summarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := request.GetInt("page", 0)

	command := "summary"
	if page > 0 {
		command = fmt.Sprintf("summary page %d", page)
	}
	return mcp.NewToolResultText(h.session.Send(ctx, command)), nil
}
