// ABOUTME: MCP tool definitions and registration for the docchat server
// ABOUTME: Exposes load/ask/find/summarize over a shared chat session
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/docchat/internal/core"
)

// RegisterTools registers all docchat MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, session *core.Session) *Handlers {
	handlers := &Handlers{session: session}

	// 1. load_document - load a PDF or Word file into the session
	server.AddTool(mcp.Tool{
		Name:        "load_document",
		Description: "Load a PDF or Word (.docx) file into the chat session. Replaces any previously loaded content.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Filesystem path to the document",
				},
				"kind": map[string]interface{}{
					"type":        "string",
					"description": "Source kind: pdf or word. Inferred from the file extension when omitted.",
					"enum":        []string{"pdf", "word"},
				},
			},
			Required: []string{"path"},
		},
	}, handlers.LoadDocument)

	// 2. load_url - load a web page into the session
	server.AddTool(mcp.Tool{
		Name:        "load_url",
		Description: "Fetch a web page, strip it to text and load it into the chat session.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "Absolute URL of the page to load",
				},
			},
			Required: []string{"url"},
		},
	}, handlers.LoadURL)

	// 3. ask - run one chat turn against the loaded content
	server.AddTool(mcp.Tool{
		Name:        "ask",
		Description: "Ask a question about the loaded document. Supports the same commands as the chat: help, summary, summary page N, page N, find: keyword.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question or command text",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.Ask)

	// 4. find - keyword search over the loaded chunks
	server.AddTool(mcp.Tool{
		Name:        "find",
		Description: "Search the loaded document for a keyword, with typo correction and synonym expansion.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"keyword": map[string]interface{}{
					"type":        "string",
					"description": "Keyword or phrase to search for",
				},
			},
			Required: []string{"keyword"},
		},
	}, handlers.Find)

	// 5. summarize - summarize the document or one page
	server.AddTool(mcp.Tool{
		Name:        "summarize",
		Description: "Summarize the loaded document, or a single page/chunk when page is given.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page/chunk number to summarize (whole document when omitted)",
				},
			},
		},
	}, handlers.Summarize)

	return handlers
}
