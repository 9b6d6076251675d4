// Package mcpserver exposes the catalog and key commands as MCP tools.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/acfkit/api"
	"github.com/agentic-research/acfkit/internal/catalog"
	"github.com/agentic-research/acfkit/internal/commands"
	"github.com/agentic-research/acfkit/internal/keyindex"
	"github.com/agentic-research/acfkit/internal/tree"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

var jsonOpts = &ojg.Options{Indent: 2, Sort: true}

// Server holds the state shared by the tool handlers.
type Server struct {
	runner   *commands.Runner
	catalog  *catalog.Catalog
	settings api.Settings
}

// New returns a Server working on the catalog's workspace.
func New(runner *commands.Runner, cat *catalog.Catalog, settings api.Settings) *Server {
	return &Server{runner: runner, catalog: cat, settings: settings}
}

// MCP builds the MCP server with every tool registered.
func (s *Server) MCP() *server.MCPServer {
	m := server.NewMCPServer("acfkit", Version, server.WithToolCapabilities(false))

	m.AddTool(mcp.NewTool("list_field_groups",
		mcp.WithDescription("List ACF field groups grouped by theme, with type and override status"),
	), s.ListFieldGroups)

	m.AddTool(mcp.NewTool("regenerate_group_key",
		mcp.WithDescription("Give a field group file a new group_ key"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Workspace-relative path of an acf-json/*.json file")),
		mcp.WithBoolean("rename", mcp.Description("Rename the file to <newKey>.json")),
	), s.RegenerateGroupKey)

	m.AddTool(mcp.NewTool("regenerate_field_key",
		mcp.WithDescription("Give the object enclosing a byte offset a new field_ key"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Workspace-relative path of an acf-json/*.json file")),
		mcp.WithNumber("offset", mcp.Required(), mcp.Description("Byte offset inside the field object")),
		mcp.WithBoolean("propagate", mcp.Description("Also replace quoted references to the old key")),
	), s.RegenerateFieldKey)

	m.AddTool(mcp.NewTool("regenerate_all_field_keys",
		mcp.WithDescription("Give every top-level field a new key and update references"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Workspace-relative path of an acf-json/*.json file")),
	), s.RegenerateAllFieldKeys)

	m.AddTool(mcp.NewTool("find_key_collisions",
		mcp.WithDescription("List ACF keys declared by more than one field group file"),
	), s.FindKeyCollisions)

	return m
}

// ServeStdio serves MCP over stdin and stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP())
}

// ListFieldGroups handles list_field_groups.
func (s *Server) ListFieldGroups(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.catalog.Reload(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var out []any
	for _, tn := range tree.Build(snap, s.settings) {
		var groups []any
		for _, fn := range tn.Children {
			g := map[string]any{
				"title": fn.File.Title,
				"key":   fn.File.Key,
				"path":  fn.File.Path,
				"type":  fn.TypeLabel,
			}
			if fn.File.IsOverride {
				g["override_of"] = fn.File.OverrideOf
			}
			groups = append(groups, g)
		}
		out = append(out, map[string]any{"theme": tn.DisplayName, "field_groups": groups})
	}
	return mcp.NewToolResultText(oj.JSON(out, jsonOpts)), nil
}

// RegenerateGroupKey handles regenerate_group_key.
func (s *Server) RegenerateGroupKey(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(s.runner.GenerateGroupKey(p, req.GetBool("rename", false)))
}

// RegenerateFieldKey handles regenerate_field_key.
func (s *Server) RegenerateFieldKey(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	offset, err := req.RequireInt("offset")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if req.GetBool("propagate", false) {
		return result(s.runner.GenerateFieldKeyWithReferences(p, offset))
	}
	return result(s.runner.GenerateFieldKey(p, offset))
}

// RegenerateAllFieldKeys handles regenerate_all_field_keys.
func (s *Server) RegenerateAllFieldKeys(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(s.runner.RegenerateAllFieldKeys(p))
}

// FindKeyCollisions handles find_key_collisions.
func (s *Server) FindKeyCollisions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.catalog.Reload(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	collisions := keyindex.Build(snap).Collisions()
	if len(collisions) == 0 {
		return mcp.NewToolResultText("No key collisions"), nil
	}
	var out []any
	for _, c := range collisions {
		var paths []any
		for _, f := range c.Files {
			paths = append(paths, f.Path)
		}
		out = append(out, map[string]any{"key": c.Key, "files": paths, "shadowing": c.Shadowing})
	}
	return mcp.NewToolResultText(oj.JSON(out, jsonOpts)), nil
}

func result(res *commands.Result, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		if res != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s; %v", res.Summary(), err)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.Summary()), nil
}
