package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kalambet/olis/internal/profile"
	"github.com/kalambet/olis/internal/scoring"
	"github.com/kalambet/olis/internal/voice"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Profiles *profile.Manager
	Voice    *voice.Wizard // optional; olis://voice is omitted when nil
	Version  string
}

// NewMCPServer creates an MCP server with the olis scoring tools and profile
// resources registered.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"olis",
		deps.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("olis: LinkedIn profile scoring, post feedback and writing voice."),
		server.WithRecovery(),
	)

	// Tools
	s.AddTool(
		mcp.NewTool("score_profile",
			mcp.WithDescription("Score the stored profile and posts from 0 to 100 and return the band."),
		),
		mcpScoreProfile(deps),
	)

	s.AddTool(
		mcp.NewTool("analyze_post",
			mcp.WithDescription("Rule-based feedback for a LinkedIn post draft: strengths, improvements and a score."),
			mcp.WithString("content", mcp.Description("Post text"), mcp.Required()),
		),
		mcpAnalyzePost(),
	)

	s.AddTool(
		mcp.NewTool("content_stats",
			mcp.WithDescription("Aggregate statistics over the stored posts."),
		),
		mcpContentStats(deps),
	)

	s.AddTool(
		mcp.NewTool("suggest_headlines",
			mcp.WithDescription("Headline and about-section suggestions built from the stored profile."),
		),
		mcpSuggestHeadlines(deps),
	)

	s.AddTool(
		mcp.NewTool("add_post",
			mcp.WithDescription("Add a post to the stored post history."),
			mcp.WithString("content", mcp.Description("Post text"), mcp.Required()),
			mcp.WithBoolean("featured", mcp.Description("Mark the post as featured")),
		),
		mcpAddPost(deps),
	)

	// Resources
	s.AddResource(
		mcp.NewResource(
			"olis://profile",
			"Profile",
			mcp.WithResourceDescription("Stored profile as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceJSON(func() any { return deps.Profiles.Profile() }),
	)

	s.AddResource(
		mcp.NewResource(
			"olis://posts",
			"Posts",
			mcp.WithResourceDescription("Stored post history as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceJSON(func() any { return deps.Profiles.Posts() }),
	)

	if deps.Voice != nil {
		s.AddResource(
			mcp.NewResource(
				"olis://voice",
				"Voice",
				mcp.WithResourceDescription("Writing voice configuration as JSON"),
				mcp.WithMIMEType("application/json"),
			),
			mcpResourceJSON(func() any { return deps.Voice.Config() }),
		)
	}

	return s
}

func mcpScoreProfile(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, posts := deps.Profiles.Snapshot()
		score := scoring.Score(&p, posts)
		return mcpJSON(map[string]any{
			"score": score,
			"band":  scoring.Label(score),
		})
	}
}

func mcpAnalyzePost() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcpError("content is required"), nil
		}
		return mcpJSON(scoring.AnalyzePost(content))
	}
}

func mcpContentStats(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcpJSON(scoring.ContentStats(deps.Profiles.Posts()))
	}
}

func mcpSuggestHeadlines(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p := deps.Profiles.Profile()
		return mcpJSON(map[string][]string{
			"headlines": scoring.HeadlineSuggestions(p.Headline),
			"about":     scoring.AboutSuggestions(p.Summary),
		})
	}
}

func mcpAddPost(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcpError("content is required"), nil
		}
		featured := req.GetBool("featured", false)

		p, err := deps.Profiles.AddPost(content, featured, "")
		if err != nil {
			return mcpError(fmt.Sprintf("failed to add post: %v", err)), nil
		}
		return mcpText(fmt.Sprintf("Stored post %s", p.ID)), nil
	}
}

func mcpResourceJSON(get func() any) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(get())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", req.Params.URI, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcpText(string(b)), nil
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
