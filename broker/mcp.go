package broker

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/kantina/menu"
)

// MenuGetInput is the input schema for the menu_get tool.
type MenuGetInput struct {
	Week string `json:"week,omitempty" jsonschema:"week number to look up; defaults to the current week"`
}

// RegisterMCP registers the broker's tools on an MCP server.
func (s *Service) RegisterMCP(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "menu_get",
		Description: "Get the canteen lunch menu for a week (current week when omitted).",
	}, s.handleMenuGet)
}

// handleMenuGet handles the menu_get tool invocation.
func (s *Service) handleMenuGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MenuGetInput,
) (*mcp.CallToolResult, *menu.Menu, error) {
	week := input.Week
	if week == "" {
		week = s.CurrentWeek()
	}
	m, err := s.Menu(ctx, week)
	if err != nil {
		s.logEvent("menu_get_mcp", week, err.Error())
		return nil, nil, err
	}
	s.logEvent("menu_get_mcp", week, "")
	return nil, m, nil
}
