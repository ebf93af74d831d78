// Package api exposes the two weather tools over the Model Context
// Protocol. The tool surface always returns displayable text: upstream
// failures are logged and converted to fixed fallback strings, never
// surfaced as protocol-level errors.
package api

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"weather-mcp/datasource"
	"weather-mcp/report"
)

// Fallback text returned to the tool caller when the upstream query
// fails for any reason.
const (
	currentFallback  = "No alerts found or an error occurred."
	forecastFallback = "No forecast found or an error occurred."
)

// CityInput is the argument schema shared by both tools.
type CityInput struct {
	City string `json:"city" jsonschema:"城市编码"`
}

// Server wires a weather source to the MCP tool surface.
type Server struct {
	src datasource.WeatherSource
	mcp *mcp.Server
}

// NewServer builds the MCP server and registers both tools.
func NewServer(src datasource.WeatherSource) *Server {
	s := &Server{src: src}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{Name: "weather", Version: "1.0.0"},
		&mcp.ServerOptions{Instructions: "A simple weather forecaster"},
	)
	mcp.AddTool(s.mcp, &mcp.Tool{Name: "get_current", Description: "获取当天，天气情况"}, s.GetCurrent)
	mcp.AddTool(s.mcp, &mcp.Tool{Name: "get_forecast", Description: "获取最近几天，天气预报"}, s.GetForecast)

	return s
}

// Run serves the MCP protocol over stdio until the context is
// cancelled or the transport closes.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// GetCurrent handles the current-weather tool call.
func (s *Server) GetCurrent(ctx context.Context, req *mcp.CallToolRequest, input CityInput) (*mcp.CallToolResult, any, error) {
	log.Printf("Received request for current weather in city %s", input.City)

	resp, err := s.src.GetLiveWeather(ctx, input.City)
	if err != nil {
		log.Printf("Failed to fetch current weather from %s: %v", s.src.Name(), err)
		return textResult(currentFallback), nil, nil
	}

	return textResult(report.FormatLive(resp.Lives)), nil, nil
}

// GetForecast handles the multi-day forecast tool call.
func (s *Server) GetForecast(ctx context.Context, req *mcp.CallToolRequest, input CityInput) (*mcp.CallToolResult, any, error) {
	log.Printf("Received request for forecast in city %s", input.City)

	resp, err := s.src.GetForecast(ctx, input.City)
	if err != nil {
		log.Printf("Failed to fetch forecast from %s: %v", s.src.Name(), err)
		return textResult(forecastFallback), nil, nil
	}

	return textResult(report.FormatForecast(resp.Forecasts)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
