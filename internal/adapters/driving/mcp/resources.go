package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for driverfinder resources.
	uriScheme = "driverfinder://"
)

// settingsInfo is the public view of the settings. The API key is never exposed.
type settingsInfo struct {
	Provider        string `json:"provider"`
	Model           string `json:"model"`
	BaseURL         string `json:"base_url,omitempty"`
	APIKeySet       bool   `json:"api_key_set"`
	QueryInterval   string `json:"query_interval"`
	DescriptorsFile string `json:"descriptors_file,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current LLM provider and scan settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	info := settingsInfo{
		Provider:        settings.LLM.Provider.String(),
		Model:           settings.LLM.Model,
		BaseURL:         settings.LLM.BaseURL,
		APIKeySet:       settings.LLM.APIKey != "" || s.ports.Credential != "",
		QueryInterval:   settings.Scan.QueryInterval.String(),
		DescriptorsFile: settings.Scan.DescriptorsFile,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
