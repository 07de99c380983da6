package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	tracksResourceURI = "mcp://resource/conference-tracks"
	infoResourceURI   = "mcp://resource/conference-info"
)

func (h *handlers) registerResources(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		Name:        "conference-tracks",
		URI:         tracksResourceURI,
		MIMEType:    "application/json",
		Description: "Talk tracks of the conference with a short description of each",
	}, h.jsonResource(func() any { return h.catalog.Tracks() }))

	server.AddResource(&mcp.Resource{
		Name:        "conference-info",
		URI:         infoResourceURI,
		MIMEType:    "application/json",
		Description: "Dates, venue, hotels, audience and links of the conference",
	}, h.jsonResource(func() any { return h.catalog.Info() }))
}

func (h *handlers) jsonResource(payload func() any) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		data, err := json.MarshalIndent(payload(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal resource: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
