package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	productsURI       = "catalog://products"
	productURIPrefix  = productsURI + "/"
	productTemplateID = productURIPrefix + "{code}"
)

// registerResources registers the read-only catalog resources on the given server.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcplib.NewResource(
			productsURI,
			"Products",
			mcplib.WithResourceDescription("Every product in the catalog, in collection order"),
			mcplib.WithMIMEType("application/json"),
		),
		h.handleProductsResource,
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			productTemplateID,
			"Product",
			mcplib.WithTemplateDescription("A single product by code"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		h.handleProductResource,
	)
}

func (h *handlers) handleProductsResource(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	products, err := h.catalog.List(ctx).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return jsonContents(productsURI, products)
}

func (h *handlers) handleProductResource(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	code := strings.TrimPrefix(request.Params.URI, productURIPrefix)
	if code == "" || code == request.Params.URI {
		return nil, fmt.Errorf("product code is required")
	}

	p, err := h.catalog.Get(ctx, code).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading product %q: %w", code, err)
	}
	return jsonContents(request.Params.URI, p)
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
