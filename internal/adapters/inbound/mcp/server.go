package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/abdidvp/prodcat/internal/application"
	"github.com/abdidvp/prodcat/internal/domain"
)

// Catalog is the part of the catalog service the MCP tools call.
type Catalog interface {
	application.ProductWriter
	List(ctx context.Context) *application.Pending[[]domain.Product]
	Get(ctx context.Context, code string) *application.Pending[domain.Product]
	Delete(ctx context.Context, code string) *application.Pending[bool]
}

// handlers holds the catalog and the single form session of a stdio client.
type handlers struct {
	catalog Catalog
	logger  *zap.Logger

	// mu serializes form access; tool calls may arrive concurrently.
	mu   sync.Mutex
	form *application.FormController
}

// NewServer creates an MCP server exposing the catalog as tools and resources.
// The server owns one form session, shared by every call from its client.
func NewServer(catalog Catalog, version string, logger *zap.Logger) *server.MCPServer {
	h := newHandlers(catalog, logger)

	s := server.NewMCPServer(
		"prodcat",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerCatalogTools(s, h)
	registerFormTools(s, h)
	registerResources(s, h)

	return s
}

func newHandlers(catalog Catalog, logger *zap.Logger) *handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &handlers{
		catalog: catalog,
		logger:  logger.Named("mcp"),
		form:    application.NewFormController(catalog, application.WithFormLogger(logger)),
	}
}
