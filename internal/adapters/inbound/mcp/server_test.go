package mcp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/abdidvp/prodcat/internal/adapters/inbound/mcp"
	"github.com/abdidvp/prodcat/internal/adapters/outbound/slot"
	"github.com/abdidvp/prodcat/internal/adapters/outbound/store"
	"github.com/abdidvp/prodcat/internal/application"
	"github.com/abdidvp/prodcat/internal/domain"
)

func TestMCPServerHasTools(t *testing.T) {
	catalog, err := application.OpenCatalog(context.Background(),
		store.New(slot.NewMemory(), ""),
		application.WithLatency(domain.LatencyConfig{}),
	)
	require.NoError(t, err)

	s := mcpadapter.NewServer(catalog, "test", nil)
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"catalog_list",
		"catalog_get",
		"catalog_add",
		"catalog_update",
		"catalog_delete",
		"catalog_validate",
		"form_start_create",
		"form_start_edit",
		"form_set_draft",
		"form_commit",
		"form_cancel",
		"form_state",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
