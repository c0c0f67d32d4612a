package mcp

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/prodcat/internal/domain"
)

// registerFormTools registers the create/edit form workflow tools.
func registerFormTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcplib.NewTool("form_start_create",
			mcplib.WithDescription("Starts a new product draft from the blank template, discarding any draft in progress"),
		),
		h.handleStartCreate,
	)

	s.AddTool(
		mcplib.NewTool("form_start_edit",
			mcplib.WithDescription("Starts editing a copy of an existing product. Nothing is saved until form_commit."),
			mcplib.WithString("code", mcplib.Required(), mcplib.Description("Code of the product to edit")),
		),
		h.handleStartEdit,
	)

	s.AddTool(
		mcplib.NewTool("form_set_draft",
			mcplib.WithDescription("Changes fields of the current draft. Omitted fields keep their draft values. The code is fixed while editing."),
			mcplib.WithString("code", mcplib.Description("Product code")),
			mcplib.WithString("name", mcplib.Description("Product name")),
			mcplib.WithNumber("cost", mcplib.Description("Unit cost")),
			mcplib.WithNumber("price", mcplib.Description("Sale price")),
			mcplib.WithNumber("value", mcplib.Description("Stock value")),
		),
		h.handleSetDraft,
	)

	s.AddTool(
		mcplib.NewTool("form_commit",
			mcplib.WithDescription("Validates and saves the draft. Invalid drafts stay open with their field errors."),
		),
		h.handleCommit,
	)

	s.AddTool(
		mcplib.NewTool("form_cancel",
			mcplib.WithDescription("Discards the draft without touching the catalog"),
		),
		h.handleCancel,
	)

	s.AddTool(
		mcplib.NewTool("form_state",
			mcplib.WithDescription("Returns the form state, the draft and its current field errors"),
		),
		h.handleFormState,
	)
}

type formView struct {
	Session     string           `json:"session"`
	State       domain.FormState `json:"state"`
	EditingCode string           `json:"editing_code,omitempty"`
	Draft       *domain.Product  `json:"draft,omitempty"`
	Errors      domain.ErrorSet  `json:"errors,omitempty"`
}

// view snapshots the form. Callers hold h.mu.
func (h *handlers) view() formView {
	v := formView{
		Session:     h.form.Session(),
		State:       h.form.State(),
		EditingCode: h.form.EditingCode(),
	}
	if v.State != domain.FormIdle {
		draft := h.form.Draft()
		v.Draft = &draft
		v.Errors = h.form.Validate()
	}
	return v
}

func (h *handlers) handleStartCreate(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.form.StartCreate()
	return jsonResult(h.view())
}

func (h *handlers) handleStartEdit(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	p, err := h.catalog.Get(ctx, code).Wait(ctx)
	if err != nil {
		return failure(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.form.StartEdit(p)
	return jsonResult(h.view())
}

func (h *handlers) handleSetDraft(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	draft := overlayProduct(h.form.Draft(), request.GetArguments())
	if err := h.form.SetDraft(draft); err != nil {
		return failure(err)
	}
	return jsonResult(h.view())
}

func (h *handlers) handleCommit(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	saved, err := h.form.Commit(ctx)
	if err != nil {
		return failure(err)
	}
	return jsonResult(saved)
}

func (h *handlers) handleCancel(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.form.Cancel()
	return jsonResult(h.view())
}

func (h *handlers) handleFormState(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return jsonResult(h.view())
}
