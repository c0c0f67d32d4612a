package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/abdidvp/prodcat/internal/application"
	"github.com/abdidvp/prodcat/internal/domain"
)

// registerCatalogTools registers the direct catalog tools on the given server.
func registerCatalogTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcplib.NewTool("catalog_list",
			mcplib.WithDescription("Returns every product in collection order as JSON"),
			mcplib.WithString("where",
				mcplib.Description(`Optional filter expression over code, name, cost, price and value (e.g. price > 50 && name contains "Mon")`),
			),
		),
		h.handleList,
	)

	s.AddTool(
		mcplib.NewTool("catalog_get",
			mcplib.WithDescription("Returns a single product by code"),
			mcplib.WithString("code", mcplib.Required(), mcplib.Description("Product code, e.g. A001")),
		),
		h.handleGet,
	)

	s.AddTool(
		mcplib.NewTool("catalog_add",
			mcplib.WithDescription("Adds a product. When code is omitted the next P-code is generated."),
			mcplib.WithString("code", mcplib.Description("Product code: a letter followed by digits")),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("At least 5 characters")),
			mcplib.WithNumber("cost", mcplib.Required(), mcplib.Description("Greater than 0")),
			mcplib.WithNumber("price", mcplib.Required(), mcplib.Description("Between 10 and 100")),
			mcplib.WithNumber("value", mcplib.Description("0 or greater")),
		),
		h.handleAdd,
	)

	s.AddTool(
		mcplib.NewTool("catalog_update",
			mcplib.WithDescription("Replaces the fields of an existing product. Omitted fields keep their current values."),
			mcplib.WithString("code", mcplib.Required(), mcplib.Description("Code of the product to update")),
			mcplib.WithString("name", mcplib.Description("At least 5 characters")),
			mcplib.WithNumber("cost", mcplib.Description("Greater than 0")),
			mcplib.WithNumber("price", mcplib.Description("Between 10 and 100")),
			mcplib.WithNumber("value", mcplib.Description("0 or greater")),
		),
		h.handleUpdate,
	)

	s.AddTool(
		mcplib.NewTool("catalog_delete",
			mcplib.WithDescription("Removes a product by code"),
			mcplib.WithString("code", mcplib.Required(), mcplib.Description("Code of the product to delete")),
		),
		h.handleDelete,
	)

	s.AddTool(
		mcplib.NewTool("catalog_validate",
			mcplib.WithDescription("Checks a candidate product against the field rules without saving it"),
			mcplib.WithString("code", mcplib.Description("Product code")),
			mcplib.WithString("name", mcplib.Description("Product name")),
			mcplib.WithNumber("cost", mcplib.Description("Unit cost")),
			mcplib.WithNumber("price", mcplib.Description("Sale price")),
			mcplib.WithNumber("value", mcplib.Description("Stock value")),
		),
		h.handleValidate,
	)
}

func (h *handlers) handleList(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	products, err := h.catalog.List(ctx).Wait(ctx)
	if err != nil {
		return failure(err)
	}

	if where, _ := request.GetArguments()["where"].(string); where != "" {
		filter, err := application.CompileFilter(where)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if products, err = filter.Apply(products); err != nil {
			return errorResult(err.Error()), nil
		}
	}
	return jsonResult(products)
}

func (h *handlers) handleGet(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	p, err := h.catalog.Get(ctx, code).Wait(ctx)
	if err != nil {
		return failure(err)
	}
	return jsonResult(p)
}

func (h *handlers) handleAdd(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	candidate := overlayProduct(domain.BlankProduct(), request.GetArguments())

	saved, err := h.catalog.Add(ctx, candidate).Wait(context.WithoutCancel(ctx))
	if err != nil {
		return failure(err)
	}
	h.logger.Debug("catalog_add done", zap.String("code", saved.Code))
	return jsonResult(saved)
}

func (h *handlers) handleUpdate(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	current, err := h.catalog.Get(ctx, code).Wait(ctx)
	if err != nil {
		return failure(err)
	}

	saved, err := h.catalog.Update(ctx, overlayProduct(current, request.GetArguments())).Wait(context.WithoutCancel(ctx))
	if err != nil {
		return failure(err)
	}
	h.logger.Debug("catalog_update done", zap.String("code", saved.Code))
	return jsonResult(saved)
}

func (h *handlers) handleDelete(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	if _, err := h.catalog.Delete(ctx, code).Wait(context.WithoutCancel(ctx)); err != nil {
		return failure(err)
	}
	h.logger.Debug("catalog_delete done", zap.String("code", code))
	return textResult(fmt.Sprintf("deleted %s", code)), nil
}

func (h *handlers) handleValidate(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	candidate := overlayProduct(domain.BlankProduct(), request.GetArguments())
	errs := domain.Validate(candidate)
	return jsonResult(validationView{Valid: errs.Valid(), Errors: errs})
}

type validationView struct {
	Valid  bool            `json:"valid"`
	Errors domain.ErrorSet `json:"errors,omitempty"`
}

// overlayProduct copies the product fields present in args over base.
func overlayProduct(base domain.Product, args map[string]any) domain.Product {
	if v, ok := args["code"].(string); ok {
		base.Code = v
	}
	if v, ok := args["name"].(string); ok {
		base.Name = v
	}
	if v, ok := args["cost"].(float64); ok {
		base.Cost = v
	}
	if v, ok := args["price"].(float64); ok {
		base.Price = v
	}
	if v, ok := args["value"].(float64); ok {
		base.Value = v
	}
	return base
}

// failure turns a catalog or form error into an error result. Field errors
// are returned as structured JSON so the client can show them per field.
func failure(err error) (*mcplib.CallToolResult, error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		result, jerr := jsonResult(validationView{Valid: false, Errors: verr.Errors})
		if jerr != nil {
			return nil, jerr
		}
		result.IsError = true
		return result, nil
	}
	return errorResult(err.Error()), nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
