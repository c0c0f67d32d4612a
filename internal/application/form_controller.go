package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abdidvp/prodcat/internal/domain"
)

// ProductWriter is the part of the catalog a form submits drafts to.
type ProductWriter interface {
	Add(ctx context.Context, p domain.Product) *Pending[domain.Product]
	Update(ctx context.Context, p domain.Product) *Pending[domain.Product]
}

// FormController tracks whether a client is creating or editing a product and
// holds the draft until it is committed or cancelled.
//
// Idle --StartCreate--> Creating --Commit--> Idle
// Idle --StartEdit--> Editing --Commit--> Idle
// Creating/Editing --Cancel--> Idle
//
// A commit with an invalid draft keeps the state and records the errors.
// A FormController is not safe for concurrent use; use one per client session.
type FormController struct {
	catalog  ProductWriter
	state    domain.FormState
	draft    domain.Product
	original string
	errs     domain.ErrorSet
	session  string
	logger   *zap.Logger
}

// FormOption configures a FormController.
type FormOption func(*FormController)

// WithFormLogger sets the logger. Every line carries the form's session ID.
func WithFormLogger(logger *zap.Logger) FormOption {
	return func(c *FormController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewFormController returns an idle form that commits to catalog.
func NewFormController(catalog ProductWriter, opts ...FormOption) *FormController {
	c := &FormController{
		catalog: catalog,
		state:   domain.FormIdle,
		session: uuid.NewString(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("session", c.session))
	return c
}

func (c *FormController) State() domain.FormState { return c.state }

// Session identifies this form in logs.
func (c *FormController) Session() string { return c.session }

// Draft returns a copy of the draft. It is the zero Product while idle.
func (c *FormController) Draft() domain.Product { return c.draft }

// EditingCode returns the code of the product being edited, or "".
func (c *FormController) EditingCode() string { return c.original }

// Errors returns the field errors of the last rejected commit.
func (c *FormController) Errors() domain.ErrorSet {
	out := make(domain.ErrorSet, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

// StartCreate begins a new product from the blank template.
func (c *FormController) StartCreate() {
	c.state = domain.FormCreating
	c.draft = domain.BlankProduct()
	c.original = ""
	c.errs = nil
	c.logger.Debug("form started", zap.Stringer("state", c.state))
}

// StartEdit begins editing a copy of p. Changes to the draft never reach the
// catalog until Commit.
func (c *FormController) StartEdit(p domain.Product) {
	c.state = domain.FormEditing
	c.draft = p
	c.original = p.Code
	c.errs = nil
	c.logger.Debug("form started", zap.Stringer("state", c.state), zap.String("code", p.Code))
}

// SetDraft replaces the draft. While editing, the code cannot change.
func (c *FormController) SetDraft(p domain.Product) error {
	switch c.state {
	case domain.FormIdle:
		return domain.ErrNoDraft
	case domain.FormEditing:
		if p.Code != c.original {
			return fmt.Errorf("%w: %q to %q", domain.ErrCodeChanged, c.original, p.Code)
		}
	}
	c.draft = p
	return nil
}

// Validate checks the current draft without committing it.
func (c *FormController) Validate() domain.ErrorSet {
	return domain.Validate(c.draft)
}

// Commit validates the draft and submits it: Add while creating, Update while
// editing. On success the form returns to idle. On any failure it keeps its
// state and draft so the caller can correct and retry.
func (c *FormController) Commit(ctx context.Context) (domain.Product, error) {
	if c.state == domain.FormIdle {
		return domain.Product{}, domain.ErrNoDraft
	}

	if errs := domain.Validate(c.draft); !errs.Valid() {
		c.errs = errs
		c.logger.Debug("draft rejected", zap.Stringer("state", c.state), zap.String("errors", errs.String()))
		return domain.Product{}, &domain.ValidationError{Errors: errs}
	}
	c.errs = nil

	var op *Pending[domain.Product]
	if c.state == domain.FormCreating {
		op = c.catalog.Add(ctx, c.draft)
	} else {
		op = c.catalog.Update(ctx, c.draft)
	}

	// The change is already applied; wait out the latency even if ctx ends so
	// the form never reports a saved draft as failed.
	saved, err := op.Wait(context.WithoutCancel(ctx))
	if err != nil {
		c.logger.Warn("commit failed", zap.Stringer("state", c.state), zap.String("code", c.draft.Code), zap.Error(err))
		return domain.Product{}, fmt.Errorf("committing %s draft: %w", c.state, err)
	}

	c.logger.Info("draft committed", zap.Stringer("state", c.state), zap.String("code", saved.Code))
	c.reset()
	return saved, nil
}

// Cancel discards the draft and returns to idle without touching the catalog.
func (c *FormController) Cancel() {
	if c.state != domain.FormIdle {
		c.logger.Debug("form cancelled", zap.Stringer("state", c.state))
	}
	c.reset()
}

func (c *FormController) reset() {
	c.state = domain.FormIdle
	c.draft = domain.Product{}
	c.original = ""
	c.errs = nil
}
