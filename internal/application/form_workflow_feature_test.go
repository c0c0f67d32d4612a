package application_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/slot"
	"github.com/abdidvp/prodcat/internal/adapters/outbound/store"
	"github.com/abdidvp/prodcat/internal/application"
	"github.com/abdidvp/prodcat/internal/domain"
)

type formTestContext struct {
	mem       *slot.MemorySlot
	catalog   *application.CatalogService
	form      *application.FormController
	snapshot  []byte
	commitErr error
}

func (c *formTestContext) aFreshCatalog() error {
	ctx := context.Background()
	c.mem = slot.NewMemory()
	svc, err := application.OpenCatalog(ctx, store.New(c.mem, domain.DefaultSlotKey), noLatency())
	if err != nil {
		return err
	}
	c.catalog = svc
	c.form = application.NewFormController(svc)
	c.commitErr = nil
	c.snapshot, err = c.mem.Read(ctx, domain.DefaultSlotKey)
	return err
}

func (c *formTestContext) iStartCreatingAProduct() error {
	c.form.StartCreate()
	return nil
}

func (c *formTestContext) iStartEditingProduct(code string) error {
	ctx := context.Background()
	p, err := c.catalog.Get(ctx, code).Wait(ctx)
	if err != nil {
		return err
	}
	c.form.StartEdit(p)
	return nil
}

func (c *formTestContext) iFillTheDraft(code, name string, cost, price, value float64) error {
	return c.form.SetDraft(domain.Product{Code: code, Name: name, Cost: cost, Price: price, Value: value})
}

func (c *formTestContext) iRenameTheDraftTo(name string) error {
	draft := c.form.Draft()
	draft.Name = name
	return c.form.SetDraft(draft)
}

func (c *formTestContext) iCommitTheForm() error {
	_, c.commitErr = c.form.Commit(context.Background())
	return nil
}

func (c *formTestContext) iCancelTheForm() error {
	c.form.Cancel()
	return nil
}

func (c *formTestContext) iAddAProductWithoutACodeNamed(name string) error {
	ctx := context.Background()
	_, err := c.catalog.Add(ctx, domain.Product{Name: name, Cost: 10, Price: 20, Value: 5}).Wait(ctx)
	return err
}

func (c *formTestContext) iDeleteProduct(code string) error {
	ctx := context.Background()
	_, err := c.catalog.Delete(ctx, code).Wait(ctx)
	return err
}

func (c *formTestContext) theFormIs(state string) error {
	if got := c.form.State().String(); got != state {
		return fmt.Errorf("expected form state %q, got %q", state, got)
	}
	return nil
}

func (c *formTestContext) theCommitIsRejected() error {
	var verr *domain.ValidationError
	if !errors.As(c.commitErr, &verr) {
		return fmt.Errorf("expected a validation error, got %v", c.commitErr)
	}
	return nil
}

func (c *formTestContext) theCommitFailsWith(substring string) error {
	if c.commitErr == nil {
		return fmt.Errorf("expected commit to fail")
	}
	if !strings.Contains(c.commitErr.Error(), substring) {
		return fmt.Errorf("expected error containing %q, got %q", substring, c.commitErr.Error())
	}
	return nil
}

func (c *formTestContext) theFieldFailsWith(field, rule string) error {
	if !c.form.Errors().Has(field, domain.Rule(rule)) {
		return fmt.Errorf("expected %s to fail with %s, got %v", field, rule, c.form.Errors())
	}
	return nil
}

func (c *formTestContext) onlyTheFieldFailsWith(field, rule string) error {
	errs := c.form.Errors()
	if len(errs) != 1 {
		return fmt.Errorf("expected exactly one field error, got %v", errs.Fields())
	}
	return c.theFieldFailsWith(field, rule)
}

func (c *formTestContext) theCatalogListsCodes(expected string) error {
	ctx := context.Background()
	products, err := c.catalog.List(ctx).Wait(ctx)
	if err != nil {
		return err
	}
	if got := strings.Join(codes(products), ","); got != expected {
		return fmt.Errorf("expected codes %q, got %q", expected, got)
	}
	return nil
}

func (c *formTestContext) productInTheCatalogIsNamed(position int, name string) error {
	ctx := context.Background()
	products, err := c.catalog.List(ctx).Wait(ctx)
	if err != nil {
		return err
	}
	if position < 1 || position > len(products) {
		return fmt.Errorf("no product at position %d", position)
	}
	if got := products[position-1].Name; got != name {
		return fmt.Errorf("expected product %d to be named %q, got %q", position, name, got)
	}
	return nil
}

func (c *formTestContext) theStoredCatalogIsUnchanged() error {
	current, err := c.mem.Read(context.Background(), domain.DefaultSlotKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(current, c.snapshot) {
		return fmt.Errorf("stored catalog changed:\nbefore %s\nafter  %s", c.snapshot, current)
	}
	return nil
}

func InitializeFormScenario(ctx *godog.ScenarioContext) {
	tc := &formTestContext{}

	// Given steps
	ctx.Step(`^a fresh catalog$`, tc.aFreshCatalog)

	// When steps
	ctx.Step(`^I start creating a product$`, tc.iStartCreatingAProduct)
	ctx.Step(`^I start editing product "([^"]*)"$`, tc.iStartEditingProduct)
	ctx.Step(`^I fill the draft with code "([^"]*)", name "([^"]*)", cost (-?\d+(?:\.\d+)?), price (-?\d+(?:\.\d+)?) and value (-?\d+(?:\.\d+)?)$`, tc.iFillTheDraft)
	ctx.Step(`^I rename the draft to "([^"]*)"$`, tc.iRenameTheDraftTo)
	ctx.Step(`^I commit the form$`, tc.iCommitTheForm)
	ctx.Step(`^I cancel the form$`, tc.iCancelTheForm)
	ctx.Step(`^I add a product without a code named "([^"]*)"$`, tc.iAddAProductWithoutACodeNamed)
	ctx.Step(`^I delete product "([^"]*)"$`, tc.iDeleteProduct)

	// Then steps
	ctx.Step(`^the form is "([^"]*)"$`, tc.theFormIs)
	ctx.Step(`^the commit is rejected$`, tc.theCommitIsRejected)
	ctx.Step(`^the commit fails with "([^"]*)"$`, tc.theCommitFailsWith)
	ctx.Step(`^the field "([^"]*)" fails with "([^"]*)"$`, tc.theFieldFailsWith)
	ctx.Step(`^only the field "([^"]*)" fails with "([^"]*)"$`, tc.onlyTheFieldFailsWith)
	ctx.Step(`^the catalog lists codes "([^"]*)"$`, tc.theCatalogListsCodes)
	ctx.Step(`^product (\d+) in the catalog is named "([^"]*)"$`, tc.productInTheCatalogIsNamed)
	ctx.Step(`^the stored catalog is unchanged$`, tc.theStoredCatalogIsUnchanged)
}

func TestFormWorkflowFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeFormScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
