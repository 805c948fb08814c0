package services_test

import (
	"errors"
	"testing"

	"antlogistics/internal/core/domain"
	"antlogistics/internal/core/services"
)

// ── Tests ────────────────────────────────────────────────────────────────

func TestCommodityCreateNormalizesSku(t *testing.T) {
	_, commoditySvc, _, _, _, ctx := setupServices(t)

	created, err := commoditySvc.Create(ctx, &services.CreateCommodityInput{
		Sku:           "  WIDGET-1  ",
		Name:          "Widget",
		UnitOfMeasure: "pcs",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Sku != "widget-1" {
		t.Errorf("Expected sku 'widget-1', got %q", created.Sku)
	}
	if created.ControlParameters != "{}" {
		t.Errorf("Expected control parameters to default to '{}', got %q", created.ControlParameters)
	}
	if !created.IsActive {
		t.Error("Expected new commodity to be active")
	}

	fetched, err := commoditySvc.GetBySku(ctx, "Widget-1")
	if err != nil {
		t.Fatalf("GetBySku failed: %v", err)
	}
	if fetched.ID != created.ID {
		t.Errorf("Expected same commodity, got %s vs %s", fetched.ID, created.ID)
	}
}

func TestCommodityCreateRejectsDuplicateSkuAnyCasing(t *testing.T) {
	_, commoditySvc, _, _, _, ctx := setupServices(t)

	seedCommodity(t, commoditySvc, ctx, "widget-1")

	_, err := commoditySvc.Create(ctx, &services.CreateCommodityInput{
		Sku:           "WIDGET-1",
		Name:          "Other widget",
		UnitOfMeasure: "pcs",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Expected conflict error, got %v", err)
	}
}

func TestCommodityCreateValidation(t *testing.T) {
	_, commoditySvc, _, _, _, ctx := setupServices(t)

	cases := []struct {
		name  string
		input services.CreateCommodityInput
	}{
		{"missing sku", services.CreateCommodityInput{Name: "Widget", UnitOfMeasure: "pcs"}},
		{"missing name", services.CreateCommodityInput{Sku: "widget-1", UnitOfMeasure: "pcs"}},
		{"missing uom", services.CreateCommodityInput{Sku: "widget-1", Name: "Widget"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.input
			_, err := commoditySvc.Create(ctx, &input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
}

func TestCommodityDeactivateKeepsSkuOccupied(t *testing.T) {
	_, commoditySvc, _, _, _, ctx := setupServices(t)

	commodity := seedCommodity(t, commoditySvc, ctx, "widget-old")
	if _, err := commoditySvc.Deactivate(ctx, commodity.ID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	// The SKU is never recycled, even after deactivation
	_, err := commoditySvc.Create(ctx, &services.CreateCommodityInput{
		Sku:           "widget-old",
		Name:          "Replacement widget",
		UnitOfMeasure: "pcs",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Expected conflict on deactivated sku, got %v", err)
	}
}

func TestCommodityListFiltersInactive(t *testing.T) {
	_, commoditySvc, _, _, _, ctx := setupServices(t)

	seedCommodity(t, commoditySvc, ctx, "widget-a")
	closed := seedCommodity(t, commoditySvc, ctx, "widget-b")
	if _, err := commoditySvc.Deactivate(ctx, closed.ID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	visible, err := commoditySvc.List(ctx, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("Expected 1 active commodity, got %d", len(visible))
	}

	all, err := commoditySvc.List(ctx, true)
	if err != nil {
		t.Fatalf("List with inactive failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 commodities including inactive, got %d", len(all))
	}
}
