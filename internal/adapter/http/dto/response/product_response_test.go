package response

import (
	"testing"

	"shopsphere/internal/domain/entities"
)

func TestFromProductPage(t *testing.T) {
	products := []entities.Product{{ID: "p1", Name: "Runner"}}

	res := FromProductPage(products, 13, 2, 6)
	if !res.Success || res.Total != 13 || res.Page != 2 {
		t.Fatalf("unexpected page envelope: %+v", res)
	}
	if res.Pages != 3 {
		t.Fatalf("expected 3 pages for 13 items at 6 per page, got %d", res.Pages)
	}
	if len(res.Products) != 1 || res.Products[0].ID != "p1" {
		t.Fatalf("unexpected products: %+v", res.Products)
	}
}

func TestFromProductPage_Empty(t *testing.T) {
	res := FromProductPage(nil, 0, 1, 12)
	if res.Pages != 0 || res.Products == nil {
		t.Fatalf("expected zero pages and empty slice, got %+v", res)
	}
}
