package catalog

import (
	"testing"

	"github.com/stylecart/storefront/pkg/enums"
)

func TestNewRejectsBadProducts(t *testing.T) {
	t.Parallel()

	if _, err := New([]Product{{ID: 0, Name: "x"}}); err == nil {
		t.Fatal("expected non-positive id to be rejected")
	}
	if _, err := New([]Product{{ID: 1, Price: -5}}); err == nil {
		t.Fatal("expected negative price to be rejected")
	}
	if _, err := New([]Product{{ID: 1}, {ID: 1}}); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	c := Default()
	p, ok := c.FindByID(3)
	if !ok {
		t.Fatal("expected product 3 to exist")
	}
	if p.Name != "Running Shoes" || p.Price != 2499 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, ok := c.FindByID(999); ok {
		t.Fatal("expected unknown id to be absent")
	}
}

func TestListIsACopy(t *testing.T) {
	t.Parallel()

	c := Default()
	list := c.List()
	list[0].Name = "mutated"

	again := c.List()
	if again[0].Name == "mutated" {
		t.Fatal("List must not expose internal state")
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	c := Default()

	byName := c.Search("shirt")
	if len(byName) != 2 {
		t.Fatalf("expected 2 shirt matches, got %d", len(byName))
	}

	byCategory := c.Search("women")
	for _, p := range byCategory {
		if p.Category != enums.CategoryWomen {
			t.Fatalf("expected only women category, got %s", p.Category)
		}
	}
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 women matches, got %d", len(byCategory))
	}

	byBadge := c.Search("sale")
	if len(byBadge) != 2 {
		t.Fatalf("expected 2 sale matches, got %d", len(byBadge))
	}

	if got := c.Search(""); len(got) != c.Len() {
		t.Fatalf("empty term should return everything, got %d", len(got))
	}

	if got := c.Search("zzzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
