package cart

import (
	"errors"
	"testing"

	"foodflex/internal/domain"
)

var (
	butterChicken = domain.MenuItem{ID: "MC001", Name: "Butter Chicken", Category: domain.CategoryMainCourse, Price: 349, Available: true, Calories: 450}
	mangoLassi    = domain.MenuItem{ID: "BV001", Name: "Mango Lassi", Category: domain.CategoryBeverage, Price: 79, Available: true, Calories: 200}
	gulabJamun    = domain.MenuItem{ID: "DS001", Name: "Gulab Jamun", Category: domain.CategoryDessert, Price: 99, Available: true, Calories: 250}
)

func TestAddAndTotals(t *testing.T) {
	c := New()
	if !c.Empty() {
		t.Fatal("new cart is not empty")
	}
	if err := c.Add(butterChicken); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add(mangoLassi); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := c.TotalPrice(); got != 428 {
		t.Errorf("TotalPrice() = %v, want 428", got)
	}
	if got := c.TotalCalories(); got != 650 {
		t.Errorf("TotalCalories() = %v, want 650", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestAddUnavailableLeavesCartUnchanged(t *testing.T) {
	c := New()
	if err := c.Add(butterChicken); err != nil {
		t.Fatalf("Add: %v", err)
	}
	before := c.Items()

	unavailable := mangoLassi
	unavailable.Available = false
	err := c.Add(unavailable)
	if !errors.Is(err, domain.ErrItemUnavailable) {
		t.Fatalf("Add unavailable = %v, want ErrItemUnavailable", err)
	}

	after := c.Items()
	if len(after) != len(before) {
		t.Fatalf("cart length changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i].ID != before[i].ID {
			t.Errorf("cart contents changed at %d: %s -> %s", i, before[i].ID, after[i].ID)
		}
	}
}

func TestRemove(t *testing.T) {
	c := New()
	_ = c.Add(butterChicken)
	_ = c.Add(mangoLassi)

	if !c.Remove("MC001") {
		t.Fatal("Remove existing item reported false")
	}
	if c.Remove("MC001") {
		t.Fatal("Remove absent item reported true")
	}
	if c.Len() != 1 || c.Items()[0].ID != "BV001" {
		t.Errorf("unexpected cart after remove: %+v", c.Items())
	}
}

func TestClear(t *testing.T) {
	c := New()
	_ = c.Add(butterChicken)
	c.Clear()
	if !c.Empty() || c.TotalPrice() != 0 {
		t.Error("cart not empty after Clear")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	_ = c.Add(butterChicken)
	items := c.Items()
	items[0].Price = 1
	if c.TotalPrice() != 349 {
		t.Error("mutating the returned slice changed the cart")
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.MenuItem
		want  string
	}{
		{"main course wins", []domain.MenuItem{gulabJamun, butterChicken}, "Try our Masala Lemonade with your meal!"},
		{"dessert", []domain.MenuItem{gulabJamun}, "How about a hot Masala Chai to go with your sweets?"},
		{"fallback", []domain.MenuItem{mangoLassi}, "Our Butter Chicken is today's special!"},
		{"empty cart", nil, "Our Butter Chicken is today's special!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			for _, it := range tc.items {
				if err := c.Add(it); err != nil {
					t.Fatalf("Add: %v", err)
				}
			}
			if got := c.Recommend(); got != tc.want {
				t.Errorf("Recommend() = %q, want %q", got, tc.want)
			}
		})
	}
}
