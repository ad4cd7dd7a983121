package catalog

import (
	"testing"

	"foodflex/internal/domain"
)

func TestNineRestaurants(t *testing.T) {
	c := New()
	rs := c.Restaurants()
	if len(rs) != 9 {
		t.Fatalf("restaurants = %d, want 9", len(rs))
	}

	first := rs[0]
	if first.ID != "R001" || first.Name != "Spice Trail" || first.Cuisine != "Indian" || first.DeliveryFee != 49 {
		t.Errorf("unexpected first restaurant: %+v", first)
	}
	last := rs[8]
	if last.Name != "Le Petit Bistro" || last.DeliveryFee != 79 {
		t.Errorf("unexpected last restaurant: %+v", last)
	}

	for _, r := range rs {
		if len(r.Menu) == 0 {
			t.Errorf("%s has an empty menu", r.Name)
		}
		if r.Rating < 4.0 || r.Rating >= 5.0 {
			t.Errorf("%s rating %v outside [4.0, 5.0)", r.Name, r.Rating)
		}
	}
}

func TestRestaurantLookup(t *testing.T) {
	c := New()
	if _, ok := c.Restaurant("R003"); !ok {
		t.Error("R003 not found")
	}
	if _, ok := c.Restaurant("R999"); ok {
		t.Error("R999 unexpectedly found")
	}
}

func TestItemLookup(t *testing.T) {
	c := New()
	it, ok := c.Item("R001", "MC001")
	if !ok {
		t.Fatal("R001/MC001 not found")
	}
	if it.Name != "Butter Chicken" || it.Price != 349 || it.Category != domain.CategoryMainCourse {
		t.Errorf("unexpected item: %+v", it)
	}
	if !it.Available {
		t.Error("Butter Chicken is unavailable")
	}
	if _, ok := c.Item("R001", "ZZ999"); ok {
		t.Error("bogus item id found")
	}
}

func TestByCategory(t *testing.T) {
	c := New()
	r, _ := c.Restaurant("R001")

	counts := map[domain.Category]int{
		domain.CategoryStarter:    10,
		domain.CategoryMainCourse: 20,
		domain.CategoryDessert:    10,
		domain.CategoryBeverage:   12,
	}
	total := 0
	for cat, want := range counts {
		got := len(ByCategory(r, cat))
		if got != want {
			t.Errorf("%s count = %d, want %d", cat, got, want)
		}
		total += got
	}
	if total != len(r.Menu) {
		t.Errorf("categories cover %d of %d items", total, len(r.Menu))
	}
}

func TestBestSellersAreFivePriciestDescending(t *testing.T) {
	c := New()
	r, _ := c.Restaurant("R001")

	best := BestSellers(r)
	if len(best) != 5 {
		t.Fatalf("best sellers = %d, want 5", len(best))
	}
	for i := 1; i < len(best); i++ {
		if best[i].Price > best[i-1].Price {
			t.Errorf("best sellers not sorted by price: %v before %v", best[i-1].Price, best[i].Price)
		}
	}
	// No menu item is priced above the top pick.
	for _, it := range r.Menu {
		if it.Price > best[0].Price {
			t.Errorf("%s (%v) outranks top best seller %s (%v)", it.Name, it.Price, best[0].Name, best[0].Price)
		}
	}
}

func TestBestSellersShortMenu(t *testing.T) {
	r := &domain.Restaurant{Menu: []domain.MenuItem{
		{ID: "A", Price: 10}, {ID: "B", Price: 30}, {ID: "C", Price: 20},
	}}
	best := BestSellers(r)
	if len(best) != 3 {
		t.Fatalf("best sellers = %d, want 3", len(best))
	}
	if best[0].ID != "B" || best[1].ID != "C" || best[2].ID != "A" {
		t.Errorf("unexpected ordering: %+v", best)
	}
}

func TestCatalogDataImmutableViaRestaurants(t *testing.T) {
	c := New()
	rs := c.Restaurants()
	rs[0] = nil
	if got := c.Restaurants()[0]; got == nil || got.ID != "R001" {
		t.Error("mutating the returned slice changed the catalog")
	}
}
