// Package catalog is the read-only source of restaurants and their menus.
// The data is fixed at construction; nothing here mutates it afterwards.
package catalog

import (
	"math/rand"
	"sort"

	"foodflex/internal/domain"
)

// bestSellerCount caps the best-sellers listing.
const bestSellerCount = 5

type Catalog struct {
	restaurants []*domain.Restaurant
	byID        map[string]*domain.Restaurant
}

// New builds the catalog with the nine stock restaurants. Ratings are drawn
// once per process, in [4.0, 5.0).
func New() *Catalog {
	c := &Catalog{byID: make(map[string]*domain.Restaurant)}
	c.add("R001", "Spice Trail", "Indian", 49, indianMenu())
	c.add("R002", "Pasta Paradise", "Italian", 59, italianMenu())
	c.add("R003", "Tokyo Grill", "Japanese", 69, japaneseMenu())
	c.add("R004", "Burger Barn", "American", 39, americanMenu())
	c.add("R005", "Fiesta Mexicana", "Mexican", 49, mexicanMenu())
	c.add("R006", "Dragon Palace", "Chinese", 59, chineseMenu())
	c.add("R007", "Olive Grove", "Mediterranean", 49, mediterraneanMenu())
	c.add("R008", "Smokehouse", "BBQ", 59, bbqMenu())
	c.add("R009", "Le Petit Bistro", "French", 79, frenchMenu())
	return c
}

func (c *Catalog) add(id, name, cuisine string, fee float64, menu []domain.MenuItem) {
	r := &domain.Restaurant{
		ID:          id,
		Name:        name,
		Cuisine:     cuisine,
		DeliveryFee: fee,
		Rating:      4.0 + rand.Float64(),
		Menu:        menu,
	}
	c.restaurants = append(c.restaurants, r)
	c.byID[id] = r
}

// Restaurants returns the restaurants in their fixed listing order.
func (c *Catalog) Restaurants() []*domain.Restaurant {
	out := make([]*domain.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

func (c *Catalog) Restaurant(id string) (*domain.Restaurant, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Item looks up one menu entry of one restaurant.
func (c *Catalog) Item(restaurantID, itemID string) (domain.MenuItem, bool) {
	r, ok := c.byID[restaurantID]
	if !ok {
		return domain.MenuItem{}, false
	}
	for _, it := range r.Menu {
		if it.ID == itemID {
			return it, true
		}
	}
	return domain.MenuItem{}, false
}

// ByCategory filters a restaurant's menu, preserving menu order.
func ByCategory(r *domain.Restaurant, cat domain.Category) []domain.MenuItem {
	var out []domain.MenuItem
	for _, it := range r.Menu {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

// BestSellers returns the five highest-priced entries of the menu. Price
// stands in for popularity; there is no sales data to rank by.
func BestSellers(r *domain.Restaurant) []domain.MenuItem {
	sorted := make([]domain.MenuItem, len(r.Menu))
	copy(sorted, r.Menu)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	if len(sorted) > bestSellerCount {
		sorted = sorted[:bestSellerCount]
	}
	return sorted
}
