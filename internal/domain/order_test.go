package domain

import (
	"sort"
	"sync"
	"testing"
)

func testRestaurant(fee float64) *Restaurant {
	return &Restaurant{ID: "R001", Name: "Spice Trail", Cuisine: "Indian", DeliveryFee: fee}
}

func TestOrderIDsStrictlyIncreasing(t *testing.T) {
	items := []MenuItem{{ID: "MC001", Name: "Butter Chicken", Price: 349, Available: true}}
	r := testRestaurant(49)

	prev := NewOrder(items, r).ID
	for i := 0; i < 10; i++ {
		o := NewOrder(items, r)
		if o.ID != prev+1 {
			t.Fatalf("expected id %d, got %d", prev+1, o.ID)
		}
		prev = o.ID
	}
}

func TestOrderIDsUniqueUnderConcurrency(t *testing.T) {
	items := []MenuItem{{ID: "MC001", Name: "Butter Chicken", Price: 349, Available: true}}
	r := testRestaurant(49)

	const n = 100
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = NewOrder(items, r).ID
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := 1; i < n; i++ {
		if ids[i] == ids[i-1] {
			t.Fatalf("duplicate order id %d", ids[i])
		}
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name  string
		items []MenuItem
		fee   float64
		want  float64
	}{
		{
			name: "butter chicken and mango lassi",
			items: []MenuItem{
				{Name: "Butter Chicken", Price: 349},
				{Name: "Mango Lassi", Price: 79},
			},
			fee:  49,
			want: 477,
		},
		{
			name:  "zero delivery fee",
			items: []MenuItem{{Name: "Samosa", Price: 49}},
			fee:   0,
			want:  49,
		},
		{
			name:  "single item with fee",
			items: []MenuItem{{Name: "Espresso", Price: 69}},
			fee:   59,
			want:  128,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := NewOrder(tc.items, testRestaurant(tc.fee))
			if got := o.TotalPrice(); got != tc.want {
				t.Errorf("TotalPrice() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrderCopiesItems(t *testing.T) {
	items := []MenuItem{{ID: "MC001", Name: "Butter Chicken", Price: 349}}
	o := NewOrder(items, testRestaurant(49))

	items[0].Price = 1
	if got := o.TotalPrice(); got != 349+49 {
		t.Errorf("mutating the source slice changed the order: total = %v", got)
	}
}

func TestStatusMonotonic(t *testing.T) {
	o := NewOrder([]MenuItem{{Name: "Samosa", Price: 49}}, testRestaurant(49))

	if o.Status() != StatusPreparing {
		t.Fatalf("new order status = %v, want preparing", o.Status())
	}
	if !o.Advance(StatusCooking) {
		t.Fatal("advance to cooking refused")
	}
	if o.Advance(StatusPreparing) {
		t.Fatal("regression to preparing accepted")
	}
	if o.Advance(StatusCooking) {
		t.Fatal("same-status advance accepted")
	}
	if !o.Advance(StatusDelivered) {
		t.Fatal("advance to delivered refused")
	}
	if o.Status() != StatusDelivered {
		t.Fatalf("status = %v, want delivered", o.Status())
	}
}

func TestClaimOnce(t *testing.T) {
	o := NewOrder([]MenuItem{{Name: "Samosa", Price: 49}}, testRestaurant(49))
	if !o.Claim() {
		t.Fatal("first claim refused")
	}
	if o.Claim() {
		t.Fatal("second claim accepted")
	}
}

func TestStatusString(t *testing.T) {
	want := map[OrderStatus]string{
		StatusPreparing: "preparing",
		StatusCooking:   "cooking",
		StatusPackaging: "packaging",
		StatusReady:     "ready",
		StatusDelivered: "delivered",
	}
	for s, str := range want {
		if s.String() != str {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), str)
		}
	}
}
