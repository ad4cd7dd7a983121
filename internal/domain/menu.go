package domain

// Category classifies a menu entry. The four values are a closed set; anything
// else on the wire is rejected at the catalog boundary.
type Category string

const (
	CategoryStarter    Category = "starter"
	CategoryMainCourse Category = "main_course"
	CategoryDessert    Category = "dessert"
	CategoryBeverage   Category = "beverage"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryStarter, CategoryMainCourse, CategoryDessert, CategoryBeverage:
		return Category(s), true
	}
	return "", false
}

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	PrepMinutes int      `json:"prep_minutes"`
	Available   bool     `json:"available"`
	Description string   `json:"description"`
	Calories    int      `json:"calories"`
}

type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	DeliveryFee float64 `json:"delivery_fee"`
	Rating      float64 `json:"rating"`

	Menu []MenuItem `json:"-"`
}
