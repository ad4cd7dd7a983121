package catalog

import "foodflex/internal/domain"

func indianMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST001", Name: "Samosa", Category: domain.CategoryStarter, Price: 49, PrepMinutes: 2, Available: true, Description: "Spiced potato filling", Calories: 150},
		{ID: "ST002", Name: "Paneer Tikka", Category: domain.CategoryStarter, Price: 129, PrepMinutes: 3, Available: true, Description: "Grilled cottage cheese", Calories: 180},
		{ID: "ST003", Name: "Chicken 65", Category: domain.CategoryStarter, Price: 149, PrepMinutes: 3, Available: true, Description: "Spicy fried chicken", Calories: 220},
		{ID: "ST004", Name: "Aloo Tikki", Category: domain.CategoryStarter, Price: 79, PrepMinutes: 2, Available: true, Description: "Potato patties", Calories: 120},
		{ID: "ST005", Name: "Vegetable Pakora", Category: domain.CategoryStarter, Price: 89, PrepMinutes: 3, Available: true, Description: "Fried vegetable fritters", Calories: 160},
		{ID: "ST006", Name: "Gobi Manchurian", Category: domain.CategoryStarter, Price: 139, PrepMinutes: 3, Available: true, Description: "Crispy cauliflower", Calories: 200},
		{ID: "ST007", Name: "Fish Amritsari", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 4, Available: true, Description: "Punjabi style fish", Calories: 250},
		{ID: "ST008", Name: "Papdi Chaat", Category: domain.CategoryStarter, Price: 99, PrepMinutes: 2, Available: true, Description: "Street style chaat", Calories: 180},
		{ID: "ST009", Name: "Dahi Puri", Category: domain.CategoryStarter, Price: 119, PrepMinutes: 3, Available: true, Description: "Crispy puris with yogurt", Calories: 200},
		{ID: "ST010", Name: "Bhel Puri", Category: domain.CategoryStarter, Price: 89, PrepMinutes: 2, Available: true, Description: "Puffed rice snack", Calories: 150},
		{ID: "MC001", Name: "Butter Chicken", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Creamy tomato chicken", Calories: 450},
		{ID: "MC002", Name: "Palak Paneer", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Spinach with cottage cheese", Calories: 320},
		{ID: "MC003", Name: "Chana Masala", Category: domain.CategoryMainCourse, Price: 229, PrepMinutes: 4, Available: true, Description: "Spiced chickpeas", Calories: 280},
		{ID: "MC004", Name: "Rogan Josh", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 6, Available: true, Description: "Kashmiri lamb curry", Calories: 500},
		{ID: "MC005", Name: "Dal Tadka", Category: domain.CategoryMainCourse, Price: 199, PrepMinutes: 3, Available: true, Description: "Tempered lentils", Calories: 250},
		{ID: "MC006", Name: "Vegetable Biryani", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 5, Available: true, Description: "Fragrant rice with veggies", Calories: 380},
		{ID: "MC007", Name: "Chicken Tikka Masala", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "Grilled chicken in gravy", Calories: 420},
		{ID: "MC008", Name: "Malai Kofta", Category: domain.CategoryMainCourse, Price: 259, PrepMinutes: 4, Available: true, Description: "Vegetable balls in cream sauce", Calories: 350},
		{ID: "MC009", Name: "Fish Curry", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 5, Available: true, Description: "South Indian style fish", Calories: 400},
		{ID: "MC010", Name: "Prawn Masala", Category: domain.CategoryMainCourse, Price: 429, PrepMinutes: 6, Available: true, Description: "Spicy prawn curry", Calories: 450},
		{ID: "MC011", Name: "Hyderabadi Biryani", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 6, Available: true, Description: "Fragrant rice with meat", Calories: 480},
		{ID: "MC012", Name: "Rajma Chawal", Category: domain.CategoryMainCourse, Price: 229, PrepMinutes: 4, Available: true, Description: "Kidney beans with rice", Calories: 350},
		{ID: "MC013", Name: "Mutton Korma", Category: domain.CategoryMainCourse, Price: 449, PrepMinutes: 7, Available: true, Description: "Rich mutton curry", Calories: 520},
		{ID: "MC014", Name: "Dosa", Category: domain.CategoryMainCourse, Price: 159, PrepMinutes: 3, Available: true, Description: "South Indian crepe", Calories: 280},
		{ID: "MC015", Name: "Aloo Paratha", Category: domain.CategoryMainCourse, Price: 129, PrepMinutes: 3, Available: true, Description: "Stuffed flatbread", Calories: 320},
		{ID: "MC016", Name: "Kadai Paneer", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 4, Available: true, Description: "Cottage cheese in spicy gravy", Calories: 380},
		{ID: "MC017", Name: "Baingan Bharta", Category: domain.CategoryMainCourse, Price: 239, PrepMinutes: 4, Available: true, Description: "Smoked eggplant curry", Calories: 300},
		{ID: "MC018", Name: "Sambar Rice", Category: domain.CategoryMainCourse, Price: 189, PrepMinutes: 3, Available: true, Description: "Lentil stew with rice", Calories: 350},
		{ID: "MC019", Name: "Pav Bhaji", Category: domain.CategoryMainCourse, Price: 199, PrepMinutes: 4, Available: true, Description: "Spiced vegetable mash with bread", Calories: 400},
		{ID: "MC020", Name: "Keema Matar", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Minced meat with peas", Calories: 450},
		{ID: "DS001", Name: "Gulab Jamun", Category: domain.CategoryDessert, Price: 99, PrepMinutes: 2, Available: true, Description: "Sweet milk balls", Calories: 250},
		{ID: "DS002", Name: "Rasmalai", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Cottage cheese in milk", Calories: 220},
		{ID: "DS003", Name: "Kheer", Category: domain.CategoryDessert, Price: 89, PrepMinutes: 3, Available: true, Description: "Rice pudding", Calories: 180},
		{ID: "DS004", Name: "Gajar Halwa", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 4, Available: true, Description: "Carrot pudding", Calories: 210},
		{ID: "DS005", Name: "Jalebi", Category: domain.CategoryDessert, Price: 69, PrepMinutes: 2, Available: true, Description: "Crispy sweet spirals", Calories: 280},
		{ID: "DS006", Name: "Rasgulla", Category: domain.CategoryDessert, Price: 79, PrepMinutes: 2, Available: true, Description: "Spongy cottage cheese balls", Calories: 190},
		{ID: "DS007", Name: "Shrikhand", Category: domain.CategoryDessert, Price: 109, PrepMinutes: 2, Available: true, Description: "Sweet strained yogurt", Calories: 170},
		{ID: "DS008", Name: "Malpua", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 3, Available: true, Description: "Sweet pancake", Calories: 230},
		{ID: "DS009", Name: "Besan Ladoo", Category: domain.CategoryDessert, Price: 89, PrepMinutes: 2, Available: true, Description: "Chickpea flour sweets", Calories: 200},
		{ID: "DS010", Name: "Peda", Category: domain.CategoryDessert, Price: 99, PrepMinutes: 2, Available: true, Description: "Milk-based sweet", Calories: 180},
		{ID: "BV001", Name: "Mango Lassi", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Yogurt mango drink", Calories: 200},
		{ID: "BV002", Name: "Masala Chai", Category: domain.CategoryBeverage, Price: 49, PrepMinutes: 2, Available: true, Description: "Spiced Indian tea", Calories: 80},
		{ID: "BV003", Name: "Badam Milk", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 2, Available: true, Description: "Almond flavored milk", Calories: 180},
		{ID: "BV004", Name: "Nimbu Pani", Category: domain.CategoryBeverage, Price: 39, PrepMinutes: 1, Available: true, Description: "Fresh lime water", Calories: 50},
		{ID: "BV005", Name: "Thandai", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 3, Available: true, Description: "Festive nut milk", Calories: 220},
		{ID: "BV006", Name: "Filter Coffee", Category: domain.CategoryBeverage, Price: 59, PrepMinutes: 2, Available: true, Description: "South Indian coffee", Calories: 60},
		{ID: "BV007", Name: "Rose Milk", Category: domain.CategoryBeverage, Price: 69, PrepMinutes: 1, Available: true, Description: "Rose flavored milk", Calories: 150},
		{ID: "BV008", Name: "Sugarcane Juice", Category: domain.CategoryBeverage, Price: 49, PrepMinutes: 1, Available: true, Description: "Fresh sugarcane", Calories: 120},
		{ID: "BV009", Name: "Aam Panna", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 2, Available: true, Description: "Raw mango drink", Calories: 90},
		{ID: "BV010", Name: "Paan Shots", Category: domain.CategoryBeverage, Price: 129, PrepMinutes: 3, Available: true, Description: "Digestive betel shot", Calories: 40},
		{ID: "BV011", Name: "Cold Coffee", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 2, Available: true, Description: "Iced coffee drink", Calories: 150},
		{ID: "BV012", Name: "Jaljeera", Category: domain.CategoryBeverage, Price: 59, PrepMinutes: 1, Available: true, Description: "Spiced cumin water", Calories: 30},
	}
}

func italianMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST011", Name: "Bruschetta", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 3, Available: true, Description: "Toasted bread with tomatoes", Calories: 180},
		{ID: "ST012", Name: "Caprese Salad", Category: domain.CategoryStarter, Price: 229, PrepMinutes: 2, Available: true, Description: "Tomato mozzarella salad", Calories: 150},
		{ID: "ST013", Name: "Garlic Bread", Category: domain.CategoryStarter, Price: 129, PrepMinutes: 2, Available: true, Description: "Freshly baked with garlic butter", Calories: 220},
		{ID: "ST014", Name: "Arancini", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 4, Available: true, Description: "Fried risotto balls", Calories: 250},
		{ID: "ST015", Name: "Prosciutto e Melone", Category: domain.CategoryStarter, Price: 299, PrepMinutes: 3, Available: true, Description: "Ham with melon", Calories: 180},
		{ID: "ST016", Name: "Antipasto Platter", Category: domain.CategoryStarter, Price: 349, PrepMinutes: 5, Available: true, Description: "Cured meats and cheeses", Calories: 320},
		{ID: "ST017", Name: "Calamari Fritti", Category: domain.CategoryStarter, Price: 279, PrepMinutes: 4, Available: true, Description: "Fried squid", Calories: 230},
		{ID: "ST018", Name: "Mozzarella Sticks", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 3, Available: true, Description: "Fried cheese sticks", Calories: 280},
		{ID: "ST019", Name: "Stuffed Mushrooms", Category: domain.CategoryStarter, Price: 219, PrepMinutes: 4, Available: true, Description: "Baked stuffed mushrooms", Calories: 200},
		{ID: "ST020", Name: "Focaccia Bread", Category: domain.CategoryStarter, Price: 159, PrepMinutes: 3, Available: true, Description: "Italian flatbread", Calories: 250},
		{ID: "MC021", Name: "Spaghetti Carbonara", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 6, Available: true, Description: "Creamy pasta with bacon", Calories: 550},
		{ID: "MC022", Name: "Margherita Pizza", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Classic tomato and cheese", Calories: 480},
		{ID: "MC023", Name: "Lasagna", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 7, Available: true, Description: "Layered pasta dish", Calories: 520},
		{ID: "MC024", Name: "Risotto ai Funghi", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 6, Available: true, Description: "Mushroom risotto", Calories: 420},
		{ID: "MC025", Name: "Chicken Parmigiana", Category: domain.CategoryMainCourse, Price: 429, PrepMinutes: 7, Available: true, Description: "Breaded chicken with cheese", Calories: 580},
		{ID: "MC026", Name: "Fettuccine Alfredo", Category: domain.CategoryMainCourse, Price: 359, PrepMinutes: 5, Available: true, Description: "Creamy pasta", Calories: 490},
		{ID: "MC027", Name: "Osso Buco", Category: domain.CategoryMainCourse, Price: 499, PrepMinutes: 8, Available: true, Description: "Braised veal shanks", Calories: 620},
		{ID: "MC028", Name: "Eggplant Parmigiana", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 5, Available: true, Description: "Baked eggplant with cheese", Calories: 380},
		{ID: "MC029", Name: "Penne Arrabbiata", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Spicy tomato pasta", Calories: 350},
		{ID: "MC030", Name: "Gnocchi Sorrentina", Category: domain.CategoryMainCourse, Price: 319, PrepMinutes: 5, Available: true, Description: "Potato dumplings with tomato", Calories: 400},
		{ID: "MC031", Name: "Veal Marsala", Category: domain.CategoryMainCourse, Price: 459, PrepMinutes: 7, Available: true, Description: "Veal in mushroom wine sauce", Calories: 540},
		{ID: "MC032", Name: "Seafood Linguine", Category: domain.CategoryMainCourse, Price: 479, PrepMinutes: 7, Available: true, Description: "Pasta with mixed seafood", Calories: 520},
		{ID: "MC033", Name: "Pizza Quattro Formaggi", Category: domain.CategoryMainCourse, Price: 389, PrepMinutes: 6, Available: true, Description: "Four cheese pizza", Calories: 500},
		{ID: "MC034", Name: "Ravioli Spinaci", Category: domain.CategoryMainCourse, Price: 339, PrepMinutes: 5, Available: true, Description: "Spinach stuffed pasta", Calories: 380},
		{ID: "MC035", Name: "Saltimbocca", Category: domain.CategoryMainCourse, Price: 439, PrepMinutes: 6, Available: true, Description: "Roman style veal", Calories: 480},
		{ID: "MC036", Name: "Pizza Diavola", Category: domain.CategoryMainCourse, Price: 369, PrepMinutes: 5, Available: true, Description: "Spicy salami pizza", Calories: 450},
		{ID: "MC037", Name: "Spaghetti Vongole", Category: domain.CategoryMainCourse, Price: 419, PrepMinutes: 6, Available: true, Description: "Clam pasta", Calories: 400},
		{ID: "MC038", Name: "Pizza Capricciosa", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 6, Available: true, Description: "Assorted toppings pizza", Calories: 480},
		{ID: "MC039", Name: "Tagliatelle Bolognese", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 6, Available: true, Description: "Meat sauce pasta", Calories: 500},
		{ID: "MC040", Name: "Pizza Prosciutto", Category: domain.CategoryMainCourse, Price: 389, PrepMinutes: 5, Available: true, Description: "Ham and mushroom pizza", Calories: 450},
		{ID: "DS011", Name: "Tiramisu", Category: domain.CategoryDessert, Price: 169, PrepMinutes: 2, Available: true, Description: "Coffee-flavored dessert", Calories: 320},
		{ID: "DS012", Name: "Panna Cotta", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Creamy Italian dessert", Calories: 280},
		{ID: "DS013", Name: "Cannoli", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Crispy pastry tubes", Calories: 220},
		{ID: "DS014", Name: "Gelato", Category: domain.CategoryDessert, Price: 99, PrepMinutes: 1, Available: true, Description: "Italian ice cream", Calories: 180},
		{ID: "DS015", Name: "Affogato", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Ice cream with espresso", Calories: 150},
		{ID: "DS016", Name: "Zabaglione", Category: domain.CategoryDessert, Price: 159, PrepMinutes: 3, Available: true, Description: "Egg custard dessert", Calories: 200},
		{ID: "DS017", Name: "Panettone", Category: domain.CategoryDessert, Price: 179, PrepMinutes: 2, Available: true, Description: "Italian sweet bread", Calories: 300},
		{ID: "DS018", Name: "Sfogliatella", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 2, Available: true, Description: "Layered pastry", Calories: 240},
		{ID: "DS019", Name: "Semifreddo", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Semi-frozen dessert", Calories: 220},
		{ID: "DS020", Name: "Biscotti", Category: domain.CategoryDessert, Price: 89, PrepMinutes: 1, Available: true, Description: "Italian almond cookies", Calories: 120},
		{ID: "BV021", Name: "Red Wine", Category: domain.CategoryBeverage, Price: 299, PrepMinutes: 1, Available: true, Description: "House special", Calories: 120},
		{ID: "BV022", Name: "White Wine", Category: domain.CategoryBeverage, Price: 279, PrepMinutes: 1, Available: true, Description: "Chardonnay", Calories: 110},
		{ID: "BV023", Name: "Limoncello", Category: domain.CategoryBeverage, Price: 199, PrepMinutes: 1, Available: true, Description: "Lemon liqueur", Calories: 80},
		{ID: "BV024", Name: "Espresso", Category: domain.CategoryBeverage, Price: 69, PrepMinutes: 1, Available: true, Description: "Strong Italian coffee", Calories: 5},
		{ID: "BV025", Name: "Cappuccino", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 2, Available: true, Description: "Espresso with milk foam", Calories: 120},
		{ID: "BV026", Name: "Aperol Spritz", Category: domain.CategoryBeverage, Price: 229, PrepMinutes: 2, Available: true, Description: "Popular Italian cocktail", Calories: 150},
		{ID: "BV027", Name: "Negroni", Category: domain.CategoryBeverage, Price: 249, PrepMinutes: 2, Available: true, Description: "Classic Italian cocktail", Calories: 130},
		{ID: "BV028", Name: "San Pellegrino", Category: domain.CategoryBeverage, Price: 59, PrepMinutes: 1, Available: true, Description: "Sparkling water", Calories: 0},
		{ID: "BV029", Name: "Italian Soda", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Fruit flavored soda", Calories: 140},
		{ID: "BV030", Name: "Grappa", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 1, Available: true, Description: "Italian grape brandy", Calories: 90},
		{ID: "BV031", Name: "Americano", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Espresso with hot water", Calories: 10},
		{ID: "BV032", Name: "Macchiato", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Espresso with milk", Calories: 50},
	}
}

func japaneseMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST021", Name: "Edamame", Category: domain.CategoryStarter, Price: 129, PrepMinutes: 2, Available: true, Description: "Steamed soybeans", Calories: 120},
		{ID: "ST022", Name: "Miso Soup", Category: domain.CategoryStarter, Price: 99, PrepMinutes: 2, Available: true, Description: "Traditional Japanese soup", Calories: 70},
		{ID: "ST023", Name: "Agedashi Tofu", Category: domain.CategoryStarter, Price: 159, PrepMinutes: 3, Available: true, Description: "Fried tofu in broth", Calories: 180},
		{ID: "ST024", Name: "Gyoza", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 4, Available: true, Description: "Japanese dumplings", Calories: 200},
		{ID: "ST025", Name: "Takoyaki", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 4, Available: true, Description: "Octopus balls", Calories: 220},
		{ID: "ST026", Name: "Sunomono", Category: domain.CategoryStarter, Price: 139, PrepMinutes: 2, Available: true, Description: "Cucumber salad", Calories: 90},
		{ID: "ST027", Name: "Ebi Tempura", Category: domain.CategoryStarter, Price: 239, PrepMinutes: 4, Available: true, Description: "Fried shrimp", Calories: 250},
		{ID: "ST028", Name: "Yakitori", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 3, Available: true, Description: "Grilled chicken skewers", Calories: 180},
		{ID: "ST029", Name: "Sashimi Appetizer", Category: domain.CategoryStarter, Price: 299, PrepMinutes: 3, Available: true, Description: "Assorted raw fish slices", Calories: 150},
		{ID: "ST030", Name: "Chawanmushi", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 3, Available: true, Description: "Savory egg custard", Calories: 130},
		{ID: "MC041", Name: "California Roll", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 4, Available: true, Description: "Crab avocado roll", Calories: 320},
		{ID: "MC042", Name: "Spicy Tuna Roll", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 4, Available: true, Description: "Tuna with spicy mayo", Calories: 350},
		{ID: "MC043", Name: "Chicken Teriyaki", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "Grilled chicken with sauce", Calories: 380},
		{ID: "MC044", Name: "Beef Yakiniku", Category: domain.CategoryMainCourse, Price: 429, PrepMinutes: 6, Available: true, Description: "Grilled beef", Calories: 450},
		{ID: "MC045", Name: "Tonkatsu", Category: domain.CategoryMainCourse, Price: 359, PrepMinutes: 5, Available: true, Description: "Breaded pork cutlet", Calories: 420},
		{ID: "MC046", Name: "Ramen", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 4, Available: true, Description: "Japanese noodle soup", Calories: 480},
		{ID: "MC047", Name: "Udon", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Thick wheat noodles", Calories: 400},
		{ID: "MC048", Name: "Sashimi Platter", Category: domain.CategoryMainCourse, Price: 499, PrepMinutes: 5, Available: true, Description: "Assorted raw fish", Calories: 350},
		{ID: "MC049", Name: "Unagi Don", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 5, Available: true, Description: "Eel rice bowl", Calories: 450},
		{ID: "MC050", Name: "Okonomiyaki", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 6, Available: true, Description: "Japanese savory pancake", Calories: 380},
		{ID: "MC051", Name: "Sukiyaki", Category: domain.CategoryMainCourse, Price: 459, PrepMinutes: 7, Available: true, Description: "Hot pot with beef", Calories: 520},
		{ID: "MC052", Name: "Tempura Udon", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Noodles with tempura", Calories: 450},
		{ID: "MC053", Name: "Chirashi Bowl", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 5, Available: true, Description: "Scattered sushi bowl", Calories: 400},
		{ID: "MC054", Name: "Katsu Curry", Category: domain.CategoryMainCourse, Price: 359, PrepMinutes: 5, Available: true, Description: "Cutlet with curry", Calories: 480},
		{ID: "MC055", Name: "Yakisoba", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 4, Available: true, Description: "Stir-fried noodles", Calories: 350},
		{ID: "MC056", Name: "Dragon Roll", Category: domain.CategoryMainCourse, Price: 419, PrepMinutes: 5, Available: true, Description: "Eel and cucumber roll", Calories: 380},
		{ID: "MC057", Name: "Rainbow Roll", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 5, Available: true, Description: "Assorted fish roll", Calories: 360},
		{ID: "MC058", Name: "Beef Sukiyaki Don", Category: domain.CategoryMainCourse, Price: 389, PrepMinutes: 6, Available: true, Description: "Beef hot pot rice bowl", Calories: 450},
		{ID: "MC059", Name: "Salmon Teriyaki", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Grilled salmon with sauce", Calories: 400},
		{ID: "MC060", Name: "Vegetable Tempura", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Assorted fried vegetables", Calories: 320},
		{ID: "DS021", Name: "Mochi Ice Cream", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Rice cake with ice cream", Calories: 180},
		{ID: "DS022", Name: "Matcha Tiramisu", Category: domain.CategoryDessert, Price: 169, PrepMinutes: 2, Available: true, Description: "Green tea flavored dessert", Calories: 220},
		{ID: "DS023", Name: "Dorayaki", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Red bean pancake", Calories: 200},
		{ID: "DS024", Name: "Taiyaki", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Fish-shaped cake", Calories: 180},
		{ID: "DS025", Name: "Matcha Parfait", Category: domain.CategoryDessert, Price: 179, PrepMinutes: 3, Available: true, Description: "Green tea sundae", Calories: 250},
		{ID: "DS026", Name: "Anmitsu", Category: domain.CategoryDessert, Price: 159, PrepMinutes: 3, Available: true, Description: "Agar jelly dessert", Calories: 200},
		{ID: "DS027", Name: "Warabi Mochi", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 2, Available: true, Description: "Jelly-like confection", Calories: 160},
		{ID: "DS028", Name: "Castella", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Japanese sponge cake", Calories: 220},
		{ID: "DS029", Name: "Yokan", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Red bean jelly", Calories: 150},
		{ID: "DS030", Name: "Zenzai", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "Sweet red bean soup", Calories: 180},
		{ID: "BV041", Name: "Matcha Latte", Category: domain.CategoryBeverage, Price: 129, PrepMinutes: 2, Available: true, Description: "Green tea with milk", Calories: 120},
		{ID: "BV042", Name: "Sake", Category: domain.CategoryBeverage, Price: 199, PrepMinutes: 1, Available: true, Description: "Japanese rice wine", Calories: 150},
		{ID: "BV043", Name: "Umeshu", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 1, Available: true, Description: "Plum wine", Calories: 130},
		{ID: "BV044", Name: "Ramune", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Japanese soda", Calories: 140},
		{ID: "BV045", Name: "Hojicha Tea", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Roasted green tea", Calories: 10},
		{ID: "BV046", Name: "Genmaicha Tea", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Brown rice tea", Calories: 10},
		{ID: "BV047", Name: "Calpico", Category: domain.CategoryBeverage, Price: 109, PrepMinutes: 1, Available: true, Description: "Japanese soft drink", Calories: 110},
		{ID: "BV048", Name: "Melon Soda", Category: domain.CategoryBeverage, Price: 119, PrepMinutes: 1, Available: true, Description: "Green melon flavored", Calories: 130},
		{ID: "BV049", Name: "Shiso Juice", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Perilla leaf drink", Calories: 50},
		{ID: "BV050", Name: "Yuzu Tea", Category: domain.CategoryBeverage, Price: 109, PrepMinutes: 1, Available: true, Description: "Citrus herbal tea", Calories: 30},
		{ID: "BV051", Name: "Cold Brew Tea", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Iced green tea", Calories: 5},
		{ID: "BV052", Name: "Shochu", Category: domain.CategoryBeverage, Price: 219, PrepMinutes: 1, Available: true, Description: "Japanese distilled beverage", Calories: 120},
	}
}

func americanMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST031", Name: "Buffalo Wings", Category: domain.CategoryStarter, Price: 249, PrepMinutes: 4, Available: true, Description: "Spicy chicken wings", Calories: 350},
		{ID: "ST032", Name: "Mozzarella Sticks", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 3, Available: true, Description: "Fried cheese sticks", Calories: 280},
		{ID: "ST033", Name: "Nachos", Category: domain.CategoryStarter, Price: 219, PrepMinutes: 3, Available: true, Description: "Tortilla chips with toppings", Calories: 400},
		{ID: "ST034", Name: "Onion Rings", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 3, Available: true, Description: "Fried onion rings", Calories: 320},
		{ID: "ST035", Name: "Spinach Artichoke Dip", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 4, Available: true, Description: "Creamy dip with chips", Calories: 380},
		{ID: "ST036", Name: "Chicken Quesadilla", Category: domain.CategoryStarter, Price: 229, PrepMinutes: 4, Available: true, Description: "Grilled chicken and cheese", Calories: 420},
		{ID: "ST037", Name: "Potato Skins", Category: domain.CategoryStarter, Price: 209, PrepMinutes: 4, Available: true, Description: "Loaded potato halves", Calories: 350},
		{ID: "ST038", Name: "Bacon Cheese Fries", Category: domain.CategoryStarter, Price: 239, PrepMinutes: 4, Available: true, Description: "Fries with bacon and cheese", Calories: 450},
		{ID: "ST039", Name: "Clam Chowder", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 3, Available: true, Description: "Creamy seafood soup", Calories: 280},
		{ID: "ST040", Name: "Fried Pickles", Category: domain.CategoryStarter, Price: 159, PrepMinutes: 3, Available: true, Description: "Battered fried pickles", Calories: 250},
		{ID: "MC061", Name: "Cheeseburger", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 5, Available: true, Description: "Classic beef burger", Calories: 550},
		{ID: "MC062", Name: "BBQ Ribs", Category: domain.CategoryMainCourse, Price: 449, PrepMinutes: 6, Available: true, Description: "Slow-cooked pork ribs", Calories: 680},
		{ID: "MC063", Name: "Fried Chicken", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "Southern style chicken", Calories: 600},
		{ID: "MC064", Name: "Philly Cheesesteak", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 5, Available: true, Description: "Beef sandwich with cheese", Calories: 520},
		{ID: "MC065", Name: "Mac & Cheese", Category: domain.CategoryMainCourse, Price: 259, PrepMinutes: 4, Available: true, Description: "Creamy pasta dish", Calories: 450},
		{ID: "MC066", Name: "Club Sandwich", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Triple-decker sandwich", Calories: 480},
		{ID: "MC067", Name: "Steak", Category: domain.CategoryMainCourse, Price: 599, PrepMinutes: 7, Available: true, Description: "Grilled beef steak", Calories: 700},
		{ID: "MC068", Name: "Hot Dog", Category: domain.CategoryMainCourse, Price: 199, PrepMinutes: 3, Available: true, Description: "Classic American hot dog", Calories: 350},
		{ID: "MC069", Name: "Chicken Pot Pie", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "Creamy chicken in pastry", Calories: 500},
		{ID: "MC070", Name: "Meatloaf", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 5, Available: true, Description: "Homestyle meatloaf", Calories: 480},
		{ID: "MC071", Name: "Reuben Sandwich", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 4, Available: true, Description: "Corned beef sandwich", Calories: 520},
		{ID: "MC072", Name: "Pulled Pork Sandwich", Category: domain.CategoryMainCourse, Price: 319, PrepMinutes: 5, Available: true, Description: "Slow-cooked pork", Calories: 480},
		{ID: "MC073", Name: "Caesar Salad", Category: domain.CategoryMainCourse, Price: 239, PrepMinutes: 3, Available: true, Description: "Romaine with dressing", Calories: 350},
		{ID: "MC074", Name: "Fish and Chips", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Battered fish with fries", Calories: 550},
		{ID: "MC075", Name: "Bacon Cheeseburger", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "Burger with bacon", Calories: 600},
		{ID: "MC076", Name: "Chicken Fried Steak", Category: domain.CategoryMainCourse, Price: 359, PrepMinutes: 6, Available: true, Description: "Breaded steak with gravy", Calories: 650},
		{ID: "MC077", Name: "Turkey Dinner", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 7, Available: true, Description: "Roast turkey with sides", Calories: 700},
		{ID: "MC078", Name: "Lobster Roll", Category: domain.CategoryMainCourse, Price: 499, PrepMinutes: 5, Available: true, Description: "Lobster meat sandwich", Calories: 450},
		{ID: "MC079", Name: "Biscuits and Gravy", Category: domain.CategoryMainCourse, Price: 229, PrepMinutes: 4, Available: true, Description: "Southern breakfast", Calories: 480},
		{ID: "MC080", Name: "Chili Cheese Dog", Category: domain.CategoryMainCourse, Price: 249, PrepMinutes: 4, Available: true, Description: "Hot dog with chili", Calories: 500},
		{ID: "DS031", Name: "Apple Pie", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 3, Available: true, Description: "Classic American pie", Calories: 350},
		{ID: "DS032", Name: "Cheesecake", Category: domain.CategoryDessert, Price: 169, PrepMinutes: 2, Available: true, Description: "Creamy New York style", Calories: 400},
		{ID: "DS033", Name: "Chocolate Chip Cookies", Category: domain.CategoryDessert, Price: 99, PrepMinutes: 2, Available: true, Description: "Fresh baked cookies", Calories: 200},
		{ID: "DS034", Name: "Brownie Sundae", Category: domain.CategoryDessert, Price: 179, PrepMinutes: 3, Available: true, Description: "Warm brownie with ice cream", Calories: 450},
		{ID: "DS035", Name: "Banana Split", Category: domain.CategoryDessert, Price: 199, PrepMinutes: 3, Available: true, Description: "Classic ice cream dessert", Calories: 500},
		{ID: "DS036", Name: "Pecan Pie", Category: domain.CategoryDessert, Price: 159, PrepMinutes: 3, Available: true, Description: "Southern nut pie", Calories: 380},
		{ID: "DS037", Name: "Red Velvet Cake", Category: domain.CategoryDessert, Price: 189, PrepMinutes: 2, Available: true, Description: "Southern specialty cake", Calories: 420},
		{ID: "DS038", Name: "Key Lime Pie", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Tangy citrus pie", Calories: 350},
		{ID: "DS039", Name: "Milkshake", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Thick creamy shake", Calories: 300},
		{ID: "DS040", Name: "S'mores", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "Campfire classic", Calories: 250},
		{ID: "BV061", Name: "Root Beer Float", Category: domain.CategoryBeverage, Price: 149, PrepMinutes: 2, Available: true, Description: "Soda with ice cream", Calories: 250},
		{ID: "BV062", Name: "Iced Tea", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Sweet or unsweetened", Calories: 100},
		{ID: "BV063", Name: "Lemonade", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Fresh squeezed", Calories: 120},
		{ID: "BV064", Name: "Milkshake", Category: domain.CategoryBeverage, Price: 129, PrepMinutes: 2, Available: true, Description: "Vanilla, chocolate or strawberry", Calories: 300},
		{ID: "BV065", Name: "Soda", Category: domain.CategoryBeverage, Price: 59, PrepMinutes: 1, Available: true, Description: "Various flavors", Calories: 150},
		{ID: "BV066", Name: "Coffee", Category: domain.CategoryBeverage, Price: 69, PrepMinutes: 1, Available: true, Description: "Fresh brewed", Calories: 5},
		{ID: "BV067", Name: "Craft Beer", Category: domain.CategoryBeverage, Price: 199, PrepMinutes: 1, Available: true, Description: "Local selection", Calories: 150},
		{ID: "BV068", Name: "Bourbon", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 1, Available: true, Description: "Kentucky straight", Calories: 100},
		{ID: "BV069", Name: "Mint Julep", Category: domain.CategoryBeverage, Price: 189, PrepMinutes: 2, Available: true, Description: "Southern cocktail", Calories: 200},
		{ID: "BV070", Name: "Egg Cream", Category: domain.CategoryBeverage, Price: 109, PrepMinutes: 1, Available: true, Description: "New York classic", Calories: 180},
		{ID: "BV071", Name: "Arnold Palmer", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Half iced tea, half lemonade", Calories: 120},
		{ID: "BV072", Name: "Hot Chocolate", Category: domain.CategoryBeverage, Price: 119, PrepMinutes: 2, Available: true, Description: "Rich chocolate drink", Calories: 200},
	}
}

func mexicanMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST041", Name: "Guacamole", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 3, Available: true, Description: "Fresh avocado dip", Calories: 220},
		{ID: "ST042", Name: "Queso Fundido", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 4, Available: true, Description: "Melted cheese dip", Calories: 280},
		{ID: "ST043", Name: "Nachos", Category: domain.CategoryStarter, Price: 219, PrepMinutes: 3, Available: true, Description: "Tortilla chips with toppings", Calories: 400},
		{ID: "ST044", Name: "Elote", Category: domain.CategoryStarter, Price: 149, PrepMinutes: 3, Available: true, Description: "Mexican street corn", Calories: 250},
		{ID: "ST045", Name: "Tostadas", Category: domain.CategoryStarter, Price: 169, PrepMinutes: 3, Available: true, Description: "Crispy corn tortillas", Calories: 200},
		{ID: "ST046", Name: "Chorizo Quesadilla", Category: domain.CategoryStarter, Price: 229, PrepMinutes: 4, Available: true, Description: "Spicy sausage and cheese", Calories: 350},
		{ID: "ST047", Name: "Ceviche", Category: domain.CategoryStarter, Price: 249, PrepMinutes: 4, Available: true, Description: "Citrus-marinated seafood", Calories: 180},
		{ID: "ST048", Name: "Sopes", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 4, Available: true, Description: "Thick corn cakes", Calories: 280},
		{ID: "ST049", Name: "Taco Salad", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 3, Available: true, Description: "Crispy shell with fillings", Calories: 380},
		{ID: "ST050", Name: "Chiles Toreados", Category: domain.CategoryStarter, Price: 159, PrepMinutes: 3, Available: true, Description: "Blistered peppers", Calories: 120},
		{ID: "MC081", Name: "Tacos al Pastor", Category: domain.CategoryMainCourse, Price: 249, PrepMinutes: 4, Available: true, Description: "Marinated pork tacos", Calories: 350},
		{ID: "MC082", Name: "Enchiladas", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 5, Available: true, Description: "Stuffed tortillas with sauce", Calories: 420},
		{ID: "MC083", Name: "Burrito", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 5, Available: true, Description: "Large flour tortilla wrap", Calories: 550},
		{ID: "MC084", Name: "Chiles Rellenos", Category: domain.CategoryMainCourse, Price: 259, PrepMinutes: 5, Available: true, Description: "Stuffed poblano peppers", Calories: 380},
		{ID: "MC085", Name: "Mole Poblano", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 6, Available: true, Description: "Chicken in rich sauce", Calories: 450},
		{ID: "MC086", Name: "Fajitas", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 6, Available: true, Description: "Sizzling grilled meat", Calories: 480},
		{ID: "MC087", Name: "Tamales", Category: domain.CategoryMainCourse, Price: 229, PrepMinutes: 5, Available: true, Description: "Steamed corn dough", Calories: 320},
		{ID: "MC088", Name: "Pozole", Category: domain.CategoryMainCourse, Price: 199, PrepMinutes: 4, Available: true, Description: "Hominy stew", Calories: 350},
		{ID: "MC089", Name: "Carnitas", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 5, Available: true, Description: "Slow-cooked pork", Calories: 400},
		{ID: "MC090", Name: "Quesadilla", Category: domain.CategoryMainCourse, Price: 219, PrepMinutes: 4, Available: true, Description: "Grilled cheese tortilla", Calories: 380},
		{ID: "MC091", Name: "Tlayuda", Category: domain.CategoryMainCourse, Price: 259, PrepMinutes: 5, Available: true, Description: "Oaxacan pizza", Calories: 420},
		{ID: "MC092", Name: "Birria Tacos", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 5, Available: true, Description: "Stewed meat tacos", Calories: 350},
		{ID: "MC093", Name: "Pambazo", Category: domain.CategoryMainCourse, Price: 229, PrepMinutes: 4, Available: true, Description: "Dipped bread sandwich", Calories: 400},
		{ID: "MC094", Name: "Huarache", Category: domain.CategoryMainCourse, Price: 239, PrepMinutes: 5, Available: true, Description: "Oval-shaped masa base", Calories: 380},
		{ID: "MC095", Name: "Sopes", Category: domain.CategoryMainCourse, Price: 199, PrepMinutes: 4, Available: true, Description: "Thick corn cakes", Calories: 320},
		{ID: "MC096", Name: "Chilaquiles", Category: domain.CategoryMainCourse, Price: 189, PrepMinutes: 4, Available: true, Description: "Fried tortilla dish", Calories: 350},
		{ID: "MC097", Name: "Menudo", Category: domain.CategoryMainCourse, Price: 209, PrepMinutes: 5, Available: true, Description: "Tripe soup", Calories: 300},
		{ID: "MC098", Name: "Barbacoa", Category: domain.CategoryMainCourse, Price: 319, PrepMinutes: 6, Available: true, Description: "Slow-cooked beef", Calories: 450},
		{ID: "MC099", Name: "Pescado Zarandeado", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 6, Available: true, Description: "Grilled whole fish", Calories: 400},
		{ID: "MC100", Name: "Carne Asada", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Grilled steak", Calories: 480},
		{ID: "DS041", Name: "Churros", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 3, Available: true, Description: "Fried dough pastry", Calories: 280},
		{ID: "DS042", Name: "Flan", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Caramel custard", Calories: 220},
		{ID: "DS043", Name: "Tres Leches Cake", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Three milk cake", Calories: 350},
		{ID: "DS044", Name: "Arroz con Leche", Category: domain.CategoryDessert, Price: 99, PrepMinutes: 2, Available: true, Description: "Rice pudding", Calories: 250},
		{ID: "DS045", Name: "Pastel de Elote", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "Corn cake", Calories: 300},
		{ID: "DS046", Name: "Cajeta Crepes", Category: domain.CategoryDessert, Price: 159, PrepMinutes: 3, Available: true, Description: "Goat milk caramel crepes", Calories: 320},
		{ID: "DS047", Name: "Buñuelos", Category: domain.CategoryDessert, Price: 109, PrepMinutes: 2, Available: true, Description: "Fried dough with syrup", Calories: 280},
		{ID: "DS048", Name: "Jericalla", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Mexican custard", Calories: 200},
		{ID: "DS049", Name: "Mangonada", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "Mango sorbet with chili", Calories: 250},
		{ID: "DS050", Name: "Ate con Queso", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Fruit paste with cheese", Calories: 220},
		{ID: "BV081", Name: "Horchata", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 2, Available: true, Description: "Rice milk drink", Calories: 180},
		{ID: "BV082", Name: "Jamaica", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Hibiscus tea", Calories: 50},
		{ID: "BV083", Name: "Tamarindo", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Tamarind drink", Calories: 120},
		{ID: "BV084", Name: "Michelada", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 2, Available: true, Description: "Beer cocktail", Calories: 150},
		{ID: "BV085", Name: "Margarita", Category: domain.CategoryBeverage, Price: 199, PrepMinutes: 2, Available: true, Description: "Classic tequila cocktail", Calories: 200},
		{ID: "BV086", Name: "Paloma", Category: domain.CategoryBeverage, Price: 189, PrepMinutes: 2, Available: true, Description: "Grapefruit tequila drink", Calories: 180},
		{ID: "BV087", Name: "Tequila", Category: domain.CategoryBeverage, Price: 159, PrepMinutes: 1, Available: true, Description: "100% agave", Calories: 100},
		{ID: "BV088", Name: "Mezcal", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 1, Available: true, Description: "Smoky agave spirit", Calories: 110},
		{ID: "BV089", Name: "Atole", Category: domain.CategoryBeverage, Price: 109, PrepMinutes: 2, Available: true, Description: "Warm corn drink", Calories: 200},
		{ID: "BV090", Name: "Café de Olla", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 2, Available: true, Description: "Spiced Mexican coffee", Calories: 120},
		{ID: "BV091", Name: "Pulque", Category: domain.CategoryBeverage, Price: 149, PrepMinutes: 1, Available: true, Description: "Fermented agave drink", Calories: 150},
		{ID: "BV092", Name: "Mexican Hot Chocolate", Category: domain.CategoryBeverage, Price: 119, PrepMinutes: 2, Available: true, Description: "Spiced chocolate", Calories: 180},
	}
}

func chineseMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST051", Name: "Spring Rolls", Category: domain.CategoryStarter, Price: 149, PrepMinutes: 3, Available: true, Description: "Crispy vegetable rolls", Calories: 200},
		{ID: "ST052", Name: "Dumplings", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 4, Available: true, Description: "Steamed or fried", Calories: 250},
		{ID: "ST053", Name: "Wonton Soup", Category: domain.CategoryStarter, Price: 129, PrepMinutes: 3, Available: true, Description: "Pork dumpling soup", Calories: 180},
		{ID: "ST054", Name: "Peking Duck Pancakes", Category: domain.CategoryStarter, Price: 299, PrepMinutes: 4, Available: true, Description: "Thin pancakes with duck", Calories: 350},
		{ID: "ST055", Name: "Scallion Pancakes", Category: domain.CategoryStarter, Price: 159, PrepMinutes: 3, Available: true, Description: "Flaky layered bread", Calories: 280},
		{ID: "ST056", Name: "Hot and Sour Soup", Category: domain.CategoryStarter, Price: 139, PrepMinutes: 3, Available: true, Description: "Spicy tangy soup", Calories: 200},
		{ID: "ST057", Name: "Egg Rolls", Category: domain.CategoryStarter, Price: 169, PrepMinutes: 3, Available: true, Description: "Crispy fried rolls", Calories: 300},
		{ID: "ST058", Name: "Szechuan Chicken", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 4, Available: true, Description: "Spicy appetizer", Calories: 250},
		{ID: "ST059", Name: "Crab Rangoon", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 4, Available: true, Description: "Cream cheese wontons", Calories: 280},
		{ID: "ST060", Name: "Spicy Cucumber Salad", Category: domain.CategoryStarter, Price: 119, PrepMinutes: 2, Available: true, Description: "Refreshing side", Calories: 100},
		{ID: "MC101", Name: "Kung Pao Chicken", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 5, Available: true, Description: "Spicy stir-fry", Calories: 450},
		{ID: "MC102", Name: "Beef with Broccoli", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Classic stir-fry", Calories: 380},
		{ID: "MC103", Name: "Sweet and Sour Pork", Category: domain.CategoryMainCourse, Price: 259, PrepMinutes: 4, Available: true, Description: "Crispy pork in sauce", Calories: 420},
		{ID: "MC104", Name: "Mapo Tofu", Category: domain.CategoryMainCourse, Price: 239, PrepMinutes: 4, Available: true, Description: "Spicy tofu dish", Calories: 350},
		{ID: "MC105", Name: "Peking Duck", Category: domain.CategoryMainCourse, Price: 499, PrepMinutes: 6, Available: true, Description: "Roasted duck", Calories: 550},
		{ID: "MC106", Name: "General Tso's Chicken", Category: domain.CategoryMainCourse, Price: 289, PrepMinutes: 5, Available: true, Description: "Crispy chicken in sauce", Calories: 480},
		{ID: "MC107", Name: "Moo Shu Pork", Category: domain.CategoryMainCourse, Price: 269, PrepMinutes: 5, Available: true, Description: "Stir-fry with pancakes", Calories: 400},
		{ID: "MC108", Name: "Szechuan Beef", Category: domain.CategoryMainCourse, Price: 309, PrepMinutes: 5, Available: true, Description: "Spicy beef dish", Calories: 450},
		{ID: "MC109", Name: "Honey Walnut Shrimp", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Crispy shrimp", Calories: 400},
		{ID: "MC110", Name: "Chow Mein", Category: domain.CategoryMainCourse, Price: 229, PrepMinutes: 4, Available: true, Description: "Stir-fried noodles", Calories: 380},
		{ID: "MC111", Name: "Fried Rice", Category: domain.CategoryMainCourse, Price: 219, PrepMinutes: 4, Available: true, Description: "Classic rice dish", Calories: 350},
		{ID: "MC112", Name: "Orange Chicken", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 5, Available: true, Description: "Sweet citrus chicken", Calories: 420},
		{ID: "MC113", Name: "Egg Foo Young", Category: domain.CategoryMainCourse, Price: 239, PrepMinutes: 4, Available: true, Description: "Chinese omelette", Calories: 300},
		{ID: "MC114", Name: "Char Siu Pork", Category: domain.CategoryMainCourse, Price: 259, PrepMinutes: 5, Available: true, Description: "BBQ pork", Calories: 380},
		{ID: "MC115", Name: "Hot Pot", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 6, Available: true, Description: "Interactive cooking", Calories: 500},
		{ID: "MC116", Name: "Lo Mein", Category: domain.CategoryMainCourse, Price: 229, PrepMinutes: 4, Available: true, Description: "Soft egg noodles", Calories: 350},
		{ID: "MC117", Name: "Xiaolongbao", Category: domain.CategoryMainCourse, Price: 249, PrepMinutes: 4, Available: true, Description: "Soup dumplings", Calories: 280},
		{ID: "MC118", Name: "Dan Dan Noodles", Category: domain.CategoryMainCourse, Price: 219, PrepMinutes: 4, Available: true, Description: "Spicy Sichuan noodles", Calories: 320},
		{ID: "MC119", Name: "Salt and Pepper Shrimp", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "Crispy seasoned shrimp", Calories: 350},
		{ID: "MC120", Name: "Clay Pot Rice", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 5, Available: true, Description: "Rice cooked in clay pot", Calories: 400},
		{ID: "DS051", Name: "Mango Pudding", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Creamy mango dessert", Calories: 200},
		{ID: "DS052", Name: "Red Bean Bun", Category: domain.CategoryDessert, Price: 99, PrepMinutes: 2, Available: true, Description: "Steamed sweet bun", Calories: 180},
		{ID: "DS053", Name: "Sesame Balls", Category: domain.CategoryDessert, Price: 109, PrepMinutes: 3, Available: true, Description: "Fried glutinous rice", Calories: 220},
		{ID: "DS054", Name: "Egg Tarts", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Flaky pastry with custard", Calories: 250},
		{ID: "DS055", Name: "Almond Jelly", Category: domain.CategoryDessert, Price: 89, PrepMinutes: 2, Available: true, Description: "Light almond dessert", Calories: 150},
		{ID: "DS056", Name: "Fortune Cookies", Category: domain.CategoryDessert, Price: 59, PrepMinutes: 1, Available: true, Description: "Classic crispy cookies", Calories: 50},
		{ID: "DS057", Name: "Taro Cake", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Steamed root vegetable cake", Calories: 180},
		{ID: "DS058", Name: "Lychee with Ice Cream", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 2, Available: true, Description: "Tropical fruit dessert", Calories: 220},
		{ID: "DS059", Name: "Mooncake", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Festive pastry", Calories: 300},
		{ID: "DS060", Name: "Sweet Tofu Pudding", Category: domain.CategoryDessert, Price: 99, PrepMinutes: 2, Available: true, Description: "Silky soybean dessert", Calories: 150},
		{ID: "BV101", Name: "Jasmine Tea", Category: domain.CategoryBeverage, Price: 69, PrepMinutes: 1, Available: true, Description: "Fragrant Chinese tea", Calories: 5},
		{ID: "BV102", Name: "Bubble Tea", Category: domain.CategoryBeverage, Price: 129, PrepMinutes: 2, Available: true, Description: "Milk tea with tapioca", Calories: 250},
		{ID: "BV103", Name: "Plum Juice", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Sweet-sour drink", Calories: 120},
		{ID: "BV104", Name: "Soy Milk", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Traditional drink", Calories: 100},
		{ID: "BV105", Name: "Lychee Martini", Category: domain.CategoryBeverage, Price: 199, PrepMinutes: 2, Available: true, Description: "Fruit cocktail", Calories: 180},
		{ID: "BV106", Name: "Oolong Tea", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Semi-oxidized tea", Calories: 5},
		{ID: "BV107", Name: "Honey Lemon Tea", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Soothing hot drink", Calories: 120},
		{ID: "BV108", Name: "Baijiu", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 1, Available: true, Description: "Chinese liquor", Calories: 150},
		{ID: "BV109", Name: "Winter Melon Tea", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Sweet herbal drink", Calories: 100},
		{ID: "BV110", Name: "Sour Plum Drink", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Refreshing beverage", Calories: 80},
		{ID: "BV111", Name: "Chrysanthemum Tea", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Floral herbal tea", Calories: 5},
		{ID: "BV112", Name: "Ginger Tea", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Spiced hot drink", Calories: 30},
	}
}

func mediterraneanMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST061", Name: "Hummus", Category: domain.CategoryStarter, Price: 149, PrepMinutes: 2, Available: true, Description: "Chickpea dip", Calories: 200},
		{ID: "ST062", Name: "Baba Ganoush", Category: domain.CategoryStarter, Price: 159, PrepMinutes: 3, Available: true, Description: "Eggplant dip", Calories: 180},
		{ID: "ST063", Name: "Tzatziki", Category: domain.CategoryStarter, Price: 139, PrepMinutes: 2, Available: true, Description: "Yogurt cucumber dip", Calories: 150},
		{ID: "ST064", Name: "Dolma", Category: domain.CategoryStarter, Price: 169, PrepMinutes: 3, Available: true, Description: "Stuffed grape leaves", Calories: 220},
		{ID: "ST065", Name: "Falafel", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 4, Available: true, Description: "Fried chickpea balls", Calories: 250},
		{ID: "ST066", Name: "Spanakopita", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 3, Available: true, Description: "Spinach pie", Calories: 280},
		{ID: "ST067", Name: "Tabouli", Category: domain.CategoryStarter, Price: 129, PrepMinutes: 2, Available: true, Description: "Parsley salad", Calories: 120},
		{ID: "ST068", Name: "Fattoush", Category: domain.CategoryStarter, Price: 139, PrepMinutes: 2, Available: true, Description: "Bread salad", Calories: 180},
		{ID: "ST069", Name: "Muhammara", Category: domain.CategoryStarter, Price: 159, PrepMinutes: 3, Available: true, Description: "Red pepper dip", Calories: 200},
		{ID: "ST070", Name: "Halloumi Fries", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 4, Available: true, Description: "Fried cheese sticks", Calories: 300},
		{ID: "MC121", Name: "Shawarma", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 5, Available: true, Description: "Spiced meat wrap", Calories: 450},
		{ID: "MC122", Name: "Gyro", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Meat with pita", Calories: 400},
		{ID: "MC123", Name: "Moussaka", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 6, Available: true, Description: "Eggplant casserole", Calories: 480},
		{ID: "MC124", Name: "Kebab Platter", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Grilled meat assortment", Calories: 500},
		{ID: "MC125", Name: "Paella", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 7, Available: true, Description: "Spanish rice dish", Calories: 550},
		{ID: "MC126", Name: "Tagine", Category: domain.CategoryMainCourse, Price: 359, PrepMinutes: 6, Available: true, Description: "Slow-cooked stew", Calories: 480},
		{ID: "MC127", Name: "Falafel Wrap", Category: domain.CategoryMainCourse, Price: 239, PrepMinutes: 4, Available: true, Description: "Chickpea patty wrap", Calories: 380},
		{ID: "MC128", Name: "Stuffed Peppers", Category: domain.CategoryMainCourse, Price: 259, PrepMinutes: 5, Available: true, Description: "Bell peppers with rice", Calories: 350},
		{ID: "MC129", Name: "Lamb Kofta", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 5, Available: true, Description: "Spiced meatballs", Calories: 420},
		{ID: "MC130", Name: "Seafood Orzo", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 6, Available: true, Description: "Pasta with seafood", Calories: 450},
		{ID: "MC131", Name: "Chicken Souvlaki", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Grilled chicken skewers", Calories: 380},
		{ID: "MC132", Name: "Ratatouille", Category: domain.CategoryMainCourse, Price: 239, PrepMinutes: 5, Available: true, Description: "Vegetable stew", Calories: 300},
		{ID: "MC133", Name: "Grilled Octopus", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 6, Available: true, Description: "Tender seafood", Calories: 350},
		{ID: "MC134", Name: "Lentil Soup", Category: domain.CategoryMainCourse, Price: 189, PrepMinutes: 3, Available: true, Description: "Hearty legume soup", Calories: 250},
		{ID: "MC135", Name: "Pide", Category: domain.CategoryMainCourse, Price: 269, PrepMinutes: 5, Available: true, Description: "Turkish flatbread pizza", Calories: 400},
		{ID: "MC136", Name: "Stuffed Eggplant", Category: domain.CategoryMainCourse, Price: 249, PrepMinutes: 5, Available: true, Description: "Baked with fillings", Calories: 350},
		{ID: "MC137", Name: "Greek Salad", Category: domain.CategoryMainCourse, Price: 219, PrepMinutes: 3, Available: true, Description: "Fresh vegetable salad", Calories: 280},
		{ID: "MC138", Name: "Baklava", Category: domain.CategoryMainCourse, Price: 169, PrepMinutes: 2, Available: true, Description: "Sweet pastry", Calories: 320},
		{ID: "MC139", Name: "Couscous", Category: domain.CategoryMainCourse, Price: 199, PrepMinutes: 4, Available: true, Description: "Steamed semolina", Calories: 300},
		{ID: "MC140", Name: "Grilled Fish", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Fresh seafood", Calories: 400},
		{ID: "DS061", Name: "Baklava", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Layered pastry with nuts", Calories: 350},
		{ID: "DS062", Name: "Kunafa", Category: domain.CategoryDessert, Price: 169, PrepMinutes: 3, Available: true, Description: "Cheese pastry", Calories: 400},
		{ID: "DS063", Name: "Loukoumades", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "Greek doughnuts", Calories: 300},
		{ID: "DS064", Name: "Halva", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Sesame sweet", Calories: 250},
		{ID: "DS065", Name: "Revani", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Semolina cake", Calories: 280},
		{ID: "DS066", Name: "Mahalabia", Category: domain.CategoryDessert, Price: 109, PrepMinutes: 2, Available: true, Description: "Milk pudding", Calories: 200},
		{ID: "DS067", Name: "Sutlac", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 3, Available: true, Description: "Rice pudding", Calories: 220},
		{ID: "DS068", Name: "Galaktoboureko", Category: domain.CategoryDessert, Price: 159, PrepMinutes: 3, Available: true, Description: "Custard pie", Calories: 350},
		{ID: "DS069", Name: "Qatayef", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "Stuffed pancakes", Calories: 280},
		{ID: "DS070", Name: "Turkish Delight", Category: domain.CategoryDessert, Price: 99, PrepMinutes: 1, Available: true, Description: "Chewy confection", Calories: 180},
		{ID: "BV121", Name: "Turkish Coffee", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 2, Available: true, Description: "Strong traditional coffee", Calories: 10},
		{ID: "BV122", Name: "Mint Tea", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Refreshing herbal tea", Calories: 5},
		{ID: "BV123", Name: "Ayran", Category: domain.CategoryBeverage, Price: 69, PrepMinutes: 1, Available: true, Description: "Yogurt drink", Calories: 100},
		{ID: "BV124", Name: "Arak", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 1, Available: true, Description: "Anise-flavored spirit", Calories: 120},
		{ID: "BV125", Name: "Pomegranate Juice", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Fresh squeezed", Calories: 120},
		{ID: "BV126", Name: "Sahlab", Category: domain.CategoryBeverage, Price: 109, PrepMinutes: 2, Available: true, Description: "Warm milk drink", Calories: 200},
		{ID: "BV127", Name: "Raki", Category: domain.CategoryBeverage, Price: 159, PrepMinutes: 1, Available: true, Description: "Turkish alcoholic drink", Calories: 130},
		{ID: "BV128", Name: "Lemonade with Mint", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Refreshing citrus drink", Calories: 120},
		{ID: "BV129", Name: "Rose Water", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Floral flavored water", Calories: 5},
		{ID: "BV130", Name: "Almond Milk", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Nutty dairy alternative", Calories: 150},
		{ID: "BV131", Name: "Sour Cherry Juice", Category: domain.CategoryBeverage, Price: 109, PrepMinutes: 1, Available: true, Description: "Tart fruit drink", Calories: 100},
		{ID: "BV132", Name: "Cardamom Coffee", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 2, Available: true, Description: "Spiced coffee", Calories: 10},
	}
}

func bbqMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST071", Name: "BBQ Wings", Category: domain.CategoryStarter, Price: 229, PrepMinutes: 4, Available: true, Description: "Smoky chicken wings", Calories: 350},
		{ID: "ST072", Name: "Pulled Pork Sliders", Category: domain.CategoryStarter, Price: 249, PrepMinutes: 4, Available: true, Description: "Mini sandwiches", Calories: 300},
		{ID: "ST073", Name: "Brisket Tacos", Category: domain.CategoryStarter, Price: 269, PrepMinutes: 4, Available: true, Description: "Smoked meat tacos", Calories: 320},
		{ID: "ST074", Name: "Jalapeño Poppers", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 3, Available: true, Description: "Stuffed peppers", Calories: 280},
		{ID: "ST075", Name: "Smoked Sausage", Category: domain.CategoryStarter, Price: 219, PrepMinutes: 3, Available: true, Description: "House-made links", Calories: 350},
		{ID: "ST076", Name: "BBQ Nachos", Category: domain.CategoryStarter, Price: 239, PrepMinutes: 4, Available: true, Description: "Loaded with meat", Calories: 450},
		{ID: "ST077", Name: "Fried Pickles", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 3, Available: true, Description: "Battered and fried", Calories: 250},
		{ID: "ST078", Name: "Deviled Eggs", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 2, Available: true, Description: "Classic Southern", Calories: 200},
		{ID: "ST079", Name: "Cornbread", Category: domain.CategoryStarter, Price: 159, PrepMinutes: 2, Available: true, Description: "Sweet Southern", Calories: 220},
		{ID: "ST080", Name: "Collard Greens", Category: domain.CategoryStarter, Price: 169, PrepMinutes: 3, Available: true, Description: "Slow-cooked greens", Calories: 150},
		{ID: "MC141", Name: "Brisket Platter", Category: domain.CategoryMainCourse, Price: 499, PrepMinutes: 6, Available: true, Description: "Slow-smoked beef", Calories: 600},
		{ID: "MC142", Name: "Ribs Platter", Category: domain.CategoryMainCourse, Price: 449, PrepMinutes: 5, Available: true, Description: "Fall-off-the-bone", Calories: 550},
		{ID: "MC143", Name: "Pulled Pork", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 5, Available: true, Description: "Shredded pork", Calories: 500},
		{ID: "MC144", Name: "Smoked Chicken", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Juicy and tender", Calories: 450},
		{ID: "MC145", Name: "Burnt Ends", Category: domain.CategoryMainCourse, Price: 429, PrepMinutes: 5, Available: true, Description: "Brisket pieces", Calories: 480},
		{ID: "MC146", Name: "BBQ Sampler", Category: domain.CategoryMainCourse, Price: 549, PrepMinutes: 6, Available: true, Description: "Assorted meats", Calories: 700},
		{ID: "MC147", Name: "Beef Ribs", Category: domain.CategoryMainCourse, Price: 499, PrepMinutes: 6, Available: true, Description: "Meaty ribs", Calories: 650},
		{ID: "MC148", Name: "Smoked Turkey", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 5, Available: true, Description: "Juicy poultry", Calories: 400},
		{ID: "MC149", Name: "BBQ Sandwich", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 4, Available: true, Description: "Pulled pork or chicken", Calories: 450},
		{ID: "MC150", Name: "Sausage Platter", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 4, Available: true, Description: "Assorted smoked", Calories: 400},
		{ID: "MC151", Name: "BBQ Burger", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "With smoked meat", Calories: 550},
		{ID: "MC152", Name: "Pork Belly", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 5, Available: true, Description: "Crispy and tender", Calories: 500},
		{ID: "MC153", Name: "BBQ Tacos", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 4, Available: true, Description: "With choice of meat", Calories: 380},
		{ID: "MC154", Name: "Smoked Meatloaf", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "BBQ style", Calories: 450},
		{ID: "MC155", Name: "BBQ Chicken", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Half or whole", Calories: 400},
		{ID: "MC156", Name: "BBQ Plate", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 5, Available: true, Description: "Two meat combo", Calories: 500},
		{ID: "MC157", Name: "Smoked Salmon", Category: domain.CategoryMainCourse, Price: 429, PrepMinutes: 5, Available: true, Description: "Wood-fired fish", Calories: 450},
		{ID: "MC158", Name: "BBQ Pizza", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "With smoked meats", Calories: 480},
		{ID: "MC159", Name: "BBQ Bowl", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 4, Available: true, Description: "Meat over rice", Calories: 400},
		{ID: "MC160", Name: "BBQ Mac & Cheese", Category: domain.CategoryMainCourse, Price: 259, PrepMinutes: 4, Available: true, Description: "With pulled pork", Calories: 450},
		{ID: "DS071", Name: "Banana Pudding", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 2, Available: true, Description: "Southern classic", Calories: 350},
		{ID: "DS072", Name: "Pecan Pie", Category: domain.CategoryDessert, Price: 169, PrepMinutes: 3, Available: true, Description: "Nutty sweet pie", Calories: 400},
		{ID: "DS073", Name: "Bread Pudding", Category: domain.CategoryDessert, Price: 159, PrepMinutes: 3, Available: true, Description: "With bourbon sauce", Calories: 380},
		{ID: "DS074", Name: "Cobbler", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "Seasonal fruit", Calories: 300},
		{ID: "DS075", Name: "Fried Pie", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Handheld dessert", Calories: 250},
		{ID: "DS076", Name: "Sweet Potato Pie", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 3, Available: true, Description: "Southern specialty", Calories: 350},
		{ID: "DS077", Name: "Chocolate Chess Pie", Category: domain.CategoryDessert, Price: 159, PrepMinutes: 2, Available: true, Description: "Rich chocolate", Calories: 400},
		{ID: "DS078", Name: "Peach Crisp", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "Warm fruit dessert", Calories: 300},
		{ID: "DS079", Name: "S'mores", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Campfire classic", Calories: 250},
		{ID: "DS080", Name: "Fried Cheesecake", Category: domain.CategoryDessert, Price: 179, PrepMinutes: 3, Available: true, Description: "Crispy outside", Calories: 450},
		{ID: "BV141", Name: "Sweet Tea", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Southern staple", Calories: 150},
		{ID: "BV142", Name: "Lemonade", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Fresh squeezed", Calories: 120},
		{ID: "BV143", Name: "Bourbon", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 1, Available: true, Description: "Kentucky straight", Calories: 100},
		{ID: "BV144", Name: "Root Beer", Category: domain.CategoryBeverage, Price: 69, PrepMinutes: 1, Available: true, Description: "Classic soda", Calories: 150},
		{ID: "BV145", Name: "Iced Coffee", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Cold brew", Calories: 50},
		{ID: "BV146", Name: "Mint Julep", Category: domain.CategoryBeverage, Price: 189, PrepMinutes: 2, Available: true, Description: "Bourbon cocktail", Calories: 200},
		{ID: "BV147", Name: "Peach Tea", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Fruit-infused", Calories: 120},
		{ID: "BV148", Name: "Hard Cider", Category: domain.CategoryBeverage, Price: 149, PrepMinutes: 1, Available: true, Description: "Local selection", Calories: 150},
		{ID: "BV149", Name: "Arnold Palmer", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 1, Available: true, Description: "Half tea, half lemonade", Calories: 120},
		{ID: "BV150", Name: "Sarsaparilla", Category: domain.CategoryBeverage, Price: 109, PrepMinutes: 1, Available: true, Description: "Old-fashioned soda", Calories: 140},
		{ID: "BV151", Name: "Bourbon Slush", Category: domain.CategoryBeverage, Price: 159, PrepMinutes: 2, Available: true, Description: "Frozen cocktail", Calories: 180},
		{ID: "BV152", Name: "Sweet Tea Vodka", Category: domain.CategoryBeverage, Price: 169, PrepMinutes: 1, Available: true, Description: "Southern cocktail", Calories: 150},
	}
}

func frenchMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "ST081", Name: "Escargot", Category: domain.CategoryStarter, Price: 299, PrepMinutes: 4, Available: true, Description: "Garlic butter snails", Calories: 250},
		{ID: "ST082", Name: "French Onion Soup", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 3, Available: true, Description: "Caramelized onion soup", Calories: 300},
		{ID: "ST083", Name: "Pâté", Category: domain.CategoryStarter, Price: 229, PrepMinutes: 3, Available: true, Description: "Duck liver spread", Calories: 280},
		{ID: "ST084", Name: "Brie en Croûte", Category: domain.CategoryStarter, Price: 249, PrepMinutes: 4, Available: true, Description: "Baked brie in pastry", Calories: 350},
		{ID: "ST085", Name: "Salade Niçoise", Category: domain.CategoryStarter, Price: 219, PrepMinutes: 3, Available: true, Description: "Tuna salad", Calories: 280},
		{ID: "ST086", Name: "Soupe à l'Oignon", Category: domain.CategoryStarter, Price: 189, PrepMinutes: 3, Available: true, Description: "Classic onion soup", Calories: 250},
		{ID: "ST087", Name: "Tartare de Boeuf", Category: domain.CategoryStarter, Price: 279, PrepMinutes: 4, Available: true, Description: "Beef tartare", Calories: 220},
		{ID: "ST088", Name: "Gougères", Category: domain.CategoryStarter, Price: 179, PrepMinutes: 3, Available: true, Description: "Cheese puffs", Calories: 200},
		{ID: "ST089", Name: "Ratatouille", Category: domain.CategoryStarter, Price: 199, PrepMinutes: 4, Available: true, Description: "Vegetable stew", Calories: 180},
		{ID: "ST090", Name: "Quiche Lorraine", Category: domain.CategoryStarter, Price: 229, PrepMinutes: 4, Available: true, Description: "Savory custard pie", Calories: 300},
		{ID: "MC161", Name: "Coq au Vin", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 6, Available: true, Description: "Chicken in wine", Calories: 450},
		{ID: "MC162", Name: "Boeuf Bourguignon", Category: domain.CategoryMainCourse, Price: 429, PrepMinutes: 7, Available: true, Description: "Beef stew", Calories: 500},
		{ID: "MC163", Name: "Duck Confit", Category: domain.CategoryMainCourse, Price: 449, PrepMinutes: 6, Available: true, Description: "Slow-cooked duck", Calories: 480},
		{ID: "MC164", Name: "Bouillabaisse", Category: domain.CategoryMainCourse, Price: 479, PrepMinutes: 7, Available: true, Description: "Seafood stew", Calories: 450},
		{ID: "MC165", Name: "Cassoulet", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 6, Available: true, Description: "Bean and meat stew", Calories: 550},
		{ID: "MC166", Name: "Steak Frites", Category: domain.CategoryMainCourse, Price: 499, PrepMinutes: 5, Available: true, Description: "Steak with fries", Calories: 600},
		{ID: "MC167", Name: "Croque Monsieur", Category: domain.CategoryMainCourse, Price: 279, PrepMinutes: 4, Available: true, Description: "Ham and cheese sandwich", Calories: 400},
		{ID: "MC168", Name: "Poulet Rôti", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Roast chicken", Calories: 450},
		{ID: "MC169", Name: "Salmon en Papillote", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 5, Available: true, Description: "Steamed salmon", Calories: 400},
		{ID: "MC170", Name: "Tarte Flambée", Category: domain.CategoryMainCourse, Price: 299, PrepMinutes: 4, Available: true, Description: "Alsatian pizza", Calories: 380},
		{ID: "MC171", Name: "Quenelles", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "Fish dumplings", Calories: 350},
		{ID: "MC172", Name: "Sole Meunière", Category: domain.CategoryMainCourse, Price: 429, PrepMinutes: 5, Available: true, Description: "Butter-fried fish", Calories: 400},
		{ID: "MC173", Name: "Confit de Canard", Category: domain.CategoryMainCourse, Price: 449, PrepMinutes: 6, Available: true, Description: "Preserved duck", Calories: 480},
		{ID: "MC174", Name: "Blanquette de Veau", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 6, Available: true, Description: "Veal stew", Calories: 450},
		{ID: "MC175", Name: "Gigot d'Agneau", Category: domain.CategoryMainCourse, Price: 499, PrepMinutes: 7, Available: true, Description: "Roast leg of lamb", Calories: 550},
		{ID: "MC176", Name: "Truffle Pasta", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 5, Available: true, Description: "Luxury mushroom", Calories: 400},
		{ID: "MC177", Name: "Moules Marinières", Category: domain.CategoryMainCourse, Price: 349, PrepMinutes: 5, Available: true, Description: "Mussels in white wine", Calories: 350},
		{ID: "MC178", Name: "Poulet Basquaise", Category: domain.CategoryMainCourse, Price: 329, PrepMinutes: 5, Available: true, Description: "Chicken with peppers", Calories: 400},
		{ID: "MC179", Name: "Pot-au-Feu", Category: domain.CategoryMainCourse, Price: 399, PrepMinutes: 6, Available: true, Description: "Boiled meat and veg", Calories: 450},
		{ID: "MC180", Name: "Choucroute Garnie", Category: domain.CategoryMainCourse, Price: 379, PrepMinutes: 6, Available: true, Description: "Sauerkraut with meats", Calories: 500},
		{ID: "DS081", Name: "Crème Brûlée", Category: domain.CategoryDessert, Price: 169, PrepMinutes: 3, Available: true, Description: "Burnt cream", Calories: 350},
		{ID: "DS082", Name: "Tarte Tatin", Category: domain.CategoryDessert, Price: 179, PrepMinutes: 4, Available: true, Description: "Upside-down apple tart", Calories: 380},
		{ID: "DS083", Name: "Macarons", Category: domain.CategoryDessert, Price: 129, PrepMinutes: 2, Available: true, Description: "Colorful meringue", Calories: 200},
		{ID: "DS084", Name: "Profiteroles", Category: domain.CategoryDessert, Price: 159, PrepMinutes: 3, Available: true, Description: "Cream puffs", Calories: 300},
		{ID: "DS085", Name: "Mille-Feuille", Category: domain.CategoryDessert, Price: 189, PrepMinutes: 3, Available: true, Description: "Napoleon pastry", Calories: 350},
		{ID: "DS086", Name: "Éclair", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 2, Available: true, Description: "Cream-filled pastry", Calories: 250},
		{ID: "DS087", Name: "Soufflé", Category: domain.CategoryDessert, Price: 199, PrepMinutes: 4, Available: true, Description: "Fluffy baked dessert", Calories: 280},
		{ID: "DS088", Name: "Madeleines", Category: domain.CategoryDessert, Price: 119, PrepMinutes: 2, Available: true, Description: "Shell-shaped cakes", Calories: 180},
		{ID: "DS089", Name: "Clafoutis", Category: domain.CategoryDessert, Price: 149, PrepMinutes: 3, Available: true, Description: "Cherry custard", Calories: 300},
		{ID: "DS090", Name: "Pain Perdu", Category: domain.CategoryDessert, Price: 139, PrepMinutes: 3, Available: true, Description: "French toast", Calories: 350},
		{ID: "BV161", Name: "Champagne", Category: domain.CategoryBeverage, Price: 599, PrepMinutes: 1, Available: true, Description: "French sparkling wine", Calories: 120},
		{ID: "BV162", Name: "Bordeaux", Category: domain.CategoryBeverage, Price: 399, PrepMinutes: 1, Available: true, Description: "Red wine", Calories: 120},
		{ID: "BV163", Name: "Chablis", Category: domain.CategoryBeverage, Price: 349, PrepMinutes: 1, Available: true, Description: "White wine", Calories: 110},
		{ID: "BV164", Name: "Kir Royale", Category: domain.CategoryBeverage, Price: 249, PrepMinutes: 2, Available: true, Description: "Champagne cocktail", Calories: 130},
		{ID: "BV165", Name: "Pastis", Category: domain.CategoryBeverage, Price: 179, PrepMinutes: 1, Available: true, Description: "Anise-flavored spirit", Calories: 100},
		{ID: "BV166", Name: "Cognac", Category: domain.CategoryBeverage, Price: 299, PrepMinutes: 1, Available: true, Description: "French brandy", Calories: 120},
		{ID: "BV167", Name: "Café au Lait", Category: domain.CategoryBeverage, Price: 99, PrepMinutes: 2, Available: true, Description: "Coffee with milk", Calories: 80},
		{ID: "BV168", Name: "Citron Pressé", Category: domain.CategoryBeverage, Price: 89, PrepMinutes: 1, Available: true, Description: "Fresh lemonade", Calories: 100},
		{ID: "BV169", Name: "Thé à la Menthe", Category: domain.CategoryBeverage, Price: 79, PrepMinutes: 1, Available: true, Description: "Mint tea", Calories: 5},
		{ID: "BV170", Name: "Vin Chaud", Category: domain.CategoryBeverage, Price: 129, PrepMinutes: 2, Available: true, Description: "Mulled wine", Calories: 120},
		{ID: "BV171", Name: "Perrier", Category: domain.CategoryBeverage, Price: 69, PrepMinutes: 1, Available: true, Description: "Sparkling water", Calories: 0},
		{ID: "BV172", Name: "Cidre", Category: domain.CategoryBeverage, Price: 149, PrepMinutes: 1, Available: true, Description: "French cider", Calories: 120},
	}
}

