package catalogd

import (
	"github.com/attidev/storefront/internal/catalog"
	"github.com/attidev/storefront/internal/gateway"
)

// SeedProducts is the demo inventory.
func SeedProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Essence Mascara Lash Princess", Category: "beauty", Brand: "Essence", Price: 9.99, Rating: 4.94, Stock: 5},
		{ID: 2, Title: "Eyeshadow Palette with Mirror", Category: "beauty", Brand: "Glamour Beauty", Price: 19.99, Rating: 3.28, Stock: 44},
		{ID: 3, Title: "Powder Canister", Category: "beauty", Brand: "Velvet Touch", Price: 14.99, Rating: 3.82, Stock: 59},
		{ID: 4, Title: "Red Lipstick", Category: "beauty", Brand: "Chic Cosmetics", Price: 12.99, Rating: 2.51, Stock: 68},
		{ID: 5, Title: "Red Nail Polish", Category: "beauty", Brand: "Nail Couture", Price: 8.99, Rating: 3.91, Stock: 71},
		{ID: 6, Title: "Calvin Klein CK One", Category: "fragrances", Brand: "Calvin Klein", Price: 49.99, Rating: 4.85, Stock: 17},
		{ID: 7, Title: "Chanel Coco Noir Eau De", Category: "fragrances", Brand: "Chanel", Price: 129.99, Rating: 2.76, Stock: 41},
		{ID: 8, Title: "Dior J'adore", Category: "fragrances", Brand: "Dior", Price: 89.99, Rating: 3.31, Stock: 91},
		{ID: 9, Title: "Annibale Colombo Bed", Category: "furniture", Brand: "Annibale Colombo", Price: 1899.99, Rating: 4.14, Stock: 47},
		{ID: 10, Title: "Annibale Colombo Sofa", Category: "furniture", Brand: "Annibale Colombo", Price: 2499.99, Rating: 3.08, Stock: 16},
		{ID: 11, Title: "Bedside Table African Cherry", Category: "furniture", Brand: "Furniture Co.", Price: 299.99, Rating: 4.48, Stock: 16},
		{ID: 12, Title: "Knoll Saarinen Executive Conference Chair", Category: "furniture", Brand: "Knoll", Price: 499.99, Rating: 4.11, Stock: 47},
		{ID: 13, Title: "Wooden Bathroom Sink With Mirror", Category: "furniture", Brand: "Bath Trends", Price: 799.99, Rating: 3.26, Stock: 95},
		{ID: 14, Title: "Apple", Category: "groceries", Price: 1.99, Rating: 2.96, Stock: 9},
		{ID: 15, Title: "Beef Steak", Category: "groceries", Price: 12.99, Rating: 2.83, Stock: 96},
		{ID: 16, Title: "Cat Food", Category: "groceries", Price: 8.99, Rating: 2.88, Stock: 13},
		{ID: 17, Title: "Chicken Meat", Category: "groceries", Price: 9.99, Rating: 4.61, Stock: 69},
		{ID: 18, Title: "Cooking Oil", Category: "groceries", Price: 4.99, Rating: 4.01, Stock: 22},
		{ID: 19, Title: "Cucumber", Category: "groceries", Price: 1.49, Rating: 4.71, Stock: 22},
		{ID: 20, Title: "Dog Food", Category: "groceries", Price: 10.99, Rating: 2.74, Stock: 40},
		{ID: 21, Title: "Eggs", Category: "groceries", Price: 2.99, Rating: 4.46, Stock: 10},
		{ID: 22, Title: "Fish Steak", Category: "groceries", Price: 14.99, Rating: 4.83, Stock: 99},
		{ID: 23, Title: "Green Bell Pepper", Category: "groceries", Price: 1.29, Rating: 4.28, Stock: 89},
		{ID: 24, Title: "Green Chili Pepper", Category: "groceries", Price: 0.99, Rating: 4.43, Stock: 8},
		{ID: 25, Title: "Honey Jar", Category: "groceries", Price: 6.99, Rating: 3.5, Stock: 25},
		{ID: 26, Title: "Ice Cream", Category: "groceries", Price: 5.49, Rating: 3.77, Stock: 76},
		{ID: 27, Title: "Juice", Category: "groceries", Price: 3.99, Rating: 3.41, Stock: 99},
		{ID: 28, Title: "Kiwi", Category: "groceries", Price: 2.49, Rating: 4.37, Stock: 1},
		{ID: 29, Title: "Lemon", Category: "groceries", Price: 0.79, Rating: 3.18, Stock: 31},
		{ID: 30, Title: "Milk", Category: "groceries", Price: 3.49, Rating: 3.14, Stock: 57},
	}
}

// SeedAccounts returns the demo login accounts.
func SeedAccounts() map[string]Account {
	return map[string]Account{
		"emilys": {
			Password: "emilyspass",
			User: gateway.AuthUser{
				ID: 1, Username: "emilys", Email: "emily.johnson@x.dummyjson.com",
				FirstName: "Emily", LastName: "Johnson", Gender: "female",
			},
		},
		"michaelw": {
			Password: "michaelwpass",
			User: gateway.AuthUser{
				ID: 2, Username: "michaelw", Email: "michael.williams@x.dummyjson.com",
				FirstName: "Michael", LastName: "Williams", Gender: "male",
			},
		},
		"sophiab": {
			Password: "sophiabpass",
			User: gateway.AuthUser{
				ID: 3, Username: "sophiab", Email: "sophia.brown@x.dummyjson.com",
				FirstName: "Sophia", LastName: "Brown", Gender: "female",
			},
		},
	}
}
