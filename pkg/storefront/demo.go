package storefront

import "jeansfactory/internal/models"

// DemoCatalog returns the built-in product set the client falls back to when
// the catalog fetch fails, and that the server seeds when it runs without a
// database.
func DemoCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Classic Blue Regular Fit", Price: 1999, Category: "Regular", Gender: "Men", IsSale: false, Image: "https://images.unsplash.com/photo-1542272617-08f086302542?auto=format&fit=crop&q=80&w=600", Rating: 4.5},
		{ID: 2, Name: "Urban Black Slim Fit", Price: 2499, PriceBeforeSale: 3200, Category: "Slim", Gender: "Men", IsSale: true, Image: "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?auto=format&fit=crop&q=80&w=600", Rating: 4.8},
		{ID: 3, Name: "Vintage Ripped Boyfriend", Price: 2999, Category: "Ripped", Gender: "Women", IsSale: false, Image: "https://images.unsplash.com/photo-1576995853123-5a297da40306?auto=format&fit=crop&q=80&w=600", Rating: 4.2},
		{ID: 4, Name: "Dark Navy Straight Leg", Price: 1899, Category: "Straight", Gender: "Men", IsSale: false, Image: "https://images.unsplash.com/photo-1565084888279-aca607ecce0c?auto=format&fit=crop&q=80&w=600", Rating: 4.6},
		{ID: 5, Name: "Light Wash High-Waist", Price: 2299, PriceBeforeSale: 3000, Category: "Tapered", Gender: "Women", IsSale: true, Image: "https://images.unsplash.com/photo-1604176354204-9268737828c4?auto=format&fit=crop&q=80&w=600", Rating: 4.3},
	}
}
