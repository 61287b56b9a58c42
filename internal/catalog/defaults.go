package catalog

import "github.com/drstein77/techaurex/internal/models"

// Default returns the built-in dataset served when no other source is
// configured.
func Default() Dataset {
	return Dataset{
		Products:         defaultProducts(),
		CategoryProducts: defaultCategoryProducts(),
		Detailed:         defaultDetailed(),
		Categories: []string{
			"Smartphones", "Laptops", "Headphones", "Tablets", "Cameras",
			"Smart Watches", "Gaming", "Audio", "Accessories",
		},
		Companies: []string{
			"Apple", "Samsung", "Sony", "Bose", "Canon",
			"Nikon", "Dell", "HP", "Asus", "Microsoft",
		},
	}
}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Apple iPhone 15 Pro Max", Category: "Smartphones", Company: "Apple",
			Price: 1199, OriginalPrice: models.Bound(1299), Date: models.MustDate("2024-01-15"), Rating: 4.8,
			Summary:  "The ultimate iPhone with titanium design and revolutionary camera system.",
			Features: []string{"A17 Pro chip", "48MP camera", "Titanium build", "USB-C"},
			IsNew:    true, IsFlagship: true,
		},
		{
			ID: 2, Name: "Sony WH-1000XM5", Category: "Headphones", Company: "Sony",
			Price: 399, OriginalPrice: models.Bound(449), Date: models.MustDate("2024-01-10"), Rating: 4.7,
			Summary:  "Industry-leading noise cancellation with premium sound quality.",
			Features: []string{"30-hour battery", "Quick Charge", "Touch controls", "Hi-Res Audio"},
			IsNew:    true, IsFlagship: true,
		},
		{
			ID: 3, Name: "MacBook Air M3", Category: "Laptops", Company: "Apple",
			Price: 1299, Date: models.MustDate("2024-01-08"), Rating: 4.9,
			Summary:    "Lightweight powerhouse with Apple's latest M3 chip technology.",
			Features:   []string{"M3 chip", "18-hour battery", "Liquid Retina display", "MagSafe"},
			IsFlagship: true,
		},
		{
			ID: 4, Name: "Samsung Galaxy Buds Pro", Category: "Audio", Company: "Samsung",
			Price: 149, OriginalPrice: models.Bound(199), Date: models.MustDate("2024-01-05"), Rating: 4.3,
			Summary:      "Premium wireless earbuds with active noise cancellation.",
			Features:     []string{"ANC", "IPX7 waterproof", "28-hour battery", "360 Audio"},
			IsAffordable: true,
		},
		{
			ID: 5, Name: "Canon EOS R8", Category: "Cameras", Company: "Canon",
			Price: 1499, Date: models.MustDate("2024-01-03"), Rating: 4.6,
			Summary:    "Full-frame mirrorless camera for content creators and professionals.",
			Features:   []string{"24.2MP sensor", "4K video", "Dual Pixel CMOS AF", "In-body stabilization"},
			IsFlagship: true,
		},
		{
			ID: 6, Name: "iPad Air 5th Gen", Category: "Tablets", Company: "Apple",
			Price: 599, Date: models.MustDate("2024-01-01"), Rating: 4.5,
			Summary:      "Versatile tablet with M1 chip for work and creativity.",
			Features:     []string{"M1 chip", "Liquid Retina display", "Apple Pencil support", "USB-C"},
			IsAffordable: true,
		},
		{
			ID: 7, Name: "Bose QuietComfort Earbuds", Category: "Audio", Company: "Bose",
			Price: 279, OriginalPrice: models.Bound(329), Date: models.MustDate("2023-12-28"), Rating: 4.4,
			Summary:      "World-class noise cancellation in true wireless earbuds.",
			Features:     []string{"Noise cancellation", "6-hour battery", "IPX4 rated", "Touch controls"},
			IsAffordable: true,
		},
		{
			ID: 8, Name: "Dell XPS 13 Plus", Category: "Laptops", Company: "Dell",
			Price: 1399, Date: models.MustDate("2023-12-25"), Rating: 4.2,
			Summary:    "Premium ultrabook with stunning InfinityEdge display.",
			Features:   []string{"12th Gen Intel", "OLED display", "Premium materials", "Compact design"},
			IsFlagship: true,
		},
	}
}

func defaultCategoryProducts() []models.CategoryProduct {
	mobile, laptop, earphone := models.CategoryMobile, models.CategoryLaptop, models.CategoryEarphone
	return []models.CategoryProduct{
		categoryProduct(101, "iPhone 15 Pro", mobile, "Apple", 1199, models.MustDate("2024-06-15"),
			"Titanium build, A17 Pro, improved cameras, and USB‑C for pros."),
		categoryProduct(102, "Samsung Galaxy S24 Ultra", mobile, "Samsung", 1299, models.MustDate("2024-05-20"),
			"Stunning display, powerful zoom, and long-lasting battery life."),
		categoryProduct(103, "Google Pixel 8", mobile, "Google", 799, models.MustDate("2024-04-12"),
			"Clean Android, exceptional camera, and AI-powered features."),
		categoryProduct(104, "OnePlus 12", mobile, "OnePlus", 899, models.MustDate("2024-03-02"),
			"Flagship performance with fast charging and sleek design."),
		categoryProduct(105, "Nothing Phone (2a)", mobile, "Nothing", 449, models.MustDate("2024-02-10"),
			"Unique glyph interface, smooth performance, excellent value."),
		categoryProduct(106, "Xiaomi 14 Pro", mobile, "Xiaomi", 999, models.MustDate("2024-01-22"),
			"Bright display, fast charging, and excellent value flagship specs."),
		categoryProduct(107, "Motorola Edge 40", mobile, "Motorola", 699, models.MustDate("2023-12-12"),
			"Clean Android, curved display, and solid battery life."),
		categoryProduct(108, "Oppo Find X6", mobile, "OPPO", 899, models.MustDate("2023-11-28"),
			"Premium design with versatile cameras and fast charging."),
		categoryProduct(109, "Vivo X100", mobile, "Vivo", 849, models.MustDate("2023-11-10"),
			"Zeiss-tuned cameras with powerful performance and AMOLED display."),
		categoryProduct(110, "Realme GT 5", mobile, "Realme", 599, models.MustDate("2023-10-25"),
			"High performance at an aggressive price with rapid charging."),
		categoryProduct(111, "Asus ROG Phone 7", mobile, "ASUS", 1099, models.MustDate("2023-09-12"),
			"Gaming-focused phone with top-tier performance and cooling."),
		categoryProduct(112, "Nokia XR21", mobile, "Nokia", 499, models.MustDate("2023-08-18"),
			"Rugged smartphone with long battery life and clean software."),

		categoryProduct(201, "MacBook Air M3", laptop, "Apple", 1299, models.MustDate("2024-05-01"),
			"Ultra-portable with superb efficiency and bright Liquid Retina display."),
		categoryProduct(202, "Dell XPS 15", laptop, "Dell", 1899, models.MustDate("2024-04-08"),
			"Premium build, vibrant OLED option, and strong creator performance."),
		categoryProduct(203, "HP Spectre x360", laptop, "HP", 1599, models.MustDate("2024-03-14"),
			"Elegant 2-in-1 with great keyboard, battery life, and port selection."),
		categoryProduct(204, "ASUS ROG Zephyrus G14", laptop, "Asus", 1999, models.MustDate("2024-02-18"),
			"Compact gaming beast with high-refresh display and solid thermals."),
		categoryProduct(205, "Lenovo ThinkPad X1 Carbon", laptop, "Lenovo", 1699, models.MustDate("2024-01-28"),
			"Iconic business laptop with best-in-class keyboard and durability."),

		categoryProduct(301, "Sony WF-1000XM5", earphone, "Sony", 299, models.MustDate("2024-06-02"),
			"Top-tier ANC, balanced sound, and comfortable lightweight fit."),
		categoryProduct(302, "AirPods Pro (2nd Gen)", earphone, "Apple", 249, models.MustDate("2024-04-22"),
			"Seamless iOS integration, strong ANC, and spatial audio."),
		categoryProduct(303, "Bose QuietComfort Ultra Earbuds", earphone, "Bose", 299, models.MustDate("2024-03-30"),
			"Rich sound with excellent noise cancelling and comfort."),
		categoryProduct(304, "Nothing Ear (a)", earphone, "Nothing", 99, models.MustDate("2024-02-12"),
			"Playful design, clear sound, and great value for the price."),
		categoryProduct(305, "Jabra Elite 8 Active", earphone, "Jabra", 199, models.MustDate("2024-01-05"),
			"Rugged, secure fit earbuds ideal for workouts and outdoor use."),
	}
}

func categoryProduct(id int, name string, category models.CategoryName, company string, price float64, published models.Date, description string) models.CategoryProduct {
	return models.CategoryProduct{
		ID:            id,
		Name:          name,
		Category:      category,
		Company:       company,
		Price:         price,
		PublishedDate: published,
		Description:   description,
	}
}

func defaultDetailed() []models.DetailedProduct {
	return []models.DetailedProduct{
		{
			ID: 1, Name: "Apple iPhone 15 Pro Max", Images: []string{"phone", "phone", "hero"},
			Category: "Smartphones", Features: []string{"A17 Pro chip", "48MP camera", "Titanium build", "USB-C"},
			Price: 1199, Rating: 4.8, TotalReviews: 150,
			Description:   "The ultimate iPhone with titanium design and revolutionary camera system.",
			AffiliateLink: "https://example.com/affiliate/iphone15promax",
		},
		{
			ID: 2, Name: "Sony WH-1000XM5", Images: []string{"headphones", "headphones", "hero"},
			Category: "Headphones", Features: []string{"30-hour battery", "Quick Charge", "Touch controls", "Hi-Res Audio"},
			Price: 399, Rating: 4.7, TotalReviews: 276,
			Description:   "Industry-leading noise cancellation with premium sound quality.",
			AffiliateLink: "https://example.com/affiliate/sony-xm5",
		},
		{
			ID: 3, Name: "MacBook Air M3", Images: []string{"laptop", "laptop", "hero"},
			Category: "Laptops", Features: []string{"M3 chip", "18-hour battery", "Liquid Retina display", "MagSafe"},
			Price: 1299, Rating: 4.9, TotalReviews: 312,
			Description:   "Lightweight powerhouse with Apple's latest M3 chip technology.",
			AffiliateLink: "https://example.com/affiliate/macbook-air-m3",
		},
		{
			ID: 8, Name: "Dell XPS 13 Plus", Images: []string{"laptop", "laptop", "hero"},
			Category: "Laptops", Features: []string{"OLED display", "Premium materials", "Compact design"},
			Price: 1399, Rating: 4.2, TotalReviews: 198,
			Description:   "Premium ultrabook with stunning InfinityEdge display.",
			AffiliateLink: "https://example.com/affiliate/dell-xps-13",
		},
	}
}
