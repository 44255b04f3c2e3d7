// internal/catalog/seed.go
package catalog

import "github.com/shopease/shopease-backend/internal/models"

// SeedProducts is the static catalog the store is initialized with.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Premium Wireless Earbuds",
			Price:       129.99,
			Description: "High-quality wireless earbuds with noise cancellation, water resistance, and 24-hour battery life.",
			Image:       "https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Electronics",
			Brand:       "SoundCore",
			Rating:      4.8,
			Stock:       25,
			Featured:    true,
			Colors:      []string{"Black", "White", "Blue"},
			Discount:    0,
			Tags:        []string{"wireless", "audio", "gadgets"},
		},
		{
			ID:          2,
			Name:        "Smartwatch Pro",
			Price:       199.99,
			Description: "Advanced smartwatch with health tracking, GPS, and a vibrant OLED display. Compatible with iOS and Android.",
			Image:       "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Electronics",
			Brand:       "TechFit",
			Rating:      4.5,
			Stock:       18,
			Featured:    true,
			Colors:      []string{"Black", "Silver"},
			Discount:    10,
			Tags:        []string{"wearable", "fitness", "smartwatch"},
		},
		{
			ID:          3,
			Name:        "Designer Leather Handbag",
			Price:       159.99,
			Description: "Elegant genuine leather handbag with multiple compartments and adjustable strap. Perfect for any occasion.",
			Image:       "https://images.pexels.com/photos/5096183/pexels-photo-5096183.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Fashion",
			Brand:       "LuxStyle",
			Rating:      4.7,
			Stock:       12,
			Featured:    false,
			Colors:      []string{"Brown", "Black", "Tan"},
			Discount:    0,
			Tags:        []string{"accessories", "fashion", "leather"},
		},
		{
			ID:          4,
			Name:        "Ultra HD Smart TV - 55\"",
			Price:       699.99,
			Description: "4K Ultra HD Smart TV with HDR, built-in streaming apps, and voice control. Immerse yourself in stunning clarity.",
			Image:       "https://images.pexels.com/photos/5552789/pexels-photo-5552789.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Electronics",
			Brand:       "VisionTech",
			Rating:      4.6,
			Stock:       8,
			Featured:    true,
			Colors:      []string{"Black"},
			Discount:    15,
			Tags:        []string{"television", "entertainment", "smart home"},
		},
		{
			ID:          5,
			Name:        "Professional DSLR Camera",
			Price:       899.99,
			Description: "High-performance DSLR camera with 24.2MP sensor, 4K video recording, and extensive lens compatibility.",
			Image:       "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Electronics",
			Brand:       "PhotoMaster",
			Rating:      4.9,
			Stock:       5,
			Featured:    false,
			Colors:      []string{"Black"},
			Discount:    0,
			Tags:        []string{"photography", "camera", "professional"},
		},
		{
			ID:          6,
			Name:        "Premium Coffee Maker",
			Price:       149.99,
			Description: "Programmable coffee maker with built-in grinder, multiple brewing options, and thermal carafe to keep coffee hot for hours.",
			Image:       "https://images.pexels.com/photos/6148051/pexels-photo-6148051.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Home",
			Brand:       "BrewPerfect",
			Rating:      4.7,
			Stock:       15,
			Featured:    false,
			Colors:      []string{"Silver", "Black"},
			Discount:    5,
			Tags:        []string{"kitchen", "appliances", "coffee"},
		},
		{
			ID:          7,
			Name:        "Running Shoes",
			Price:       129.99,
			Description: "Lightweight running shoes with responsive cushioning, breathable mesh upper, and durable rubber outsole. Perfect for daily runs.",
			Image:       "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Sports",
			Brand:       "SpeedRunner",
			Rating:      4.6,
			Stock:       22,
			Featured:    true,
			Colors:      []string{"Blue/Black", "Red/White", "Gray/Yellow"},
			Discount:    0,
			Tags:        []string{"shoes", "running", "athletic", "fitness"},
		},
		{
			ID:          8,
			Name:        "Wireless Gaming Headset",
			Price:       179.99,
			Description: "Premium gaming headset with 7.1 surround sound, noise-canceling microphone, and long-lasting battery life. Compatible with PC, PlayStation, and Xbox.",
			Image:       "https://images.pexels.com/photos/3060902/pexels-photo-3060902.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Gaming",
			Brand:       "GameAudio",
			Rating:      4.8,
			Stock:       10,
			Featured:    true,
			Colors:      []string{"Black/Red", "White/Blue"},
			Discount:    0,
			Tags:        []string{"gaming", "audio", "accessories"},
		},
		{
			ID:          9,
			Name:        "Bamboo Cutting Board Set",
			Price:       39.99,
			Description: "Set of 3 bamboo cutting boards in different sizes. Sustainable, durable, and knife-friendly with non-slip edges and juice grooves.",
			Image:       "https://images.pexels.com/photos/5765853/pexels-photo-5765853.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Home",
			Brand:       "EcoKitchen",
			Rating:      4.5,
			Stock:       30,
			Featured:    false,
			Colors:      []string{"Natural"},
			Discount:    0,
			Tags:        []string{"kitchen", "eco-friendly", "housewares"},
		},
		{
			ID:          10,
			Name:        "Ergonomic Office Chair",
			Price:       249.99,
			Description: "Adjustable ergonomic office chair with lumbar support, breathable mesh back, and padded armrests. Designed for all-day comfort.",
			Image:       "https://images.pexels.com/photos/1957478/pexels-photo-1957478.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Furniture",
			Brand:       "ComfortWork",
			Rating:      4.7,
			Stock:       7,
			Featured:    false,
			Colors:      []string{"Black", "Gray"},
			Discount:    10,
			Tags:        []string{"furniture", "office", "ergonomic"},
		},
		{
			ID:          11,
			Name:        "Portable Bluetooth Speaker",
			Price:       79.99,
			Description: "Waterproof portable speaker with 20-hour battery life, powerful bass, and built-in microphone for calls. Perfect for outdoor adventures.",
			Image:       "https://images.pexels.com/photos/1279107/pexels-photo-1279107.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Electronics",
			Brand:       "SoundWave",
			Rating:      4.4,
			Stock:       20,
			Featured:    true,
			Colors:      []string{"Black", "Blue", "Red"},
			Discount:    0,
			Tags:        []string{"audio", "portable", "bluetooth", "speakers"},
		},
		{
			ID:          12,
			Name:        "Ceramic Dinner Set",
			Price:       89.99,
			Description: "16-piece ceramic dinner set including plates, bowls, and mugs. Elegant design, dishwasher and microwave safe.",
			Image:       "https://images.pexels.com/photos/6207365/pexels-photo-6207365.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Home",
			Brand:       "HomeEssentials",
			Rating:      4.6,
			Stock:       15,
			Featured:    false,
			Colors:      []string{"White", "Gray", "Blue"},
			Discount:    5,
			Tags:        []string{"kitchen", "dining", "tableware"},
		},
	}
}

// PriceBrackets are the preset price filters the filter UI offers.
func PriceBrackets() []struct {
	Label string
	Min   float64
	Max   *float64
} {
	f := func(v float64) *float64 { return &v }
	return []struct {
		Label string
		Min   float64
		Max   *float64
	}{
		{Label: "Under $50", Min: 0, Max: f(50)},
		{Label: "$50 - $100", Min: 50, Max: f(100)},
		{Label: "$100 - $200", Min: 100, Max: f(200)},
		{Label: "$200 - $500", Min: 200, Max: f(500)},
		{Label: "Over $500", Min: 500, Max: nil},
	}
}
