package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and seeds the catalog with demo data.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SMARTSTOREFRONT - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.User{},
		&models.UserPreference{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.NewsletterSubscriber{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	var existing int64
	if err := config.StoreGorm.Model(&models.Category{}).Count(&existing).Error; err != nil {
		log.Fatalf("❌ Database error: %v", err)
	}
	if existing > 0 {
		log.Println("✓ Catalog already seeded, nothing to do")
		return
	}

	categories := seedCategories()
	products := seedProducts(categories)
	demo := seedDemoUser()
	orders := seedOrders(demo, products)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Categories: %d\n", len(categories))
	fmt.Printf("Products:   %d\n", len(products))
	fmt.Printf("Orders:     %d (demo account %s)\n", len(orders), demo.Email)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse products at GET /api/v1/products")
	fmt.Println("3. Log in as demo@smartstorefront.dev / demo-pass-123")
}

func seedCategories() []models.Category {
	categories := []models.Category{
		{Name: "Books", Slug: "books", Description: strPtr("Bestsellers, classics, and hidden gems")},
		{Name: "Fashion", Slug: "fashion", Description: strPtr("Apparel and accessories for every season")},
		{Name: "Fitness", Slug: "fitness", Description: strPtr("Gear for workouts at home and in the gym")},
		{Name: "Electronics", Slug: "electronics", Description: strPtr("Phones, laptops, audio, and wearables")},
		{Name: "Home Decor", Slug: "home-decor", Description: strPtr("Pieces that make a house a home")},
		{Name: "Beauty", Slug: "beauty", Description: strPtr("Skincare, fragrance, and cosmetics")},
	}

	if err := config.StoreGorm.Create(&categories).Error; err != nil {
		log.Fatalf("❌ Failed to seed categories: %v", err)
	}
	log.Printf("✓ Seeded %d categories", len(categories))
	return categories
}

func seedProducts(categories []models.Category) []models.Product {
	bySlug := make(map[string]int, len(categories))
	for _, cat := range categories {
		bySlug[cat.Slug] = cat.ID
	}

	now := time.Now()
	daysAgo := func(d int) *time.Time {
		t := now.AddDate(0, 0, -d)
		return &t
	}

	products := []models.Product{
		{Name: "Ultra Wireless Earbuds", Slug: "ultra-wireless-earbuds", Price: 129.99, OldPrice: floatPtr(179.99), Rating: floatPtr(4.6), ReviewCount: intPtr(812), CategoryID: intPtr(bySlug["electronics"]), IsTrending: true, CreatedAt: daysAgo(12)},
		{Name: "Pro Laptop 14", Slug: "pro-laptop-14", Price: 999.00, Rating: floatPtr(4.8), ReviewCount: intPtr(341), CategoryID: intPtr(bySlug["electronics"]), CreatedAt: daysAgo(40)},
		{Name: "Smart Watch Elite", Slug: "smart-watch-elite", Price: 249.50, Rating: floatPtr(4.3), ReviewCount: intPtr(207), CategoryID: intPtr(bySlug["electronics"]), IsNew: true, CreatedAt: daysAgo(3)},
		{Name: "Classic Denim Jacket", Slug: "classic-denim-jacket", Price: 89.99, Rating: floatPtr(4.4), ReviewCount: intPtr(156), CategoryID: intPtr(bySlug["fashion"]), CreatedAt: daysAgo(25)},
		{Name: "Vintage Hoodie", Slug: "vintage-hoodie", Price: 54.99, OldPrice: floatPtr(69.99), Rating: floatPtr(4.1), ReviewCount: intPtr(98), CategoryID: intPtr(bySlug["fashion"]), IsTrending: true, CreatedAt: daysAgo(8)},
		{Name: "Formal Dress Shirt", Slug: "formal-dress-shirt", Price: 44.99, Rating: floatPtr(4.0), ReviewCount: intPtr(64), CategoryID: intPtr(bySlug["fashion"]), CreatedAt: daysAgo(60)},
		{Name: "Adjustable Dumbbell Set", Slug: "adjustable-dumbbell-set", Price: 199.00, Rating: floatPtr(4.7), ReviewCount: intPtr(423), CategoryID: intPtr(bySlug["fitness"]), CreatedAt: daysAgo(30)},
		{Name: "Yoga Mat Premium", Slug: "yoga-mat-premium", Price: 39.99, Rating: floatPtr(4.5), ReviewCount: intPtr(289), CategoryID: intPtr(bySlug["fitness"]), IsNew: true, CreatedAt: daysAgo(2)},
		{Name: "The Midnight Library", Slug: "the-midnight-library", Price: 16.99, Rating: floatPtr(4.6), ReviewCount: intPtr(1203), CategoryID: intPtr(bySlug["books"]), CreatedAt: daysAgo(90)},
		{Name: "Deep Work", Slug: "deep-work", Price: 18.50, Rating: floatPtr(4.7), ReviewCount: intPtr(876), CategoryID: intPtr(bySlug["books"]), IsTrending: true, CreatedAt: daysAgo(45)},
		{Name: "Ceramic Table Vase", Slug: "ceramic-table-vase", Price: 34.00, Rating: floatPtr(4.2), ReviewCount: intPtr(57), CategoryID: intPtr(bySlug["home-decor"]), CreatedAt: daysAgo(18)},
		{Name: "Linen Throw Pillow", Slug: "linen-throw-pillow", Price: 24.99, Rating: floatPtr(4.3), ReviewCount: intPtr(112), CategoryID: intPtr(bySlug["home-decor"]), IsNew: true, CreatedAt: daysAgo(5)},
		{Name: "Vitamin C Serum", Slug: "vitamin-c-serum", Price: 27.50, Rating: floatPtr(4.4), ReviewCount: intPtr(534), CategoryID: intPtr(bySlug["beauty"]), CreatedAt: daysAgo(22)},
		{Name: "Hydrating Face Mask", Slug: "hydrating-face-mask", Price: 14.99, OldPrice: floatPtr(19.99), Rating: floatPtr(4.1), ReviewCount: intPtr(301), CategoryID: intPtr(bySlug["beauty"]), CreatedAt: daysAgo(55)},
	}

	if err := config.StoreGorm.Create(&products).Error; err != nil {
		log.Fatalf("❌ Failed to seed products: %v", err)
	}
	log.Printf("✓ Seeded %d products", len(products))
	return products
}

// seedDemoUser creates the account anonymous chat sessions resolve to. The
// order-tracking assistant needs a user with history to have anything to say.
func seedDemoUser() models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-pass-123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash demo password: %v", err)
	}

	demo := models.User{
		Username:  "demo",
		Email:     "demo@smartstorefront.dev",
		Password:  string(hash),
		FirstName: strPtr("Demo"),
		LastName:  strPtr("Shopper"),
		Location:  strPtr("Anytown, ST"),
	}
	if err := config.StoreGorm.Create(&demo).Error; err != nil {
		log.Fatalf("❌ Failed to seed demo user: %v", err)
	}
	log.Printf("✓ Seeded demo user %s (id %d)", demo.Email, demo.ID)
	return demo
}

func seedOrders(user models.User, products []models.Product) []models.Order {
	now := time.Now()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	item := func(p models.Product, qty int) models.OrderItem {
		return models.OrderItem{ProductID: p.ID, Quantity: qty, Price: p.Price}
	}

	orders := []models.Order{
		{
			UserID:    user.ID,
			Status:    "delivered",
			Total:     products[0].Price + 2*products[7].Price,
			CreatedAt: daysAgo(21),
			Items:     []models.OrderItem{item(products[0], 1), item(products[7], 2)},
		},
		{
			UserID:    user.ID,
			Status:    "shipped",
			Total:     products[9].Price + products[12].Price,
			CreatedAt: daysAgo(6),
			Items:     []models.OrderItem{item(products[9], 1), item(products[12], 1)},
		},
		{
			UserID:    user.ID,
			Status:    "processing",
			Total:     products[3].Price,
			CreatedAt: daysAgo(1),
			Items:     []models.OrderItem{item(products[3], 1)},
		},
	}

	if err := config.StoreGorm.Create(&orders).Error; err != nil {
		log.Fatalf("❌ Failed to seed orders: %v", err)
	}
	log.Printf("✓ Seeded %d orders for the demo account", len(orders))
	return orders
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
