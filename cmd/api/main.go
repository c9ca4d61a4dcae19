package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pawmart/storefront-golang/internal/cache"
	"github.com/pawmart/storefront-golang/internal/database"
	"github.com/pawmart/storefront-golang/internal/events"
	"github.com/pawmart/storefront-golang/internal/filters"
	"github.com/pawmart/storefront-golang/internal/handlers"
	"github.com/pawmart/storefront-golang/internal/productapi"
	"github.com/pawmart/storefront-golang/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database (carts, wishlists) ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Upstream Product API ---
	apiBase := os.Getenv("PRODUCT_API_URL")
	if apiBase == "" {
		log.Fatal("CRITICAL ERROR: PRODUCT_API_URL environment variable is not set.")
	}
	client := productapi.NewClient(apiBase)

	// 3. --- Optional infrastructure: listing cache, activity events ---
	rdb := database.OpenRedis()
	producer := events.NewProducer()
	defer producer.Close()

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:       db,
		Products: productapi.NewLoader(client),
		Registry: filters.NewRegistry(),
		Cache:    cache.NewListing(rdb, 0),
		Events:   producer,
		APIBase:  client.BaseURL(),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting PawMart storefront API on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
