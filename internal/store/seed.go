package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"store-catalog-service/internal/domain"
)

// demoProducts returns the demo catalog inserted on first boot.
func demoProducts() []domain.Product {
	return []domain.Product{
		{
			Title:       "Stitch Plush - Classic Blue",
			Description: "Super-soft Stitch plush, 12-inch collectible.",
			Price:       24.99,
			Category:    "plush",
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1546778316-dfda79f1c5d0?q=80&w=1200&auto=format&fit=crop",
			},
			Rating:   4.8,
			StockQty: 120,
			Tags:     []string{"stitch", "plush", "disney"},
			Featured: true,
		},
		{
			Title:       "Stitch Keychain Mini Plush",
			Description: "Pocket-size Stitch charm for backpacks.",
			Price:       9.99,
			Category:    "accessories",
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1588422333073-3f83f9b7f1a3?q=80&w=1200&auto=format&fit=crop",
			},
			Rating:   4.6,
			StockQty: 300,
			Tags:     []string{"stitch", "keychain"},
			Featured: true,
		},
		{
			Title:       "Trading Card Booster Pack - Riftlol Edition",
			Description: "10 cards per pack, chance of holographic rares.",
			Price:       5.99,
			Category:    "cards",
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1603575449060-397ac9c3e9b3?q=80&w=1200&auto=format&fit=crop",
			},
			Rating:   4.5,
			StockQty: 500,
			Tags:     []string{"trading", "cards", "booster"},
			Featured: true,
		},
		{
			Title:       "Collector Binder - Neon Rift",
			Description: "Store up to 360 cards with UV-protect sleeves.",
			Price:       19.99,
			Category:    "cards",
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1603570419969-23f9139abf1d?q=80&w=1200&auto=format&fit=crop",
			},
			Rating:   4.7,
			StockQty: 220,
			Tags:     []string{"binder", "cards"},
			Featured: false,
		},
		{
			Title:       "Arcade Pixel Lamp",
			Description: "RGB mood lamp inspired by retro arcades.",
			Price:       29.99,
			Category:    "toys",
			InStock:     true,
			Images: []string{
				"https://images.unsplash.com/photo-1520975693411-b46f52b85097?q=80&w=1200&auto=format&fit=crop",
			},
			Rating:   4.4,
			StockQty: 80,
			Tags:     []string{"lamp", "gaming"},
			Featured: false,
		},
	}
}

// SeedDemoProducts inserts the demo catalog into the product collection when
// it is empty. Best effort: every failure is logged at warning level and
// swallowed, so the service still boots without a configured or reachable
// store. The count guard makes repeated startups idempotent.
func SeedDemoProducts(ctx context.Context, s DocumentStorer, logger *log.Logger) {
	if s == nil {
		logger.Println("WARN: Seeding skipped, store not configured")
		return
	}

	count, err := s.Count(ctx, ProductCollection, bson.M{})
	if err != nil {
		logger.Printf("WARN: Seeding skipped, failed to count products: %v", err)
		return
	}
	if count > 0 {
		return
	}

	now := time.Now().UTC()
	seeded := 0
	for _, p := range demoProducts() {
		p.CreatedAt = now
		if _, err := s.Insert(ctx, ProductCollection, p); err != nil {
			logger.Printf("WARN: Seeding insert failed for %q: %v", p.Title, err)
			continue
		}
		seeded++
	}
	logger.Printf("INFO: Seeded %d demo products into %q collection", seeded, ProductCollection)
}
