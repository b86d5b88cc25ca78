// Command seed fills an empty store with a demo product list so the catalog
// pages have something to show on first run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/localstore"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/pubsub"

	"github.com/google/uuid"
)

type seedProduct struct {
	name     string
	priceMin int64
	priceMax int64
	img      string
	types    []string
	category string
}

var demoProducts = []seedProduct{
	{"Colacola", 2000, 2500, "https://via.placeholder.com/200?text=Cola+1", []string{"Bottle", "Can"}, "Drinks"},
	{"Top Aroma", 1000, 1500, "https://via.placeholder.com/200?text=Aroma+2", []string{"Pack", "Single"}, "Export"},
	{"Sparkle Water", 500, 750, "https://via.placeholder.com/200?text=Sparkle+3", []string{"Glass", "Bottle"}, "Color"},
	{"Lemon Twist", 600, 900, "https://via.placeholder.com/200?text=Lemon+4", []string{"Bottle", "Can"}, "Price"},
	{"Ginger Ale", 1200, 1600, "https://via.placeholder.com/200?text=Ginger+5", []string{"Bottle", "Can"}, "Popular"},
	{"Tropical Mix", 1800, 2200, "https://via.placeholder.com/200?text=Tropical+6", []string{"Pack", "Single"}, "Drinks"},
	{"Orange Splash", 700, 1000, "https://via.placeholder.com/200?text=Orange+7", []string{"Bottle", "Carton"}, "Export"},
	{"Mango Delight", 1500, 1900, "https://via.placeholder.com/200?text=Mango+8", []string{"Bottle", "Single"}, "Color"},
	{"Iced Tea", 800, 1100, "https://via.placeholder.com/200?text=IcedTea+9", []string{"Bottle", "Can"}, "Price"},
	{"Berry Rush", 900, 1300, "https://via.placeholder.com/200?text=Berry+10", []string{"Pack", "Single"}, "Popular"},
	{"Pure Spring", 400, 600, "https://via.placeholder.com/200?text=Spring+11", []string{"Glass", "Bottle"}, "Drinks"},
	{"Energy Max", 2500, 3000, "https://via.placeholder.com/200?text=Energy+12", []string{"Can", "Pack"}, "Export"},
	{"Citrus Blast", 1100, 1400, "https://via.placeholder.com/200?text=Citrus+13", []string{"Bottle", "Can"}, "Color"},
	{"Herbal Sip", 950, 1250, "https://via.placeholder.com/200?text=Herbal+14", []string{"Pack", "Single"}, "Price"},
	{"Coffee Cold", 1400, 1700, "https://via.placeholder.com/200?text=Coffee+15", []string{"Bottle", "Can"}, "Popular"},
	{"Vanilla Cream", 1300, 1600, "https://via.placeholder.com/200?text=Vanilla+16", []string{"Pack", "Single"}, "Drinks"},
	{"Sour Cherry", 1250, 1550, "https://via.placeholder.com/200?text=Cherry+17", []string{"Bottle", "Can"}, "Export"},
	{"Pineapple Joy", 1150, 1450, "https://via.placeholder.com/200?text=Pineapple+18", []string{"Bottle", "Single"}, "Color"},
	{"Apple Crisp", 800, 1050, "https://via.placeholder.com/200?text=Apple+19", []string{"Glass", "Bottle"}, "Price"},
	{"Lime Zing", 650, 900, "https://via.placeholder.com/200?text=Lime+20", []string{"Can", "Bottle"}, "Popular"},
	{"Coconut Wave", 1700, 2100, "https://via.placeholder.com/200?text=Coconut+21", []string{"Pack", "Single"}, "Drinks"},
	{"Mint Cooler", 700, 950, "https://via.placeholder.com/200?text=Mint+22", []string{"Bottle", "Can"}, "Export"},
	{"Spiced Cola", 2100, 2600, "https://via.placeholder.com/200?text=Spiced+23", []string{"Bottle", "Can"}, "Color"},
	{"Tonic Water", 600, 850, "https://via.placeholder.com/200?text=Tonic+24", []string{"Glass", "Bottle"}, "Price"},
	{"Sparkling Berry", 980, 1280, "https://via.placeholder.com/200?text=SparkleB+25", []string{"Pack", "Single"}, "Popular"},
	{"Grape Soda", 900, 1200, "https://via.placeholder.com/200?text=Grape+26", []string{"Bottle", "Can"}, "Drinks"},
	{"Herb Tonic", 1500, 1850, "https://via.placeholder.com/200?text=Herb+27", []string{"Bottle", "Single"}, "Export"},
	{"Peach Punch", 1100, 1400, "https://via.placeholder.com/200?text=Peach+28", []string{"Pack", "Single"}, "Color"},
	{"Berry Fusion", 1000, 1350, "https://via.placeholder.com/200?text=BerryF+29", []string{"Bottle", "Can"}, "Price"},
	{"Cranberry Pop", 1200, 1500, "https://via.placeholder.com/200?text=Cran+30", []string{"Bottle", "Single"}, "Popular"},
	{"Lemonade Classic", 500, 800, "https://via.placeholder.com/200?text=Lemonade+31", []string{"Glass", "Bottle"}, "Drinks"},
	{"Cola Zero", 1900, 2300, "https://via.placeholder.com/200?text=ColaZero+32", []string{"Can", "Bottle"}, "Export"},
	{"Iced Mocha", 1600, 2000, "https://via.placeholder.com/200?text=Mocha+33", []string{"Bottle", "Can"}, "Color"},
	{"Vanilla Chill", 1250, 1550, "https://via.placeholder.com/200?text=Vanilla+34", []string{"Pack", "Single"}, "Price"},
	{"Herbal Spark", 1350, 1650, "https://via.placeholder.com/200?text=Herbal+35", []string{"Bottle", "Can"}, "Popular"},
	{"Berry Zest", 950, 1250, "https://via.placeholder.com/200?text=BerryZ+36", []string{"Pack", "Single"}, "Drinks"},
}

func main() {
	force := flag.Bool("force", false, "overwrite existing products")
	flag.Parse()

	if err := run(*force); err != nil {
		fmt.Fprintln(os.Stderr, "seed failed:", err)
		os.Exit(1)
	}
}

func run(force bool) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	store, err := localstore.New(localstore.FileStoreParams{
		Config:    cfg,
		Logger:    logger,
		Publisher: pubsub.NewNoopPublisher(logger),
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	productRepo := localstore.NewProductRepository(store)
	customerRepo := localstore.NewCustomerRepository(store)

	existing, err := productRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 && !force {
		logger.Info("store already has products, nothing to do",
			slog.Int("count", len(existing)),
		)

		return nil
	}

	now := time.Now()
	for i := len(demoProducts) - 1; i >= 0; i-- {
		p := demoProducts[i]
		product := &entity.Product{
			ID:        uuid.New(),
			Name:      p.name,
			PriceMin:  p.priceMin,
			PriceMax:  p.priceMax,
			Image:     p.img,
			Types:     p.types,
			Category:  p.category,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
	}

	categories, err := customerRepo.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		if err := customerRepo.SaveCategories(ctx, entity.DefaultCustomerCategories()); err != nil {
			return err
		}
	}

	logger.Info("store seeded",
		slog.Int("products", len(demoProducts)),
		slog.String("path", cfg.Store.Path),
	)

	return nil
}
