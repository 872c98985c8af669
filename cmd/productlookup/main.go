package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"wapy"
	"wapy/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitErr(fmt.Errorf("load config: %w", err))
	}

	var (
		itemID      = flag.String("item", "", "item ID to look up")
		apiKey      = flag.String("api-key", cfg.APIKey, "Walmart Open API key")
		linkShareID = flag.String("linkshare-id", cfg.LinkShareID, "LinkShare ID for tracking URLs")
		baseURL     = flag.String("base-url", cfg.BaseURL, "Walmart Open API base URL")
		reviews     = flag.Bool("reviews", false, "also print customer reviews for the item")
		timeout     = flag.Duration("timeout", 30*time.Second, "overall timeout for Walmart calls")
	)
	flag.Parse()

	if *itemID == "" {
		exitErr(fmt.Errorf("specify an item ID with --item"))
	}

	client, err := wapy.NewClient(wapy.Config{
		APIKey:      *apiKey,
		LinkShareID: *linkShareID,
		BaseURL:     *baseURL,
	})
	if err != nil {
		exitErr(fmt.Errorf("create Walmart client: %w", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	product, err := client.ProductLookup(ctx, *itemID)
	if err != nil {
		exitErr(err)
	}

	fmt.Printf("Item:    %s\n", orNA(product.Name()))
	fmt.Printf("Brand:   %s\n", orNA(product.BrandName()))
	fmt.Printf("Price:   %s\n", orNAFloat(product.SalePrice()))
	fmt.Printf("MSRP:    %s\n", orNA(product.MSRP()))
	fmt.Printf("Stock:   %s\n", orNA(product.Stock()))
	fmt.Printf("Rating:  %s (%s reviews)\n", orNAFloat(product.CustomerRating()), orNAInt(product.NumReviews()))
	if length, width, height := product.Length(), product.Width(), product.Height(); length != nil && width != nil && height != nil {
		fmt.Printf("Size:    %.1f x %.1f x %.1f\n", *length, *width, *height)
	}

	images, err := product.Images()
	if err != nil {
		exitErr(err)
	}
	for _, imageURL := range images {
		fmt.Printf("Image:   %s\n", imageURL)
	}

	if *linkShareID != "" {
		trackingURL, err := product.TrackingURL()
		if err != nil {
			exitErr(err)
		}
		if trackingURL != nil {
			fmt.Printf("Track:   %s\n", *trackingURL)
		}
	}

	if *reviews {
		productReviews, err := client.ProductReviews(ctx, *itemID)
		if err != nil {
			exitErr(err)
		}
		for _, review := range productReviews {
			fmt.Printf("Review:  %s [%s/5] %s\n", orNA(review.Reviewer()), orNAInt(review.Rating()), orNA(review.Title()))
		}
	}
}

func orNA(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "n/a"
	}
	return *s
}

func orNAFloat(f *float64) string {
	if f == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *f)
}

func orNAInt(n *int) string {
	if n == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *n)
}

func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
