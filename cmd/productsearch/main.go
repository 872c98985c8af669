package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"wapy"
	"wapy/internal/config"

	"github.com/samber/lo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitErr(fmt.Errorf("load config: %w", err))
	}

	var (
		query      = flag.String("query", "", "search text")
		numItems   = flag.Int("num-items", 0, "items per page, max 25 (0 for Walmart's default)")
		page       = flag.Int("page", 0, "1-based result page")
		categoryID = flag.String("category", "", "category ID to search within")
		sort       = flag.String("sort", "", "sort criteria: relevance, price, title, bestseller, customerRating, new")
		order      = flag.String("order", "", "sort order: asc or desc")
		facet      = flag.String("facet-filter", "", "facet filter as <facet-name>:<facet-value>")
		apiKey     = flag.String("api-key", cfg.APIKey, "Walmart Open API key")
		baseURL    = flag.String("base-url", cfg.BaseURL, "Walmart Open API base URL")
		timeout    = flag.Duration("timeout", 30*time.Second, "overall timeout for Walmart calls")
	)
	flag.Parse()

	if *query == "" {
		exitErr(fmt.Errorf("specify search text with --query"))
	}

	client, err := wapy.NewClient(wapy.Config{
		APIKey:      *apiKey,
		LinkShareID: cfg.LinkShareID,
		BaseURL:     *baseURL,
	})
	if err != nil {
		exitErr(fmt.Errorf("create Walmart client: %w", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	products, err := client.Search(ctx, *query, &wapy.SearchOptions{
		NumItems:    *numItems,
		Page:        *page,
		CategoryID:  *categoryID,
		Sort:        *sort,
		Order:       *order,
		Facet:       *facet != "",
		FacetFilter: *facet,
	})
	if err != nil {
		exitErr(err)
	}

	fmt.Printf("Found %d items\n", len(products))
	for _, product := range products {
		name := "n/a"
		if n := product.Name(); n != nil {
			name = *n
		}
		price := "n/a"
		if p := product.SalePrice(); p != nil {
			price = fmt.Sprintf("$%.2f", *p)
		}
		fmt.Printf("%s  %s\n", price, name)
	}

	brands := lo.CountValuesBy(products, func(product wapy.Product) string {
		if brand := product.BrandName(); brand != nil {
			return *brand
		}
		return "(unbranded)"
	})
	fmt.Printf("Found %d unique brands\n", len(brands))
	for name, count := range brands {
		fmt.Printf("%s :%d\n", name, count)
	}
}

func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
