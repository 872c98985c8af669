package wapy

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// ProductRecommendations lists items related to the given item, most
// relevant for the customer first. Walmart returns at most 10.
func (c *Client) ProductRecommendations(ctx context.Context, itemID string) ([]Product, error) {
	return c.recommendations(ctx, "product recommendations", "nbp", itemID)
}

// PostBrowsedProducts lists items recommended from product viewing history
// around the given item, most relevant first. Walmart returns at most 10.
func (c *Client) PostBrowsedProducts(ctx context.Context, itemID string) ([]Product, error) {
	return c.recommendations(ctx, "post browsed products", "postbrowse", itemID)
}

// Both recommendation endpoints answer with a bare JSON array of items.
func (c *Client) recommendations(ctx context.Context, operation, path, itemID string) ([]Product, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, errors.New("item ID is required")
	}

	params := url.Values{}
	params.Set("itemId", itemID)

	doc, err := c.get(ctx, operation, path, params)
	if err != nil {
		return nil, err
	}

	return c.products(doc), nil
}
