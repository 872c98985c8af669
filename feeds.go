package wapy

import (
	"context"
	"net/url"
	"strconv"
)

// TrendingProducts lists what is bestselling on walmart.com right now. The
// feed is curated from browse and sales activity and refreshed multiple
// times a day.
func (c *Client) TrendingProducts(ctx context.Context) ([]Product, error) {
	doc, err := c.get(ctx, "trending products", "trends", nil)
	if err != nil {
		return nil, err
	}
	return c.products(doc.Get("items")), nil
}

// BestsellerProducts lists the bestselling items of one category. The
// category id comes from the Taxonomy API.
func (c *Client) BestsellerProducts(ctx context.Context, categoryID int) ([]Product, error) {
	return c.feed(ctx, "bestsellers", categoryID)
}

// ClearanceProducts lists the items on clearance in one category.
func (c *Client) ClearanceProducts(ctx context.Context, categoryID int) ([]Product, error) {
	return c.feed(ctx, "clearance", categoryID)
}

// SpecialBuyProducts lists the items of one category with a Special Buy
// offer on them.
func (c *Client) SpecialBuyProducts(ctx context.Context, categoryID int) ([]Product, error) {
	return c.feed(ctx, "specialbuy", categoryID)
}

func (c *Client) feed(ctx context.Context, feed string, categoryID int) ([]Product, error) {
	params := url.Values{}
	params.Set("categoryId", strconv.Itoa(categoryID))

	doc, err := c.get(ctx, feed+" feed", "feeds/"+feed, params)
	if err != nil {
		return nil, err
	}
	return c.products(doc.Get("items")), nil
}
