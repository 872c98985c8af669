package wapy

import (
	"context"
	"errors"
	"strings"
)

// Search runs a text search over the walmart.com catalogue and returns the
// matching items available for sale online, in the order Walmart ranked
// them. opts may be nil for Walmart's defaults.
// docs: https://developer.walmartlabs.com/docs/read/Search_API
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) ([]Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("search query is required")
	}

	params, err := opts.values()
	if err != nil {
		return nil, err
	}
	params.Set("query", query)

	doc, err := c.get(ctx, "search", "search", params)
	if err != nil {
		return nil, err
	}

	return c.products(doc.Get("items")), nil
}
