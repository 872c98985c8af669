package wapy

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// ProductLookup fetches a single item by its item id.
// docs: https://developer.walmartlabs.com/docs/read/Item_Field_Description
func (c *Client) ProductLookup(ctx context.Context, itemID string) (*Product, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, errors.New("item ID is required")
	}

	doc, err := c.get(ctx, "product lookup", "items/"+url.PathEscape(itemID), nil)
	if err != nil {
		return nil, err
	}

	product := newProduct(doc, c.linkShareID)
	return &product, nil
}
