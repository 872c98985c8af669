package wapy

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	// maxSearchItems is the largest page size the search endpoint accepts.
	maxSearchItems = 25
	// defaultSearchItems is the page size Walmart uses when numItems is not
	// sent; the page-to-start translation has to assume the same.
	defaultSearchItems = 10
)

// SearchOptions enumerate the optional search parameters. The zero value
// asks for Walmart's defaults.
//
// Walmart paginates with a raw start offset; this client abstracts that to a
// 1-based Page of NumItems results each, matching how callers actually read
// result pages.
type SearchOptions struct {
	// NumItems is the number of matching items per page, at most 25.
	// Walmart defaults to 10.
	NumItems int
	// Page selects which page of NumItems results to return, starting at 1.
	Page int
	// CategoryID scopes the search to one category. Must match an id from
	// the Taxonomy API.
	CategoryID string
	// Sort criteria: relevance, price, title, bestseller, customerRating,
	// or new. Walmart defaults to relevance.
	Sort string
	// Order is asc or desc; only honored for the price, title and
	// customerRating sorts.
	Order string
	// ResponseGroup selects the returned field set: base or full. Walmart
	// defaults to base.
	ResponseGroup string
	// Facet enables facets on the response.
	Facet bool
	// FacetFilter filters on facet attribute values, as
	// <facet-name>:<facet-value>.
	FacetFilter string
	// FacetRange is the range filter for facets with range values, like
	// price.
	FacetRange string
	// RichAttributes overrides the richAttributes=true default sent with
	// every request.
	RichAttributes *bool
}

// values renders the options as query parameters. A nil receiver renders
// none.
func (o *SearchOptions) values() (url.Values, error) {
	params := url.Values{}
	if o == nil {
		return params, nil
	}

	if o.NumItems < 0 || o.NumItems > maxSearchItems {
		return nil, fmt.Errorf("numItems must be between 1 and %d, got %d", maxSearchItems, o.NumItems)
	}
	if o.Page < 0 {
		return nil, fmt.Errorf("page must be positive, got %d", o.Page)
	}

	if o.NumItems > 0 {
		params.Set("numItems", strconv.Itoa(o.NumItems))
	}
	if o.Page > 0 {
		perPage := o.NumItems
		if perPage == 0 {
			perPage = defaultSearchItems
		}
		params.Set("start", strconv.Itoa(perPage*(o.Page-1)+1))
	}
	if o.CategoryID != "" {
		params.Set("categoryId", o.CategoryID)
	}
	if o.Sort != "" {
		params.Set("sort", o.Sort)
	}
	if o.Order != "" {
		params.Set("order", o.Order)
	}
	if o.ResponseGroup != "" {
		params.Set("responseGroup", o.ResponseGroup)
	}
	if o.Facet {
		params.Set("facet", "on")
	}
	if o.FacetFilter != "" {
		params.Set("facet.filter", o.FacetFilter)
	}
	if o.FacetRange != "" {
		params.Set("facet.range", o.FacetRange)
	}
	if o.RichAttributes != nil {
		params.Set("richAttributes", strconv.FormatBool(*o.RichAttributes))
	}

	return params, nil
}
