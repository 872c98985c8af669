package wapy

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Image size categories accepted by Product.ImagesBySize.
const (
	ImageSizeThumbnail = "thumbnail"
	ImageSizeMedium    = "medium"
	ImageSizeLarge     = "large"
)

// Product is an immutable view over one item object from a Walmart response.
// Accessors return nil when the response omits the field; the only accessors
// that can fail are TrackingURL and ImagesBySize.
type Product struct {
	payload
	linkShareID string
}

func newProduct(doc gjson.Result, linkShareID string) Product {
	return Product{payload: payload{doc: doc}, linkShareID: linkShareID}
}

// ItemID uniquely identifies an item.
func (p Product) ItemID() *int64 { return p.id("itemId") }

// ParentItemID is the item id of the base version of this item. Present only
// when the item is a variant (different color or size) of a base item.
func (p Product) ParentItemID() *int64 { return p.id("parentItemId") }

// Name is the standard name of the item.
func (p Product) Name() *string { return p.text("name") }

// MSRP is the manufacturer suggested retail price.
func (p Product) MSRP() *string { return p.str("msrp") }

// SalePrice is the selling price for the item in USD.
func (p Product) SalePrice() *float64 { return p.float("salePrice") }

// UPC is the unique product code.
func (p Product) UPC() *string { return p.str("upc") }

// CategoryPath is the breadcrumb for the item, describing the category level
// hierarchy it falls under.
func (p Product) CategoryPath() *string { return p.str("categoryPath") }

// CategoryNode is the category id for this item's category, usable as the
// categoryId parameter of search and feed calls.
func (p Product) CategoryNode() *string { return p.str("categoryNode") }

func (p Product) ShortDescription() *string { return p.text("shortDescription") }

func (p Product) LongDescription() *string { return p.text("longDescription") }

func (p Product) BrandName() *string { return p.str("brandName") }

// ThumbnailImage is the small 100x100 jpeg for the item.
func (p Product) ThumbnailImage() *string { return p.str("thumbnailImage") }

// MediumImage is the 180x180 jpeg for the item.
func (p Product) MediumImage() *string { return p.str("mediumImage") }

// LargeImage is the 450x450 jpeg for the item.
func (p Product) LargeImage() *string { return p.str("largeImage") }

// ProductURL is the walmart.com page for the item.
func (p Product) ProductURL() *string { return p.str("productUrl") }

func (p Product) ModelNumber() *string { return p.str("modelNumber") }

func (p Product) Size() *string { return p.str("size") }

func (p Product) Color() *string { return p.str("color") }

// AvailableOnline reports whether the item is currently for sale on
// walmart.com.
func (p Product) AvailableOnline() *bool { return p.boolean("availableOnline") }

// Stock is the indicative online quantity: one of Available, Limited Supply,
// Last few items, Not available.
func (p Product) Stock() *string { return p.str("stock") }

// CustomerRating is the average customer rating out of 5.
func (p Product) CustomerRating() *float64 { return p.float("customerRating") }

// NumReviews is the number of customer reviews for this item.
func (p Product) NumReviews() *int { return p.integer("numReviews") }

// Weight of the item. Only present when rich attributes were requested.
func (p Product) Weight() *float64 { return p.float("weight") }

// Length is the first value of the combined dimensions attribute:
// dimensions "2.0 x 3.0 x 4.0" reads as length 2.0.
func (p Product) Length() *float64 { return p.dimension(0) }

// Width is the second value of the combined dimensions attribute.
func (p Product) Width() *float64 { return p.dimension(1) }

// Height is the third value of the combined dimensions attribute.
func (p Product) Height() *float64 { return p.dimension(2) }

// Attribute reads any response field as a string. Callers needing a numeric
// value parse it themselves.
func (p Product) Attribute(name string) *string { return p.str(name) }

// Images returns every large image for the item, primary image first.
func (p Product) Images() ([]string, error) {
	return p.ImagesBySize(ImageSizeLarge)
}

// ImagesBySize returns the item's image URLs for one size category, primary
// image first. Returns nil when the response carried no image entities, and
// ErrInvalidImageSize for a size outside the documented categories.
func (p Product) ImagesBySize(size string) ([]string, error) {
	switch size {
	case ImageSizeThumbnail, ImageSizeMedium, ImageSizeLarge:
	default:
		return nil, fmt.Errorf("%w, got %q", ErrInvalidImageSize, size)
	}

	entities := p.doc.Get("imageEntities")
	if !entities.IsArray() {
		return nil, nil
	}

	var primary string
	var images []string
	entities.ForEach(func(_, entity gjson.Result) bool {
		imageURL := entity.Get(size + "Image").String()
		if imageURL == "" {
			return true
		}
		if entity.Get("entityType").String() == "PRIMARY" {
			primary = imageURL
		} else {
			images = append(images, imageURL)
		}
		return true
	})
	if primary != "" {
		images = append([]string{primary}, images...)
	}
	return images, nil
}

// TrackingURL is the deep link to this item's walmart.com page with the
// affiliate LinkShare id substituted in, so sales from the link are
// attributed to the affiliate. Returns ErrNoLinkShareID when the client was
// built without one, and nil when the response carried no tracking URL.
func (p Product) TrackingURL() (*string, error) {
	if p.linkShareID == "" {
		return nil, ErrNoLinkShareID
	}
	template := p.str("productTrackingUrl")
	if template == nil {
		return nil, nil
	}
	trackingURL := strings.ReplaceAll(*template, "|LSNID|", p.linkShareID)
	return &trackingURL, nil
}
