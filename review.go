package wapy

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// ProductReview is an immutable view over one customer review object.
// Accessors return nil when the response omits the field.
type ProductReview struct {
	payload
}

func newProductReview(doc gjson.Result) ProductReview {
	return ProductReview{payload: payload{doc: doc}}
}

// Reviewer is the name or alias of the reviewer.
func (r ProductReview) Reviewer() *string { return r.str("reviewer") }

// Title of the review.
func (r ProductReview) Title() *string { return r.text("title") }

// Text is the complete review body.
func (r ProductReview) Text() *string { return r.text("reviewText") }

// Date the review was submitted, as reported by Walmart.
func (r ProductReview) Date() *string { return r.text("submissionTime") }

// UpVotes is the number of up votes for this review.
func (r ProductReview) UpVotes() *int { return r.integer("upVotes") }

// DownVotes is the number of down votes for this review.
func (r ProductReview) DownVotes() *int { return r.integer("downVotes") }

// Rating is the overall rating the reviewer gave, out of 5.
func (r ProductReview) Rating() *int { return r.integer("overallRating.rating") }

// ProductReviews lists the customer reviews written for an item.
func (c *Client) ProductReviews(ctx context.Context, itemID string) ([]ProductReview, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, errors.New("item ID is required")
	}

	doc, err := c.get(ctx, "product reviews", "reviews/"+url.PathEscape(itemID), nil)
	if err != nil {
		return nil, err
	}

	return lo.Map(doc.Get("reviews").Array(), func(item gjson.Result, _ int) ProductReview {
		return newProductReview(item)
	}), nil
}
