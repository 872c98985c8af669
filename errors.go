package wapy

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNoLinkShareID is returned by Product.TrackingURL when the client was
// constructed without Config.LinkShareID.
var ErrNoLinkShareID = errors.New("no LinkShare ID configured: set Config.LinkShareID to read product tracking URLs")

// ErrInvalidImageSize is returned by Product.ImagesBySize for sizes other
// than thumbnail, medium, or large.
var ErrInvalidImageSize = errors.New(`image size must be "thumbnail", "medium" or "large"`)

// StatusError captures non-2xx HTTP responses from the Walmart API. Code and
// Message carry the machine-readable error payload when the body had one.
type StatusError struct {
	Operation  string
	StatusCode int
	Code       string
	Message    string
	Body       string
}

// newStatusError builds a StatusError, lifting the vendor code and message
// out of the body. Walmart answers with either {"code","message"} or
// {"errors":[{"code","message"}]} depending on the endpoint.
func newStatusError(operation string, statusCode int, body string) *StatusError {
	statusErr := &StatusError{
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
	}
	if body == "" || !gjson.Valid(body) {
		return statusErr
	}

	payload := gjson.Parse(body)
	statusErr.Code = payload.Get("code").String()
	statusErr.Message = payload.Get("message").String()
	if statusErr.Code == "" && statusErr.Message == "" {
		first := payload.Get("errors.0")
		statusErr.Code = first.Get("code").String()
		statusErr.Message = first.Get("message").String()
	}
	return statusErr
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s request failed: status %d", e.Operation, e.StatusCode)
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%s: %s: %s", msg, e.Code, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%s: %s", msg, e.Code)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", msg, e.Message)
	case e.Body != "":
		return fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return msg
}
