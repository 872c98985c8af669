package wapy

import (
	"html"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// payload wraps one decoded JSON object and answers attribute lookups the
// way the Walmart responses are documented: a field that is missing, null,
// or not coercible to the requested type reads as nil, never an error.
type payload struct {
	doc gjson.Result
}

func (p payload) str(key string) *string {
	v := p.doc.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	return &s
}

// text is str with HTML entities unescaped; Walmart ships descriptions and
// review bodies with escaped markup.
func (p payload) text(key string) *string {
	s := p.str(key)
	if s == nil {
		return nil
	}
	unescaped := html.UnescapeString(*s)
	return &unescaped
}

func (p payload) float(key string) *float64 {
	v := p.doc.Get(key)
	switch v.Type {
	case gjson.Number:
		f := v.Float()
		return &f
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func (p payload) integer(key string) *int {
	v := p.doc.Get(key)
	switch v.Type {
	case gjson.Number:
		n := int(v.Int())
		return &n
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// id reads the 64-bit identifier fields (itemId, parentItemId).
func (p payload) id(key string) *int64 {
	v := p.doc.Get(key)
	switch v.Type {
	case gjson.Number:
		n := v.Int()
		return &n
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

func (p payload) boolean(key string) *bool {
	v := p.doc.Get(key)
	switch v.Type {
	case gjson.True, gjson.False:
		b := v.Bool()
		return &b
	default:
		return nil
	}
}

// dimension decomposes the combined "L x W x H" dimensions string and
// returns the value at index (0 length, 1 width, 2 height). A missing or
// malformed string yields nil for every index.
func (p payload) dimension(index int) *float64 {
	dims := p.doc.Get("dimensions")
	if dims.Type != gjson.String {
		return nil
	}
	parts := strings.Split(dims.Str, " x ")
	if len(parts) != 3 {
		return nil
	}
	values := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		values[i] = f
	}
	return &values[index]
}
