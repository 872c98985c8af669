package wapy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductLookup_SetsQueryAndParsesResponse(t *testing.T) {
	t.Parallel()

	var capturedReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		_, _ = w.Write([]byte(`{
			"itemId": 12417882,
			"name": "Apple EarPods with Remote and Mic",
			"salePrice": 21.99,
			"brandName": "Apple",
			"stock": "Available"
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:     "test-api-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	product, err := client.ProductLookup(context.Background(), "12417882")
	if err != nil {
		t.Fatalf("product lookup: %v", err)
	}

	if capturedReq == nil {
		t.Fatal("expected request to be captured")
	}
	if capturedReq.URL.Path != "/items/12417882" {
		t.Fatalf("unexpected path: %s", capturedReq.URL.Path)
	}
	query := capturedReq.URL.Query()
	if got := query.Get("apiKey"); got != "test-api-key" {
		t.Fatalf("unexpected apiKey query value: %q", got)
	}
	if got := query.Get("format"); got != "json" {
		t.Fatalf("unexpected format query value: %q", got)
	}
	if got := query.Get("richAttributes"); got != "true" {
		t.Fatalf("unexpected richAttributes query value: %q", got)
	}

	if product.Name() == nil || *product.Name() != "Apple EarPods with Remote and Mic" {
		t.Fatalf("unexpected product name: %v", product.Name())
	}
	if product.SalePrice() == nil || *product.SalePrice() != 21.99 {
		t.Fatalf("unexpected sale price: %v", product.SalePrice())
	}
	if product.ItemID() == nil || *product.ItemID() != 12417882 {
		t.Fatalf("unexpected item id: %v", product.ItemID())
	}
}

func TestProductLookup_Validation(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{APIKey: "test-api-key", BaseURL: "https://example.com"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.ProductLookup(context.Background(), "   ")
	if err == nil || !strings.Contains(err.Error(), "item ID is required") {
		t.Fatalf("expected item ID validation error, got: %v", err)
	}
}

func TestProductLookup_StatusErrorSurfacesVendorCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"INVALID_API_KEY","message":"Invalid API key or this API is not supported for this account"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:     "bad-api-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.ProductLookup(context.Background(), "12417882")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "INVALID_API_KEY") {
		t.Fatalf("error does not surface vendor code: %v", err)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", statusErr.StatusCode)
	}
	if statusErr.Code != "INVALID_API_KEY" {
		t.Fatalf("unexpected code: %q", statusErr.Code)
	}
}

func TestProductLookup_StatusErrorParsesErrorsArray(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"code":4002,"message":"Invalid itemId"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:     "test-api-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.ProductLookup(context.Background(), "not-an-id")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 400") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid itemId") {
		t.Fatalf("error does not surface vendor message: %v", err)
	}
}

func TestProductLookup_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:     "test-api-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.ProductLookup(context.Background(), "12417882")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("unexpected error: %v", err)
	}
}
