package productapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetCustomerProductsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/customer/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "dogs" {
			t.Errorf("type param = %q, want dogs", got)
		}
		if got := r.URL.Query().Get("sub"); got != "food" {
			t.Errorf("sub param = %q, want food", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"id":"p1","name":"A"},{"id":"p2","name":"B"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	rows, err := client.GetCustomerProducts(context.Background(), Params{Type: "dogs", Sub: "food"})
	if err != nil {
		t.Fatalf("GetCustomerProducts returned error: %v", err)
	}
	if len(rows) != 2 || rows[0]["id"] != "p1" {
		t.Errorf("rows = %v", rows)
	}
}

func TestGetCustomerProductsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1"}]`))
	}))
	defer srv.Close()

	rows, err := NewClient(srv.URL).GetCustomerProducts(context.Background(), Params{})
	if err != nil {
		t.Fatalf("bare array response rejected: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %v", rows)
	}
}

func TestGetCustomerProductsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).GetCustomerProducts(context.Background(), Params{}); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestGetCustomerProductsUndecodable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"just a string"`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).GetCustomerProducts(context.Background(), Params{}); err == nil {
		t.Fatal("expected an error for an undecodable body")
	}
}
