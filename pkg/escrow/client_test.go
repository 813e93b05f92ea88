package escrow

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetAccountParsesNativeBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/GABC" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"balances":[{"balance":"250.5","asset_type":"native"},{"balance":"10","asset_type":"credit_alphanum4"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	snapshot, err := client.GetAccount(context.Background(), "GABC")
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if snapshot.Balance != 250.5 {
		t.Errorf("expected native balance 250.5, got %v", snapshot.Balance)
	}
	if !snapshot.IsFunded {
		t.Error("expected account with balance to be funded")
	}
}

func TestGetAccountNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	if _, err := client.GetAccount(context.Background(), "GABC"); err == nil {
		t.Fatal("expected error for missing account")
	}
}

func TestGetAccountMockMode(t *testing.T) {
	client := NewClient("http://unused.invalid", true)
	snapshot, err := client.GetAccount(context.Background(), "GABC")
	if err != nil {
		t.Fatalf("mock GetAccount failed: %v", err)
	}
	if snapshot.IsFunded {
		t.Error("mock account should start unfunded")
	}
}
