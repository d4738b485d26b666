// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"

	"github.com/zvsdev/column-go/internal/version"
)

// newClientWithServer starts a mock Column server from the given routes and
// returns a Client pointed at it.
func newClientWithServer(t *testing.T, routes ...func(*mux.Router)) (*Client, *httptest.Server) {
	t.Helper()

	r := mux.NewRouter()
	for i := range routes {
		routes[i](r) // Add each route
	}
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	client, err := NewClient(log.NewNopLogger(), "test_6hC9DF3C0UqiJkLAHn2nW7lq", server.URL, server.Client())
	if err != nil {
		t.Fatal(err)
	}
	return client, server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func TestClient__environment(t *testing.T) {
	client, err := NewClient(nil, "test_6hC9DF3C0UqiJkLAHn2nW7lq", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if v := client.Environment(); v != EnvironmentTest {
		t.Errorf("got %q", v)
	}

	client, err = NewClient(nil, "live_6hC9DF3C0UqiJkLAHn2nW7lq", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if v := client.Environment(); v != EnvironmentLive {
		t.Errorf("got %q", v)
	}
}

func TestClient__invalidAPIKey(t *testing.T) {
	keys := []string{"", "sk_6hC9DF3C0UqiJkLAHn2nW7lq", "TEST_6hC9DF3C0UqiJkLAHn2nW7lq", "livekey"}
	for _, key := range keys {
		if _, err := NewClient(nil, key, "", nil); !errors.Is(err, ErrInvalidAPIKey) {
			t.Errorf("key %q: expected ErrInvalidAPIKey, got %v", key, err)
		}
	}
}

func TestClient__buildAddress(t *testing.T) {
	client := &Client{
		endpoint: "http://localhost:8080",
		logger:   log.NewNopLogger(),
	}
	if v := client.buildAddress("/entities/enti_123"); v != "http://localhost:8080/entities/enti_123" {
		t.Errorf("got %q", v)
	}

	client.endpoint = "http://localhost:8080/"
	if v := client.buildAddress("/entities/enti_123"); v != "http://localhost:8080/entities/enti_123" {
		t.Errorf("got %q", v)
	}

	client.endpoint = "https://api.column.com/v1"
	if v := client.buildAddress("/transfers/book"); v != "https://api.column.com/v1/transfers/book" {
		t.Errorf("got %q", v)
	}
}

func TestClient__defaultEndpoint(t *testing.T) {
	client, err := NewClient(nil, "test_6hC9DF3C0UqiJkLAHn2nW7lq", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if client.endpoint != productionAddress {
		t.Errorf("got %q", client.endpoint)
	}
}

func TestClient__requestHeaders(t *testing.T) {
	apiKey := "test_6hC9DF3C0UqiJkLAHn2nW7lq"

	var gotAuth, gotUserAgent, gotIdempotency string
	client, _ := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("GET").Path("/account-numbers/{id}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotUserAgent = r.Header.Get("User-Agent")
			gotIdempotency = r.Header.Get("X-Idempotency-Key")
			writeJSON(w, http.StatusOK, `{"id":"acno_123","bank_account_id":"bacc_1","bic":"","description":"","routing_number":"084106768","created_at":"2021-10-13T16:39:55Z"}`)
		})
	})

	if _, err := client.GetAccountNumber(context.TODO(), "acno_123"); err != nil {
		t.Fatal(err)
	}

	// basic auth with an empty username and the API key as password
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+apiKey))
	if gotAuth != want {
		t.Errorf("got %q, want %q", gotAuth, want)
	}
	if expected := fmt.Sprintf("column-go/%s", version.Version); gotUserAgent != expected {
		t.Errorf("got %q", gotUserAgent)
	}
	if gotIdempotency != "" {
		t.Errorf("unexpected X-Idempotency-Key: %q", gotIdempotency)
	}
}

func TestClient__contextCancellation(t *testing.T) {
	client, _ := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("GET").Path("/counterparties/{id}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.GetCounterparty(ctx, "cpty_123"); err == nil {
		t.Fatal("expected an error from a canceled context")
	} else if !strings.Contains(err.Error(), "context canceled") {
		t.Errorf("got %v", err)
	}
}

func TestNewIdempotencyKey(t *testing.T) {
	k1, k2 := NewIdempotencyKey(), NewIdempotencyKey()
	if k1 == "" || k2 == "" {
		t.Fatal("empty idempotency key")
	}
	if k1 == k2 {
		t.Errorf("keys not unique: %q", k1)
	}
}
