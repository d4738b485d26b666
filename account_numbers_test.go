// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/antihax/optional"
	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"
)

func TestAccountNumber__create(t *testing.T) {
	var rawBody map[string]interface{}
	client, _ := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("POST").Path("/bank-accounts/{id}/account-number").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&rawBody)
			writeJSON(w, http.StatusOK, `{"id":"acno_new","bank_account_id":"bacc_123","bic":"CLNOUS66","description":"vendor payouts","routing_number":"084106768","created_at":"2021-10-13T16:39:55Z"}`)
		})
	})

	num, err := client.CreateAccountNumber(context.TODO(), "bacc_123", AccountNumberCreateParams{
		Description: "vendor payouts",
	})
	if err != nil {
		t.Fatal(err)
	}
	if num.ID != "acno_new" {
		t.Errorf("got %q", num.ID)
	}
	if num.BankAccountID != "bacc_123" {
		t.Errorf("got %q", num.BankAccountID)
	}
	if rawBody["description"] != "vendor payouts" {
		t.Errorf("got %v", rawBody)
	}
}

func TestAccountNumber__list(t *testing.T) {
	var gotQuery url.Values
	client, _ := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("GET").Path("/bank-accounts/{id}/account-numbers").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			writeJSON(w, http.StatusOK, `{"account_numbers":[{"id":"acno_1","bank_account_id":"bacc_123","bic":"","description":"","routing_number":"084106768"}],"has_more":false}`)
		})
	})

	list, err := client.ListAccountNumbers(context.TODO(), "bacc_123", &AccountNumberListOpts{
		Limit:        optional.NewInt(5),
		EndingBefore: optional.NewString("acno_9"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if list.HasMore || len(list.AccountNumbers) != 1 {
		t.Fatalf("got %#v", list)
	}

	want := url.Values{
		"limit":         []string{"5"},
		"ending_before": []string{"acno_9"},
	}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestAccountNumber__get(t *testing.T) {
	client, _ := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("GET").Path("/account-numbers/{id}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":"acno_1","bank_account_id":"bacc_123","bic":"CLNOUS66","description":"","routing_number":"084106768","created_at":"2021-10-13T16:39:55Z"}`)
		})
	})

	num, err := client.GetAccountNumber(context.TODO(), "acno_1")
	if err != nil {
		t.Fatal(err)
	}
	if num.RoutingNumber != "084106768" {
		t.Errorf("got %q", num.RoutingNumber)
	}
}
