// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/antihax/optional"
	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"
)

func TestFinancialInstitution__get(t *testing.T) {
	client, _ := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("GET").Path("/institutions/{routingNumber}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"ach_eligible":true,"city":"TAMPA","country_code":"US","created_at":"2021-10-13T16:39:55Z","full_name":"JPMORGAN CHASE BANK, NA","phone_number":"8134323700","routing_number":"322271627","routing_number_type":"aba","short_name":"WASH MUT BANK","state":"FL","street_address":"10430 HIGHLAND MANOR DRIVE","updated_at":"2021-10-28T13:00:35Z","wire_eligible":true,"wire_settlement_only":false,"zip_code":"33610"}`)
		})
	})

	fi, err := client.GetFinancialInstitution(context.TODO(), "322271627")
	if err != nil {
		t.Fatal(err)
	}
	if fi.RoutingNumber != "322271627" {
		t.Errorf("got %q", fi.RoutingNumber)
	}
	if !fi.AchEligible || !fi.WireEligible || fi.WireSettlementOnly {
		t.Errorf("got %#v", fi)
	}
	if fi.RoutingNumberType != "aba" {
		t.Errorf("got %q", fi.RoutingNumberType)
	}
}

func TestFinancialInstitution__list(t *testing.T) {
	var gotQuery url.Values
	client, _ := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("GET").Path("/institutions").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			writeJSON(w, http.StatusOK, `{"financial_institutions":[{"routing_number":"322271627","routing_number_type":"aba"}],"has_more":false}`)
		})
	})

	list, err := client.ListFinancialInstitutions(context.TODO(), &FinancialInstitutionListOpts{
		Name:        optional.NewString("chase"),
		CountryCode: optional.NewString("US"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.FinancialInstitutions) != 1 {
		t.Fatalf("got %#v", list)
	}

	want := url.Values{
		"name":         []string{"chase"},
		"country_code": []string{"US"},
	}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateIBAN(t *testing.T) {
	client, _ := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("GET").Path("/iban/{iban}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"iban":"DE89370400440532013000","account_number":"0532013000","bank_id":"37040044","bic":"COBADEFFXXX","branch_id":"","check_digits":"89","country_code":"DE","institution_name":"COMMERZBANK AG","national_id":"37040044"}`)
		})
	})

	validation, err := client.ValidateIBAN(context.TODO(), "DE89370400440532013000")
	if err != nil {
		t.Fatal(err)
	}
	if validation.CountryCode != "DE" {
		t.Errorf("got %q", validation.CountryCode)
	}
	if validation.BIC != "COBADEFFXXX" {
		t.Errorf("got %q", validation.BIC)
	}
}
