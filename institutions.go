// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"context"
	"fmt"
	"net/url"

	"github.com/antihax/optional"
)

// FinancialInstitution is reference data about a bank in Column's directory.
// Institutions are read-only and never created through this client.
type FinancialInstitution struct {
	RoutingNumber string `json:"routing_number"`

	// RoutingNumberType is "aba" or "bic"
	RoutingNumberType string `json:"routing_number_type"`

	FullName  string `json:"full_name"`
	ShortName string `json:"short_name"`

	AchEligible        bool `json:"ach_eligible"`
	WireEligible       bool `json:"wire_eligible"`
	WireSettlementOnly bool `json:"wire_settlement_only"`

	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	CountryCode   string `json:"country_code"`
	PhoneNumber   string `json:"phone_number"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (fi *FinancialInstitution) validate() error {
	if fi == nil {
		return fmt.Errorf("nil FinancialInstitution")
	}
	if fi.RoutingNumber == "" {
		return fmt.Errorf("missing routing_number JSON field(s)")
	}
	return nil
}

// FinancialInstitutionList is one page of institution directory entries.
type FinancialInstitutionList struct {
	FinancialInstitutions []FinancialInstitution `json:"financial_institutions"`
	HasMore               bool                   `json:"has_more"`
}

// FinancialInstitutionListOpts filter the institution directory.
type FinancialInstitutionListOpts struct {
	Limit             optional.Int
	StartingAfter     optional.String
	EndingBefore      optional.String
	CountryCode       optional.String
	Name              optional.String
	RoutingNumberType optional.String
}

func (o *FinancialInstitutionListOpts) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "limit", o.Limit)
	setString(v, "starting_after", o.StartingAfter)
	setString(v, "ending_before", o.EndingBefore)
	setString(v, "country_code", o.CountryCode)
	setString(v, "name", o.Name)
	setString(v, "routing_number_type", o.RoutingNumberType)
	return v
}

// IBANValidation is the decomposition Column returns for a valid IBAN.
type IBANValidation struct {
	IBAN            string `json:"iban"`
	AccountNumber   string `json:"account_number"`
	BankID          string `json:"bank_id"`
	BIC             string `json:"bic"`
	BranchID        string `json:"branch_id"`
	CheckDigits     string `json:"check_digits"`
	CountryCode     string `json:"country_code"`
	InstitutionName string `json:"institution_name"`
	NationalID      string `json:"national_id"`
}

// GetFinancialInstitution looks up a bank by its routing number.
func (c *Client) GetFinancialInstitution(ctx context.Context, routingNumber string) (*FinancialInstitution, error) {
	var fi FinancialInstitution
	if err := c.get(ctx, "getFinancialInstitution", fmt.Sprintf("/institutions/%s", routingNumber), nil, &fi); err != nil {
		return nil, err
	}
	return &fi, nil
}

// ListFinancialInstitutions returns one page of Column's institution
// directory.
func (c *Client) ListFinancialInstitutions(ctx context.Context, opts *FinancialInstitutionListOpts) (*FinancialInstitutionList, error) {
	var list FinancialInstitutionList
	if err := c.get(ctx, "listFinancialInstitutions", "/institutions", opts.values(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ValidateIBAN checks an IBAN and returns its decomposed parts.
func (c *Client) ValidateIBAN(ctx context.Context, iban string) (*IBANValidation, error) {
	var validation IBANValidation
	if err := c.get(ctx, "validateIBAN", fmt.Sprintf("/iban/%s", iban), nil, &validation); err != nil {
		return nil, err
	}
	return &validation, nil
}
