// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"context"
	"fmt"
	"net/url"

	"github.com/antihax/optional"
	"github.com/moov-io/base"
)

// Wire carries the beneficiary details needed to send wires to a
// counterparty.
type Wire struct {
	BeneficiaryAddress *Address `json:"beneficiary_address"`
	BeneficiaryEmail   string   `json:"beneficiary_email"`
	BeneficiaryLegalID string   `json:"beneficiary_legal_id"`
	BeneficiaryName    string   `json:"beneficiary_name"`
	BeneficiaryPhone   string   `json:"beneficiary_phone"`
	BeneficiaryType    string   `json:"beneficiary_type"`
	LocalAccountNumber string   `json:"local_account_number"`
	LocalBankCode      string   `json:"local_bank_code"`
}

// Counterparty is an external account used as a sender or receiver of
// transfers outside the platform.
type Counterparty struct {
	ID            string `json:"id"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`

	Address     *Address `json:"address,omitempty"`
	Description string   `json:"description"`
	Email       string   `json:"email"`

	// IsColumnAccount reports whether the account is held at Column
	IsColumnAccount bool `json:"is_column_account"`

	LegalID              string `json:"legal_id"`
	LegalType            string `json:"legal_type"`
	LocalAccountNumber   string `json:"local_account_number"`
	LocalBankCode        string `json:"local_bank_code"`
	LocalBankCountryCode string `json:"local_bank_country_code"`
	LocalBankName        string `json:"local_bank_name"`
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	RoutingNumber        string `json:"routing_number"`
	RoutingNumberType    string `json:"routing_number_type"`

	Wire                *Wire `json:"wire,omitempty"`
	WireDrawdownAllowed bool  `json:"wire_drawdown_allowed"`

	Created base.Time `json:"created_at"`
	Updated base.Time `json:"updated_at"`
}

func (cp *Counterparty) validate() error {
	if cp == nil {
		return fmt.Errorf("nil Counterparty")
	}
	if cp.ID == "" {
		return fmt.Errorf("missing id JSON field(s)")
	}
	return nil
}

// CounterpartyList is one page of counterparties.
type CounterpartyList struct {
	Counterparties []Counterparty `json:"counterparties"`
	HasMore        bool           `json:"has_more"`
}

// CounterpartyCreateParams registers an external account as a counterparty.
// RoutingNumber and AccountNumber are required; the rest depends on the
// transfer rails you plan to use.
type CounterpartyCreateParams struct {
	RoutingNumber string `json:"routing_number"`
	AccountNumber string `json:"account_number"`

	// RoutingNumberType is "aba" or "bic"
	RoutingNumberType *string `json:"routing_number_type,omitempty"`

	// AccountType is "checking" or "savings"
	AccountType *string `json:"account_type,omitempty"`

	Description         *string  `json:"description,omitempty"`
	WireDrawdownAllowed *bool    `json:"wire_drawdown_allowed,omitempty"`
	Name                *string  `json:"name,omitempty"`
	Address             *Address `json:"address,omitempty"`
	Phone               *string  `json:"phone,omitempty"`
	Email               *string  `json:"email,omitempty"`
	LegalID             *string  `json:"legal_id,omitempty"`

	// LegalType is one of business, non_profit, individual or sole_proprietor
	LegalType *string `json:"legal_type,omitempty"`

	LocalBankCode      *string `json:"local_bank_code,omitempty"`
	LocalAccountNumber *string `json:"local_account_number,omitempty"`
}

// CounterpartyListOpts filter a ListCounterparties page.
type CounterpartyListOpts struct {
	Limit         optional.Int
	StartingAfter optional.String
	EndingBefore  optional.String
	AccountNumber optional.String
	RoutingNumber optional.String
	Created       CreatedRange
}

func (o *CounterpartyListOpts) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "limit", o.Limit)
	setString(v, "starting_after", o.StartingAfter)
	setString(v, "ending_before", o.EndingBefore)
	setString(v, "account_number", o.AccountNumber)
	setString(v, "routing_number", o.RoutingNumber)
	o.Created.apply(v)
	return v
}

// GetCounterparty looks up one counterparty by id.
func (c *Client) GetCounterparty(ctx context.Context, counterpartyID string) (*Counterparty, error) {
	var cp Counterparty
	if err := c.get(ctx, "getCounterparty", fmt.Sprintf("/counterparties/%s", counterpartyID), nil, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// ListCounterparties returns one page of the platform's counterparties.
func (c *Client) ListCounterparties(ctx context.Context, opts *CounterpartyListOpts) (*CounterpartyList, error) {
	var list CounterpartyList
	if err := c.get(ctx, "listCounterparties", "/counterparties", opts.values(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateCounterparty registers an external account for use in transfers.
func (c *Client) CreateCounterparty(ctx context.Context, params CounterpartyCreateParams) (*Counterparty, error) {
	var cp Counterparty
	if err := c.post(ctx, "createCounterparty", "/counterparties", params, "", &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// DeleteCounterparty removes a counterparty.
func (c *Client) DeleteCounterparty(ctx context.Context, counterpartyID string) error {
	return c.delete(ctx, "deleteCounterparty", fmt.Sprintf("/counterparties/%s", counterpartyID))
}
