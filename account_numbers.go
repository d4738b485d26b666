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

// AccountNumber is one of potentially several external-facing account and
// routing number pairs bound to a single bank account.
type AccountNumber struct {
	ID            string `json:"id"`
	BankAccountID string `json:"bank_account_id"`

	// BIC is the swift code of this bank account for international wire payments
	BIC string `json:"bic"`

	Description   string    `json:"description"`
	RoutingNumber string    `json:"routing_number"`
	Created       base.Time `json:"created_at"`
}

func (n *AccountNumber) validate() error {
	if n == nil {
		return fmt.Errorf("nil AccountNumber")
	}
	if n.ID == "" {
		return fmt.Errorf("missing id JSON field(s)")
	}
	return nil
}

// AccountNumberList is one page of a bank account's account numbers.
type AccountNumberList struct {
	AccountNumbers []AccountNumber `json:"account_numbers"`
	HasMore        bool            `json:"has_more"`
}

// AccountNumberCreateParams creates an additional account number on a bank
// account.
type AccountNumberCreateParams struct {
	Description string `json:"description"`
}

// AccountNumberListOpts pages through a bank account's account numbers.
type AccountNumberListOpts struct {
	Limit         optional.Int
	StartingAfter optional.String
	EndingBefore  optional.String
}

func (o *AccountNumberListOpts) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "limit", o.Limit)
	setString(v, "starting_after", o.StartingAfter)
	setString(v, "ending_before", o.EndingBefore)
	return v
}

// CreateAccountNumber adds an account number to the given bank account.
func (c *Client) CreateAccountNumber(ctx context.Context, bankAccountID string, params AccountNumberCreateParams) (*AccountNumber, error) {
	var num AccountNumber
	if err := c.post(ctx, "createAccountNumber", fmt.Sprintf("/bank-accounts/%s/account-number", bankAccountID), params, "", &num); err != nil {
		return nil, err
	}
	return &num, nil
}

// ListAccountNumbers returns one page of the bank account's account numbers.
func (c *Client) ListAccountNumbers(ctx context.Context, bankAccountID string, opts *AccountNumberListOpts) (*AccountNumberList, error) {
	var list AccountNumberList
	if err := c.get(ctx, "listAccountNumbers", fmt.Sprintf("/bank-accounts/%s/account-numbers", bankAccountID), opts.values(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetAccountNumber looks up one account number by id.
func (c *Client) GetAccountNumber(ctx context.Context, accountNumberID string) (*AccountNumber, error) {
	var num AccountNumber
	if err := c.get(ctx, "getAccountNumber", fmt.Sprintf("/account-numbers/%s", accountNumberID), nil, &num); err != nil {
		return nil, err
	}
	return &num, nil
}
