// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/antihax/optional"
	"github.com/moov-io/base"
	"golang.org/x/text/currency"
)

// BankAccountType is the kind of ledger account.
type BankAccountType string

const (
	BankAccountChecking         BankAccountType = "CHECKING"
	BankAccountOverdraftReserve BankAccountType = "OVERDRAFT_RESERVE"
	BankAccountProgramReserve   BankAccountType = "PROGRAM_RESERVE"
)

func (t BankAccountType) validate() error {
	switch t {
	case BankAccountChecking, BankAccountOverdraftReserve, BankAccountProgramReserve:
		return nil
	default:
		return fmt.Errorf("BankAccountType(%s) is invalid", t)
	}
}

func (t *BankAccountType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = BankAccountType(strings.ToUpper(s))
	if err := t.validate(); err != nil {
		return err
	}
	return nil
}

// Money is an amount in minor units (cents for USD) with its ISO 4217
// currency code.
type Money struct {
	Cents        int64  `json:"cents"`
	CurrencyCode string `json:"currency_code"`
}

// Validate checks the currency code against ISO 4217.
func (m Money) Validate() error {
	if _, err := currency.ParseISO(m.CurrencyCode); err != nil {
		return fmt.Errorf("invalid currency code %q: %v", m.CurrencyCode, err)
	}
	return nil
}

// Balances are the real-time balance amounts of a bank account, in minor
// units.
type Balances struct {
	// AvailableAmount is the amount available to spend
	AvailableAmount int64 `json:"available_amount"`

	// HoldingAmount is the balance in HOLD state
	HoldingAmount int64 `json:"holding_amount"`

	// LockedAmount is the locked balance, applicable for root accounts
	LockedAmount int64 `json:"locked_amount"`

	// PendingAmount is the total amount in pending state
	PendingAmount int64 `json:"pending_amount"`
}

// BankAccount is a ledger account with real-time balances.
type BankAccount struct {
	ID       string   `json:"id"`
	Balances Balances `json:"balances"`

	// BIC is the Swift BIC code for international wire payments
	BIC string `json:"bic"`

	// CurrencyCode is the currency of the balances (e.g. USD)
	CurrencyCode string `json:"currency_code"`

	DefaultAccountNumber   string `json:"default_account_number"`
	DefaultAccountNumberID string `json:"default_account_number_id"`
	Description            string `json:"description"`
	IsOverdraftable        bool   `json:"is_overdraftable"`

	// OverdraftReserveAccountID is the linked overdraft reserve account, if any
	OverdraftReserveAccountID *string `json:"overdraft_reserve_account_id,omitempty"`

	// Owners are the entity ids tied to this bank account
	Owners []string `json:"owners"`

	// RoutingNumber is the 9-digit ABA routing number
	RoutingNumber string `json:"routing_number"`

	Type    BankAccountType `json:"type"`
	Created base.Time       `json:"created_at"`
}

func (a *BankAccount) validate() error {
	if a == nil {
		return fmt.Errorf("nil BankAccount")
	}
	var missing []string
	if a.ID == "" {
		missing = append(missing, "id")
	}
	if a.RoutingNumber == "" {
		missing = append(missing, "routing_number")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s JSON field(s)", strings.Join(missing, ", "))
	}
	return a.Type.validate()
}

// BankAccountList is one page of bank accounts.
type BankAccountList struct {
	BankAccounts []BankAccount `json:"bank_accounts"`
	HasMore      bool          `json:"has_more"`
}

// BankAccountSummary is one day's balance movement on a bank account.
// Amounts are strings of minor units as Column returns them.
type BankAccountSummary struct {
	AvailableBalanceCredit string `json:"available_balance_credit"`
	AvailableBalanceDebit  string `json:"available_balance_debit"`
	AvailableBalanceClose  string `json:"available_balance_close"`
	HoldingBalanceCredit   string `json:"holding_balance_credit"`
	HoldingBalanceDebit    string `json:"holding_balance_debit"`
	HoldingBalanceClose    string `json:"holding_balance_close"`
	LockedBalanceCredit    string `json:"locked_balance_credit"`
	LockedBalanceDebit     string `json:"locked_balance_debit"`
	LockedBalanceClose     string `json:"locked_balance_close"`
	PendingBalanceCredit   string `json:"pending_balance_credit"`
	PendingBalanceDebit    string `json:"pending_balance_debit"`
	PendingBalanceClose    string `json:"pending_balance_close"`
	Currency               string `json:"currency"`

	// EffectiveOn is the date of the balances (YYYY-MM-DD)
	EffectiveOn string `json:"effective_on"`

	// TimeZone decides the day boundaries of EffectiveOn
	TimeZone string `json:"time_zone"`

	TransactionCount int `json:"transaction_count"`
}

// BankAccountSummaryHistory is the per-day summary history of one account.
type BankAccountSummaryHistory struct {
	ID      string               `json:"id"`
	History []BankAccountSummary `json:"history"`
}

// OverdraftAlert is sent by Column when an account overdrafts into its
// reserve account.
type OverdraftAlert struct {
	AvailableBalance Money  `json:"available_balance"`
	BankAccountID    string `json:"bank_account_id"`
	OverdraftAmount  Money  `json:"overdraft_amount"`
	ReserveAccountID string `json:"reserve_account_id"`
	TransferID       string `json:"transfer_id"`
}

// BankAccountCreateParams creates a bank account under an entity.
type BankAccountCreateParams struct {
	EntityID                  string  `json:"entity_id"`
	Description               *string `json:"description,omitempty"`
	IsOverdraftable           *bool   `json:"is_overdraftable,omitempty"`
	OverdraftReserveAccountID *string `json:"overdraft_reserve_account_id,omitempty"`
	DisplayName               *string `json:"display_name,omitempty"`
}

// BankAccountUpdateParams is a partial update; unset fields are left alone.
type BankAccountUpdateParams struct {
	Description               *string `json:"description,omitempty"`
	IsOverdraftable           *bool   `json:"is_overdraftable,omitempty"`
	OverdraftReserveAccountID *string `json:"overdraft_reserve_account_id,omitempty"`
	DisplayName               *string `json:"display_name,omitempty"`
}

// BankAccountListOpts filter a ListBankAccounts page.
type BankAccountListOpts struct {
	EntityID                  optional.String
	IsOverdraftable           optional.Bool
	Type                      optional.String
	OverdraftReserveAccountID optional.String
	Limit                     optional.Int
	StartingAfter             optional.String
	EndingBefore              optional.String
	Created                   CreatedRange
}

func (o *BankAccountListOpts) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setString(v, "entity_id", o.EntityID)
	setBool(v, "is_overdraftable", o.IsOverdraftable)
	setString(v, "type", o.Type)
	setString(v, "overdraft_reserve_account_id", o.OverdraftReserveAccountID)
	setInt(v, "limit", o.Limit)
	setString(v, "starting_after", o.StartingAfter)
	setString(v, "ending_before", o.EndingBefore)
	o.Created.apply(v)
	return v
}

// CreateBankAccount opens a bank account owned by the given entity.
func (c *Client) CreateBankAccount(ctx context.Context, params BankAccountCreateParams) (*BankAccount, error) {
	var account BankAccount
	if err := c.post(ctx, "createBankAccount", "/entities/bank-account", params, "", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ListBankAccounts returns one page of the entity's bank accounts.
func (c *Client) ListBankAccounts(ctx context.Context, entityID string, opts *BankAccountListOpts) (*BankAccountList, error) {
	var list BankAccountList
	if err := c.get(ctx, "listBankAccounts", fmt.Sprintf("/entities/%s/bank-accounts", entityID), opts.values(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetBankAccount returns a bank account with its real-time balances.
func (c *Client) GetBankAccount(ctx context.Context, bankAccountID string) (*BankAccount, error) {
	var account BankAccount
	if err := c.get(ctx, "getBankAccount", fmt.Sprintf("/entities/bank-account/%s", bankAccountID), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateBankAccount changes the set fields and returns the fresh account.
func (c *Client) UpdateBankAccount(ctx context.Context, bankAccountID string, params BankAccountUpdateParams) (*BankAccount, error) {
	var account BankAccount
	if err := c.put(ctx, "updateBankAccount", fmt.Sprintf("/entities/bank-account/%s", bankAccountID), params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteBankAccount closes a bank account. Accounts need a zero balance
// before Column accepts the close.
func (c *Client) DeleteBankAccount(ctx context.Context, bankAccountID string) error {
	return c.delete(ctx, "deleteBankAccount", fmt.Sprintf("/entities/bank-account/%s", bankAccountID))
}

// GetBankAccountSummaryHistory returns day-by-day balance summaries of one
// bank account.
func (c *Client) GetBankAccountSummaryHistory(ctx context.Context, bankAccountID string) (*BankAccountSummaryHistory, error) {
	var history BankAccountSummaryHistory
	if err := c.get(ctx, "getBankAccountSummaryHistory", fmt.Sprintf("/entities/bank-account/%s/summary-history", bankAccountID), nil, &history); err != nil {
		return nil, err
	}
	return &history, nil
}
