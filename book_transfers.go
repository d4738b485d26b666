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

// BookTransferStatus is the state of a book transfer. HOLD is the only
// state a transfer can be canceled or cleared from.
type BookTransferStatus string

const (
	BookTransferRejected  BookTransferStatus = "REJECTED"
	BookTransferCompleted BookTransferStatus = "COMPLETED"
	BookTransferHold      BookTransferStatus = "HOLD"
	BookTransferCanceled  BookTransferStatus = "CANCELED"
)

func (s BookTransferStatus) validate() error {
	switch s {
	case BookTransferRejected, BookTransferCompleted, BookTransferHold, BookTransferCanceled:
		return nil
	default:
		return fmt.Errorf("BookTransferStatus(%s) is invalid", s)
	}
}

func (s *BookTransferStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s = BookTransferStatus(strings.ToUpper(str))
	if err := s.validate(); err != nil {
		return err
	}
	return nil
}

// TransferDetails are optional descriptive fields shown on statements and
// in the dashboard.
type TransferDetails struct {
	SenderName           *string  `json:"sender_name,omitempty"`
	MerchantName         *string  `json:"merchant_name,omitempty"`
	MerchantCategoryCode *string  `json:"merchant_category_code,omitempty"`
	AuthorizationMethod  *string  `json:"authorization_method,omitempty"`
	Website              *string  `json:"website,omitempty"`
	InternalTransferType *string  `json:"internal_transfer_type,omitempty"`
	StatementDescription *string  `json:"statement_description,omitempty"`
	Address              *Address `json:"address,omitempty"`
}

// BookTransfer is an immediate ledger-only fund movement between two
// accounts on the platform.
type BookTransfer struct {
	ID string `json:"id"`

	// Amount of the transfer in minor units (cents for USD)
	Amount int64 `json:"amount"`

	CurrencyCode   string `json:"currency_code"`
	AllowOverdraft bool   `json:"allow_overdraft"`
	Description    string `json:"description"`

	// IdempotencyKey is echoed back when the transfer was created with one
	IdempotencyKey string `json:"idempotency_key"`

	SenderBankAccountID     string `json:"sender_bank_account_id"`
	SenderAccountNumberID   string `json:"sender_account_number_id"`
	ReceiverBankAccountID   string `json:"receiver_bank_account_id"`
	ReceiverAccountNumberID string `json:"receiver_account_number_id"`

	Status  BookTransferStatus `json:"status"`
	Details *TransferDetails   `json:"details,omitempty"`

	Created base.Time `json:"created_at"`
	Updated base.Time `json:"updated_at"`
}

func (t *BookTransfer) validate() error {
	if t == nil {
		return fmt.Errorf("nil BookTransfer")
	}
	if t.ID == "" {
		return fmt.Errorf("missing id JSON field(s)")
	}
	return t.Status.validate()
}

// BookTransferList is one page of book transfers.
type BookTransferList struct {
	Data    []BookTransfer `json:"data"`
	HasMore bool           `json:"has_more"`
}

// BookTransferCreateParams creates a book transfer. Amount and CurrencyCode
// are required and exactly one sender and one receiver (bank account or
// account number) should be set; Column rejects ambiguous routing.
type BookTransferCreateParams struct {
	// Amount in minor units (cents for USD)
	Amount int64 `json:"amount"`

	// CurrencyCode is an ISO 4217 code, e.g. USD
	CurrencyCode string `json:"currency_code"`

	Description             *string `json:"description,omitempty"`
	SenderBankAccountID     *string `json:"sender_bank_account_id,omitempty"`
	SenderAccountNumberID   *string `json:"sender_account_number_id,omitempty"`
	ReceiverBankAccountID   *string `json:"receiver_bank_account_id,omitempty"`
	ReceiverAccountNumberID *string `json:"receiver_account_number_id,omitempty"`
	AllowOverdraft          *bool   `json:"allow_overdraft,omitempty"`

	// Hold creates the transfer in HOLD state instead of completing it
	Hold *bool `json:"hold,omitempty"`

	Details *TransferDetails `json:"details,omitempty"`

	// IdempotencyKey is sent as the X-Idempotency-Key header, not in the
	// body. See NewIdempotencyKey.
	IdempotencyKey string `json:"-"`
}

// BookTransferListOpts filter a ListBookTransfers page.
type BookTransferListOpts struct {
	Limit                 optional.Int
	StartingAfter         optional.String
	EndingBefore          optional.String
	Created               CreatedRange
	SenderBankAccountID   optional.String
	ReceiverBankAccountID optional.String
	Status                optional.String
}

func (o *BookTransferListOpts) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "limit", o.Limit)
	setString(v, "starting_after", o.StartingAfter)
	setString(v, "ending_before", o.EndingBefore)
	setString(v, "sender_bank_account_id", o.SenderBankAccountID)
	setString(v, "receiver_bank_account_id", o.ReceiverBankAccountID)
	setString(v, "status", o.Status)
	o.Created.apply(v)
	return v
}

// CreateBookTransfer moves funds between two accounts on the platform. The
// currency code is checked against ISO 4217 before any request is made.
func (c *Client) CreateBookTransfer(ctx context.Context, params BookTransferCreateParams) (*BookTransfer, error) {
	if _, err := currency.ParseISO(params.CurrencyCode); err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %v", params.CurrencyCode, err)
	}
	var transfer BookTransfer
	if err := c.post(ctx, "createBookTransfer", "/transfers/book", params, params.IdempotencyKey, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// ListBookTransfers returns one page of book transfers.
func (c *Client) ListBookTransfers(ctx context.Context, opts *BookTransferListOpts) (*BookTransferList, error) {
	var list BookTransferList
	if err := c.get(ctx, "listBookTransfers", "/transfers/book", opts.values(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetBookTransfer looks up one book transfer by id.
func (c *Client) GetBookTransfer(ctx context.Context, bookTransferID string) (*BookTransfer, error) {
	var transfer BookTransfer
	if err := c.get(ctx, "getBookTransfer", fmt.Sprintf("/transfers/book/%s", bookTransferID), nil, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// CancelBookTransfer cancels a transfer hold. The transfer must be in HOLD
// state; Column rejects everything else and this client doesn't pre-check.
func (c *Client) CancelBookTransfer(ctx context.Context, bookTransferID string) error {
	return c.post(ctx, "cancelBookTransfer", fmt.Sprintf("/transfers/book/%s/cancel", bookTransferID), nil, "", nil)
}

// ClearBookTransfer clears (completes) a transfer hold. The transfer must
// be in HOLD state.
func (c *Client) ClearBookTransfer(ctx context.Context, bookTransferID string) error {
	return c.post(ctx, "clearBookTransfer", fmt.Sprintf("/transfers/book/%s/clear", bookTransferID), nil, "", nil)
}
