// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

// Address is a postal address attached to entities, counterparties and
// transfer details. State is optional outside the US; Column doesn't reject
// a missing state for US addresses today, so neither do we.
type Address struct {
	// Line1 is the first line of the address
	Line1 string `json:"line_1"`

	// Line2 is the second line of the address, if available
	Line2 *string `json:"line_2,omitempty"`

	// City of the address
	City string `json:"city"`

	// State of the address. Optional if the country is not US.
	State *string `json:"state,omitempty"`

	// PostalCode of the address
	PostalCode string `json:"postal_code,omitempty"`

	// CountryCode is an ISO 3166-1 alpha-2 country code
	CountryCode string `json:"country_code"`
}
