// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// EntityType discriminates the two kinds of parties Column verifies.
type EntityType string

const (
	EntityTypePerson   EntityType = "PERSON"
	EntityTypeBusiness EntityType = "BUSINESS"
)

func (t EntityType) validate() error {
	switch t {
	case EntityTypePerson, EntityTypeBusiness:
		return nil
	default:
		return fmt.Errorf("EntityType(%s) is invalid", t)
	}
}

func (t *EntityType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = EntityType(strings.ToUpper(s))
	if err := t.validate(); err != nil {
		return err
	}
	return nil
}

// Passport identifies a person when no SSN is provided.
type Passport struct {
	CountryCode string `json:"country_code"`
	Number      string `json:"number"`
}

// Identification is a government issued ID (passport, drivers license,
// national ID) belonging to a beneficial owner.
type Identification struct {
	Number      string `json:"number"`
	CountryCode string `json:"country_code"`
}

// RegistrationID is a business registration number outside the US.
type RegistrationID struct {
	Number      string `json:"number"`
	CountryCode string `json:"country_code"`
}

// PersonDetails holds the verified personal information of a person entity.
type PersonDetails struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	MiddleName  string    `json:"middle_name,omitempty"`
	SSN         string    `json:"ssn,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	Email       string    `json:"email,omitempty"`
	Passport    *Passport `json:"passport,omitempty"`
	Address     *Address  `json:"address"`
}

// BeneficialOwner is a person owning or controlling a business entity.
type BeneficialOwner struct {
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	MiddleName          *string         `json:"middle_name,omitempty"`
	SSN                 *string         `json:"ssn,omitempty"`
	Passport            *Identification `json:"passport,omitempty"`
	DriversLicense      *Identification `json:"drivers_license,omitempty"`
	NationalID          *Identification `json:"national_id,omitempty"`
	DateOfBirth         string          `json:"date_of_birth"`
	Email               *string         `json:"email,omitempty"`
	IsControlPerson     bool            `json:"is_control_person"`
	IsBeneficialOwner   bool            `json:"is_beneficial_owner"`
	OwnershipPercentage *int            `json:"ownership_percentage,omitempty"`
	JobTitle            *string         `json:"job_title,omitempty"`
	Address             *Address        `json:"address"`
}

// BusinessDetails holds the verified registration details of a business entity.
type BusinessDetails struct {
	Address              *Address          `json:"address"`
	BeneficialOwners     []BeneficialOwner `json:"beneficial_owners"`
	BusinessName         string            `json:"business_name"`
	EIN                  *string           `json:"ein,omitempty"`
	RegistrationID       *RegistrationID   `json:"registration_id,omitempty"`
	Industry             string            `json:"industry"`
	Website              *string           `json:"website,omitempty"`
	LegalType            string            `json:"legal_type"`
	StateOfIncorporation *string           `json:"state_of_incorporation,omitempty"`
	DateOfIncorporation  *string           `json:"date_of_incorporation,omitempty"`
	AccountUsage         []string          `json:"account_usage,omitempty"`
	Description          *string           `json:"description,omitempty"`
	PaymentVolumes       *string           `json:"payment_volumes,omitempty"`
	CountriesOfOperation []string          `json:"countries_of_operation,omitempty"`
}

// PersonEntity is a verified natural person on whose behalf accounts are held.
type PersonEntity struct {
	ID                 string         `json:"id"`
	Type               EntityType     `json:"type"`
	IsRoot             bool           `json:"is_root"`
	Documents          []Document     `json:"documents"`
	PersonDetails      *PersonDetails `json:"person_details"`
	VerificationStatus string         `json:"verification_status"`
	VerificationTags   string         `json:"verification_tags,omitempty"`
	ReviewReasons      []string       `json:"review_reasons"`
}

func (e *PersonEntity) validate() error {
	if e == nil {
		return fmt.Errorf("nil PersonEntity")
	}
	if e.ID == "" {
		return fmt.Errorf("missing id JSON field(s)")
	}
	return nil
}

// BusinessEntity is a verified business on whose behalf accounts are held.
type BusinessEntity struct {
	ID                 string           `json:"id"`
	Type               EntityType       `json:"type"`
	IsRoot             bool             `json:"is_root"`
	Documents          []Document       `json:"documents"`
	BusinessDetails    *BusinessDetails `json:"business_details"`
	VerificationStatus string           `json:"verification_status"`
	VerificationTags   string           `json:"verification_tags,omitempty"`
	ReviewReasons      []string         `json:"review_reasons"`
}

func (e *BusinessEntity) validate() error {
	if e == nil {
		return fmt.Errorf("nil BusinessEntity")
	}
	if e.ID == "" {
		return fmt.Errorf("missing id JSON field(s)")
	}
	return nil
}

// Entity is a tagged union over the two entity kinds. Exactly one of Person
// or Business is non-nil after a successful decode, chosen by the payload's
// "type" discriminator.
type Entity struct {
	Person   *PersonEntity
	Business *BusinessEntity
}

// ID returns the wrapped entity's id regardless of its kind.
func (e *Entity) ID() string {
	switch {
	case e == nil:
		return ""
	case e.Person != nil:
		return e.Person.ID
	case e.Business != nil:
		return e.Business.ID
	}
	return ""
}

// Type returns the discriminator of the wrapped entity.
func (e *Entity) Type() EntityType {
	switch {
	case e == nil:
		return EntityType("")
	case e.Person != nil:
		return EntityTypePerson
	case e.Business != nil:
		return EntityTypeBusiness
	}
	return EntityType("")
}

func (e *Entity) UnmarshalJSON(b []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	switch EntityType(probe.Type) {
	case EntityTypePerson:
		var person PersonEntity
		if err := json.Unmarshal(b, &person); err != nil {
			return err
		}
		e.Person, e.Business = &person, nil
		return nil
	case EntityTypeBusiness:
		var business BusinessEntity
		if err := json.Unmarshal(b, &business); err != nil {
			return err
		}
		e.Person, e.Business = nil, &business
		return nil
	default:
		return fmt.Errorf("unhandled entity type: %s", probe.Type)
	}
}

func (e *Entity) validate() error {
	if e == nil || (e.Person == nil && e.Business == nil) {
		return fmt.Errorf("entity decoded to neither person nor business")
	}
	if e.Person != nil {
		return e.Person.validate()
	}
	return e.Business.validate()
}

// PersonEntityParams creates or updates a person entity. Either SSN or
// Passport is required by Column.
type PersonEntityParams struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	MiddleName  *string   `json:"middle_name,omitempty"`
	SSN         *string   `json:"ssn,omitempty"`
	Passport    *Passport `json:"passport,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	Email       *string   `json:"email,omitempty"`
	Address     Address   `json:"address"`
}

// BusinessEntityParams creates or updates a business entity.
type BusinessEntityParams struct {
	EIN              string            `json:"ein"`
	BusinessName     string            `json:"business_name"`
	Website          *string           `json:"website,omitempty"`
	LegalType        *string           `json:"legal_type,omitempty"`
	Address          Address           `json:"address"`
	BeneficialOwners []BeneficialOwner `json:"beneficial_owners"`
}

// GetEntity returns the entity, person or business, with the given id.
func (c *Client) GetEntity(ctx context.Context, entityID string) (*Entity, error) {
	var entity Entity
	if err := c.get(ctx, "getEntity", fmt.Sprintf("/entities/%s", entityID), nil, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// CreatePersonEntity creates a person entity, which kicks off Column's KYC
// verification.
func (c *Client) CreatePersonEntity(ctx context.Context, params PersonEntityParams) (*PersonEntity, error) {
	var entity PersonEntity
	if err := c.post(ctx, "createPersonEntity", "/entities/person", params, "", &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// UpdatePersonEntity replaces the given person entity's details.
func (c *Client) UpdatePersonEntity(ctx context.Context, entityID string, params PersonEntityParams) (*PersonEntity, error) {
	var entity PersonEntity
	if err := c.put(ctx, "updatePersonEntity", fmt.Sprintf("/entities/person/%s", entityID), params, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// CreateBusinessEntity creates a business entity, which kicks off Column's
// KYB verification.
func (c *Client) CreateBusinessEntity(ctx context.Context, params BusinessEntityParams) (*BusinessEntity, error) {
	var entity BusinessEntity
	if err := c.post(ctx, "createBusinessEntity", "/entities/business", params, "", &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// UpdateBusinessEntity replaces the given business entity's details.
func (c *Client) UpdateBusinessEntity(ctx context.Context, entityID string, params BusinessEntityParams) (*BusinessEntity, error) {
	var entity BusinessEntity
	if err := c.put(ctx, "updateBusinessEntity", fmt.Sprintf("/entities/business/%s", entityID), params, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// DeleteEntity removes an entity. Only entities without open bank accounts
// can be deleted; Column rejects the rest.
func (c *Client) DeleteEntity(ctx context.Context, entityID string) error {
	return c.delete(ctx, "deleteEntity", fmt.Sprintf("/entities/%s", entityID))
}

// SubmitDocument attaches an uploaded verification document to an entity and
// returns the refreshed entity.
func (c *Client) SubmitDocument(ctx context.Context, entityID string, params DocumentSubmitParams) (*Entity, error) {
	var entity Entity
	if err := c.post(ctx, "submitDocument", fmt.Sprintf("/entities/%s/documents", entityID), params, "", &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}
