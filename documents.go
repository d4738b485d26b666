// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"github.com/moov-io/base"
)

// Document is a file uploaded for an entity's verification.
type Document struct {
	ID          string    `json:"id"`
	Checksum    string    `json:"checksum"`
	Description string    `json:"description"`
	Size        int64     `json:"size"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Created     base.Time `json:"created_at"`
	Updated     base.Time `json:"updated_at"`
}

// DocumentSubmitParams references previously uploaded document files to
// attach to an entity.
type DocumentSubmitParams struct {
	// DocumentFrontID is the file ID for the front of the document
	DocumentFrontID string `json:"document_front_id"`

	// DocumentBackID is the file ID for the back of the document, if any
	DocumentBackID *string `json:"document_back_id,omitempty"`

	Description *string `json:"description,omitempty"`
}
