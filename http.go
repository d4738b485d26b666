// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
)

// maxReadBytes is the number of bytes to read from a response body,
// bounded with an io.LimitReader
const maxReadBytes = 1 * 1024 * 1024

// validator is implemented by models that check required fields after decode.
type validator interface {
	validate() error
}

// handleResponse maps one HTTP response onto the client's error taxonomy.
// A 200 decodes the body into v (when non-nil) and runs its validate hook,
// Column's documented error statuses decode the body as an ErrorResponse
// and return *Error, and anything else is an *UnexpectedStatusError.
//
// Every operation funnels its response through here so all thirty-odd
// calls fail the exact same way.
func handleResponse(resp *http.Response, v interface{}) error {
	requestURL := ""
	if resp.Request != nil && resp.Request.URL != nil {
		requestURL = resp.Request.URL.String()
	}
	bs, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxReadBytes))
	if err != nil {
		return &DecodeError{URL: requestURL, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(bs, v); err != nil {
			return &DecodeError{URL: requestURL, Err: err}
		}
		if mdl, ok := v.(validator); ok {
			if err := mdl.validate(); err != nil {
				return &DecodeError{URL: requestURL, Err: err}
			}
		}
		return nil

	case isErrorStatus(resp.StatusCode):
		var body ErrorResponse
		if err := json.Unmarshal(bs, &body); err != nil {
			return &DecodeError{URL: requestURL, Err: err}
		}
		if err := body.validate(); err != nil {
			return &DecodeError{URL: requestURL, Err: err}
		}
		return &Error{
			Type:             body.Type,
			Code:             body.Code,
			Message:          body.Message,
			DocumentationURL: body.DocumentationURL,
			Details:          body.Details,
			StatusCode:       resp.StatusCode,
			URL:              requestURL,
		}

	default:
		return &UnexpectedStatusError{StatusCode: resp.StatusCode, URL: requestURL}
	}
}

// isErrorStatus reports whether Column documents the status code as one it
// returns with an ErrorResponse body.
func isErrorStatus(code int) bool {
	switch code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusTooManyRequests:
		return true
	}
	return code >= 500
}
