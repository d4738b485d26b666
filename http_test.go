// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testResponse(t *testing.T, status int, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest("GET", "https://api.column.com/entities/enti_123", nil)
	return &http.Response{
		StatusCode: status,
		Body:       ioutil.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

func TestHandleResponse__success(t *testing.T) {
	resp := testResponse(t, http.StatusOK, `{"id":"acno_123","bank_account_id":"bacc_1","bic":"CLNOUS66","description":"payroll","routing_number":"084106768","created_at":"2021-10-13T16:39:55Z"}`)

	var num AccountNumber
	if err := handleResponse(resp, &num); err != nil {
		t.Fatal(err)
	}
	if num.ID != "acno_123" {
		t.Errorf("got %q", num.ID)
	}
	if num.BankAccountID != "bacc_1" {
		t.Errorf("got %q", num.BankAccountID)
	}
}

func TestHandleResponse__discardBody(t *testing.T) {
	resp := testResponse(t, http.StatusOK, `{}`)
	if err := handleResponse(resp, nil); err != nil {
		t.Fatal(err)
	}
}

func TestHandleResponse__missingRequiredField(t *testing.T) {
	// no id, so the decode hook rejects the body
	resp := testResponse(t, http.StatusOK, `{"bank_account_id":"bacc_1"}`)

	var num AccountNumber
	err := handleResponse(resp, &num)

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if !strings.Contains(decodeErr.Error(), "missing id") {
		t.Errorf("got %v", decodeErr)
	}
}

func TestHandleResponse__malformedJSON(t *testing.T) {
	resp := testResponse(t, http.StatusOK, `{"id":`)

	var num AccountNumber
	var decodeErr *DecodeError
	if err := handleResponse(resp, &num); !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
}

func TestHandleResponse__apiErrors(t *testing.T) {
	statuses := []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
	}
	body := `{"type":"bank_account_error","code":"insufficient_funds","message":"not enough funds","documentation_url":"https://column.com/docs/errors","details":{"bank_account_id":"bacc_1"}}`

	for _, status := range statuses {
		resp := testResponse(t, status, body)

		var apiErr *Error
		err := handleResponse(resp, nil)
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected *Error, got %v", status, err)
		}
		if apiErr.StatusCode != status {
			t.Errorf("got %d, want %d", apiErr.StatusCode, status)
		}
		if apiErr.Type != BankAccountError {
			t.Errorf("got %q", apiErr.Type)
		}
		if apiErr.Code != "insufficient_funds" {
			t.Errorf("got %q", apiErr.Code)
		}
		if apiErr.Message != "not enough funds" {
			t.Errorf("got %q", apiErr.Message)
		}
		if apiErr.Details["bank_account_id"] != "bacc_1" {
			t.Errorf("got %v", apiErr.Details)
		}
		if apiErr.URL != "https://api.column.com/entities/enti_123" {
			t.Errorf("got %q", apiErr.URL)
		}
	}
}

func TestHandleResponse__unparseableErrorBody(t *testing.T) {
	resp := testResponse(t, http.StatusBadRequest, `<html>Bad Request</html>`)

	var decodeErr *DecodeError
	if err := handleResponse(resp, nil); !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
}

func TestHandleResponse__unexpectedStatus(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusNoContent, http.StatusFound, http.StatusTeapot} {
		resp := testResponse(t, status, `{}`)

		var statusErr *UnexpectedStatusError
		err := handleResponse(resp, nil)
		if !errors.As(err, &statusErr) {
			t.Fatalf("status %d: expected *UnexpectedStatusError, got %v", status, err)
		}
		if statusErr.StatusCode != status {
			t.Errorf("got %d", statusErr.StatusCode)
		}
	}
}

func TestIsErrorStatus(t *testing.T) {
	for _, status := range []int{400, 401, 403, 404, 429, 500, 502, 503, 599} {
		if !isErrorStatus(status) {
			t.Errorf("expected %d to be an error status", status)
		}
	}
	for _, status := range []int{200, 201, 204, 301, 302, 402, 405, 418} {
		if isErrorStatus(status) {
			t.Errorf("expected %d to not be an error status", status)
		}
	}
}
