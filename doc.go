// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package column is a typed client for Column's banking API.
//
// A Client is configured once with an API key and is safe for concurrent use.
// Every operation takes a context.Context, performs exactly one HTTP round
// trip and returns either a decoded model or an error from a small taxonomy:
// *Error when Column rejects the request, *DecodeError when a response body
// doesn't match the expected shape and *UnexpectedStatusError for status
// codes a compliant server never sends. Nothing is retried or cached.
//
//	client, err := column.NewClient(logger, os.Getenv("COLUMN_API_KEY"), "", nil)
//	if err != nil {
//		// only fails on a malformed key prefix
//	}
//	entity, err := client.GetEntity(context.TODO(), "enti_123")
//
// Optional fields on create/update params are pointers so that unset values
// are omitted from request bodies entirely. The String, Bool, Int and Int64
// helpers make literals usable inline.
package column

// String returns a pointer to the given string.
func String(v string) *string { return &v }

// Bool returns a pointer to the given bool.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to the given int.
func Int(v int) *int { return &v }

// Int64 returns a pointer to the given int64.
func Int64(v int64) *int64 { return &v }
