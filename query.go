// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"net/url"
	"strconv"
	"time"

	"github.com/antihax/optional"
)

// CreatedRange filters a list call by resource creation time. Each bound
// that's set is sent as its own dotted query parameter (created.gt,
// created.lt, created.gte, created.lte) in RFC 3339 form and unset bounds
// are left out of the query entirely.
type CreatedRange struct {
	Gt  optional.Time
	Lt  optional.Time
	Gte optional.Time
	Lte optional.Time
}

func (r CreatedRange) apply(v url.Values) {
	setTime(v, "created.gt", r.Gt)
	setTime(v, "created.lt", r.Lt)
	setTime(v, "created.gte", r.Gte)
	setTime(v, "created.lte", r.Lte)
}

func setTime(v url.Values, key string, t optional.Time) {
	if t.IsSet() {
		v.Set(key, t.Value().Format(time.RFC3339))
	}
}

func setString(v url.Values, key string, s optional.String) {
	if s.IsSet() {
		v.Set(key, s.Value())
	}
}

func setInt(v url.Values, key string, i optional.Int) {
	if i.IsSet() {
		v.Set(key, strconv.Itoa(i.Value()))
	}
}

func setBool(v url.Values, key string, b optional.Bool) {
	if b.IsSet() {
		v.Set(key, strconv.FormatBool(b.Value()))
	}
}
