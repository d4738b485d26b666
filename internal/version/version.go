// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package version

// Version is sent on every request inside the User-Agent header.
const Version = "v0.4.0"
