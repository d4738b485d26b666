// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	columnClientErrors = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "column_client_errors",
		Help: "Counter of errors from the remote Column API",
	}, []string{"instance", "operation"})

	columnRequestDurations = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Name: "column_request_duration_seconds",
		Help: "Histogram of Column API round trip durations",
	}, []string{"operation"})
)

func (c *Client) trackError(operation string) {
	u, _ := url.Parse(c.endpoint)
	if u == nil {
		columnClientErrors.With("instance", "N/A", "operation", operation).Add(1)
		return
	}
	host, port, _ := net.SplitHostPort(u.Host)
	if host == "" {
		host = u.Host
	}
	if port == "" {
		port = strings.TrimPrefix(u.Port(), ":")
	}
	columnClientErrors.With("instance", fmt.Sprintf("%s:%s", host, port), "operation", operation).Add(1)
}

func trackDuration(operation string, dur time.Duration) {
	columnRequestDurations.With("operation", operation).Observe(dur.Seconds())
}
