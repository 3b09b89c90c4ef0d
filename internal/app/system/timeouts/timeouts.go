// Package timeouts provides centralized deadline values for handler
// operations. Every store call made from a request handler runs under a
// context bounded by one of these, so a stalled database cannot pin a
// request forever.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and writes (lookup, login stamp)
//   - Medium: multi-step operations (snapshot resolution, alert trigger)
//   - Long: startup work such as index reconciliation
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document reads and writes.
func Short() time.Duration { return short }

// Medium returns the timeout for operations touching several documents,
// like resolving a family list or recording an alert with its snapshots.
func Medium() time.Duration { return medium }

// Long returns the timeout for startup work such as index creation.
func Long() time.Duration { return long }
