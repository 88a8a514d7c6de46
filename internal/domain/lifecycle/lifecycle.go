// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as store pings and server shutdown.
const DefaultTimeout = 10 * time.Second
