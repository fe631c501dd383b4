// Package lifecycle holds shared lifecycle-related values.
package lifecycle

import "time"

// DefaultTimeout is the default timeout for graceful shutdown of deliveries.
const DefaultTimeout = 10 * time.Second
