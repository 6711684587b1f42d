package ports

import "time"

// Clock supplies the current time; injected so tests stay deterministic
type Clock interface {
	Now() time.Time
}
