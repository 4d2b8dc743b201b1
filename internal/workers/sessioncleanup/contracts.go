package sessioncleanup

import "time"

type Sessions interface {
	Sweep(idle time.Duration) int
	Len() int
}
