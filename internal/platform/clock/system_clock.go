package clock

import "time"

// SystemClock reads the host wall clock. Times are reported in UTC so that
// membership end dates compare the same regardless of the device timezone.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
