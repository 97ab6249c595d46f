package clock

import "time"

// Clock supplies the current time. Dashboard calculations such as days left
// on a membership read it instead of calling time.Now directly, so tests can
// pin the date.
type Clock interface {
	Now() time.Time
}
