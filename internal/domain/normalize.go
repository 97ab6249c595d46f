package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal
// whitespace runs. It is applied to claimed names and to name fields read from
// member records before any comparison.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
