package domain

import "strings"

// VerifyClaimedName reports whether a user-supplied full name matches the
// first/last name stored on a member record.
//
// Name ordering conventions differ between cultures and data-entry habits, so
// both "first last" and "last first" are accepted. All three strings are
// whitespace-normalized first, so stray spaces in the record are as harmless
// as stray spaces in the claim. Partial names are not accepted: anything
// short of an exact single-space-joined match is rejected, to keep false
// positives out of what is effectively the login check.
//
// Comparison uses strings.EqualFold, i.e. Unicode simple case-folding. That is
// a fixed, locale-independent normalization: "İ" (dotted capital I) folds the
// same way on every host.
func VerifyClaimedName(claimed, first, last string) bool {
	claimed = NormalizeHumanName(claimed)
	first = NormalizeHumanName(first)
	last = NormalizeHumanName(last)
	if claimed == "" || first == "" || last == "" {
		return false
	}
	return strings.EqualFold(claimed, first+" "+last) ||
		strings.EqualFold(claimed, last+" "+first)
}
