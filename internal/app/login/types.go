package login

// Claim is a user-submitted identity claim awaiting verification. It is
// ephemeral input, never persisted.
type Claim struct {
	MemberID string
	FullName string
}
