package domain

// MemberID is the key a member record lives under in the remote store's
// root collection. We model it as an opaque identifier: its format is
// controlled by the gym's member administration, not by this client.
type MemberID string
