package login

// Error is a flow-layer outcome the UI reports to the user. Every code is
// recoverable; none indicates a defect in the client.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
