package sender

import "fmt"

// ValidationError reports a series rejected by Writer.Add. The buffer is left
// unchanged, so the call may be repeated with corrected input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid series: " + e.Reason
}

// RemoteError reports a non-success HTTP status returned by the remote. The
// buffered series are retained so that a later Send retransmits them.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote returned status %d: %s", e.StatusCode, e.Body)
}
