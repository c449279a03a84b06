package agreement

import "strings"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// NewDecision parses a status an administrator may set.
func NewDecision(s string) (Status, error) {
	st, err := NewStatus(s)
	if err != nil {
		return "", err
	}
	if !st.IsDecision() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}
