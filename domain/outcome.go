package domain

// OutcomeKind enumerates the classified results of one completion attempt.
type OutcomeKind string

const (
	OutcomeReply   OutcomeKind = "reply"
	OutcomeBlocked OutcomeKind = "blocked"
	OutcomeEmpty   OutcomeKind = "empty"
)

// Fixed user-facing messages for non-reply outcomes.
const (
	EmptyResponseMessage = "I'm afraid I couldn't generate a proper response."
	SafetyBlockedMessage = "I'm afraid I cannot respond to that request due to safety protocols."
)

// Outcome is the classified result of one completion attempt. Text holds the
// reply for OutcomeReply and the fixed user-facing message otherwise.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	Text string      `json:"text"`
}
