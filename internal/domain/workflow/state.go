package workflow

// State represents a stage in a document's upload/process/submit lifecycle
type State string

const (
	StateEmpty      State = "EMPTY"
	StateUploading  State = "UPLOADING"
	StateProcessing State = "PROCESSING"
	StatePopulated  State = "POPULATED"
	StateValidating State = "VALIDATING"
	StateSubmitting State = "SUBMITTING"
	StateSubmitted  State = "SUBMITTED"
	StateFailed     State = "FAILED"
)

var validStates = map[State]bool{
	StateEmpty:      true,
	StateUploading:  true,
	StateProcessing: true,
	StatePopulated:  true,
	StateValidating: true,
	StateSubmitting: true,
	StateSubmitted:  true,
	StateFailed:     true,
}

// Submitted is the only fully terminal state. Failed keeps the document
// instance editable: the user may re-edit and re-attempt submission.
var terminalStates = map[State]bool{
	StateSubmitted: true,
}

// IsTerminal returns true if no further transitions are allowed from the state
func (s State) IsTerminal() bool {
	return terminalStates[s]
}

// IsValid returns true if the state is a valid lifecycle state
func (s State) IsValid() bool {
	return validStates[s]
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}
