package workflow

// Trigger represents an external event that can cause a lifecycle transition
type Trigger string

const (
	TriggerSelectFile         Trigger = "SELECT_FILE"
	TriggerAcceptUpload       Trigger = "ACCEPT_UPLOAD"
	TriggerReceiveExtraction  Trigger = "RECEIVE_EXTRACTION"
	TriggerFailExtraction     Trigger = "FAIL_EXTRACTION"
	TriggerSubmit             Trigger = "SUBMIT"
	TriggerPassValidation     Trigger = "PASS_VALIDATION"
	TriggerFailValidation     Trigger = "FAIL_VALIDATION"
	TriggerCompleteSubmission Trigger = "COMPLETE_SUBMISSION"
	TriggerFailSubmission     Trigger = "FAIL_SUBMISSION"
	TriggerReedit             Trigger = "REEDIT"
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	return string(t)
}
