package asaas

// Outcome classifies the result of a single upstream collection call
type Outcome int

const (
	// OutcomeSuccess means the call returned at least one record
	OutcomeSuccess Outcome = iota
	// OutcomeEmpty means the call succeeded without records
	OutcomeEmpty
	// OutcomeFailed means the call failed for any reason
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// OutcomeOf collapses a record count and error into an Outcome
func OutcomeOf(records int, err error) Outcome {
	if err != nil {
		return OutcomeFailed
	}
	if records == 0 {
		return OutcomeEmpty
	}
	return OutcomeSuccess
}
