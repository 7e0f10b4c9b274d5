package unit

// ResultCode classifies the outcome of an applied command.
type ResultCode string

const (
	// ResultApplied means the command changed the unit's state.
	ResultApplied ResultCode = "applied"
	// ResultIgnored means the command was silently dropped by the
	// behavioral rules (locked, wrong activity, degenerate input).
	ResultIgnored ResultCode = "ignored"
	// ResultIncapacitated means the unit is terminally down and no
	// longer responds to anything.
	ResultIncapacitated ResultCode = "incapacitated"
)
