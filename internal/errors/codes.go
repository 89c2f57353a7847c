package errors

// Error code taxonomy for the reduction core. Every fatal condition the
// CEK machine can raise has exactly one of these three codes.
const (
	// MCH001 indicates the machine's (Control, Environment, Kontinuation)
	// triple matched no redex, congruence, or descent rule.
	MCH001 = "MCH001"

	// MCH002 indicates the Delta rule looked up a Var whose identifier was
	// unbound in the current environment, or that a Const could not be
	// resolved against the global declarations.
	MCH002 = "MCH002"

	// MCH003 indicates the fueled driver ran out of steps before reaching
	// a terminal state.
	MCH003 = "MCH003"
)

// ErrorInfo describes one error code for diagnostics and registries.
type ErrorInfo struct {
	Code        string
	Phase       string
	Description string
}

// Registry maps every code this package defines to its description.
var Registry = map[string]ErrorInfo{
	MCH001: {MCH001, "machine", "Stuck reduction: no rule matched"},
	MCH002: {MCH002, "machine", "Free identifier in Delta rule"},
	MCH003: {MCH003, "machine", "Fuel exhausted before reaching a value"},
}

// GetErrorInfo returns the registered description for code, if any.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, ok := Registry[code]
	return info, ok
}
