package analytics

// Reporter receives log and progress events from longer computations,
// typically forwarded to the MCP client or a structured logger. It is
// an optional collaborator: every function in this package accepts a
// nil Reporter and simply skips reporting.
type Reporter interface {
	// Log emits a message at the given level ("debug", "info", "warn",
	// "error").
	Log(level, message string)

	// ReportProgress signals that step of total units of work are done.
	ReportProgress(step, total int)
}

// report logs through r when it is non-nil.
func report(r Reporter, level, message string) {
	if r != nil {
		r.Log(level, message)
	}
}

// progress reports progress through r when it is non-nil.
func progress(r Reporter, step, total int) {
	if r != nil {
		r.ReportProgress(step, total)
	}
}
