package registration

// ValidationError reports one or more local rule failures. It never
// reaches the network; the first reason is the primary user-facing one.
type ValidationError struct {
	Reasons []string
}

func (e ValidationError) Error() string {
	if len(e.Reasons) == 0 {
		return "validation failed"
	}
	return e.Reasons[0]
}
