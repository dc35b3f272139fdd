package core

// AliasedPath decorates an immutable Path with the display names a query
// layer resolves after construction: a measurement alias (the stored alias
// of the column) and a query alias (SELECT ... AS). Keeping them on a
// wrapper leaves Path itself free of mutable state, so one Path can back
// several plan nodes, each with its own presentation.
//
// Aliases must be set by the owning goroutine before the wrapper is shared;
// the wrapper performs no locking. An empty string means "not set".
type AliasedPath struct {
	*Path
	measurementAlias string
	queryAlias       string
}

// NewAliasedPath wraps p. The underlying Path is shared, not copied.
func NewAliasedPath(p *Path) *AliasedPath {
	return &AliasedPath{Path: p}
}

// MeasurementAlias returns the display alias of the terminal node, or ""
// when none was set.
func (a *AliasedPath) MeasurementAlias() string {
	return a.measurementAlias
}

// SetMeasurementAlias sets the display alias of the terminal node.
func (a *AliasedPath) SetMeasurementAlias(alias string) {
	a.measurementAlias = alias
}

// QueryAlias returns the alias given by the query's AS clause, or "" when
// none was set.
func (a *AliasedPath) QueryAlias() string {
	return a.queryAlias
}

// SetQueryAlias sets the alias given by the query's AS clause.
func (a *AliasedPath) SetQueryAlias(alias string) {
	a.queryAlias = alias
}

// FullPathWithAlias renders the device prefix joined with the measurement
// alias in place of the real measurement name. It fails with an
// InvalidStateError when no measurement alias was set; callers that may
// hold alias-free paths should check MeasurementAlias first.
func (a *AliasedPath) FullPathWithAlias() (string, error) {
	if a.measurementAlias == "" {
		return "", &InvalidStateError{Message: "measurement alias is not set"}
	}
	return a.Device() + PathSeparator + a.measurementAlias, nil
}
