package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrKind     = "kind"
	AttrOutcome  = "outcome"
)
