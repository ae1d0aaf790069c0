package main

import (
	"testing"
)

// Smoke test to ensure main honors SKIP_LOOKUP_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_LOOKUP_RUN", "1")
	main()
}
