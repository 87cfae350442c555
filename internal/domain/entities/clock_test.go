package entities

import (
	"testing"
	"time"
)

// relogioFixo makes the entity clock advance one second per call.
func relogioFixo(t *testing.T) {
	t.Helper()
	base := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	original := agora
	agora = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	t.Cleanup(func() { agora = original })
}
