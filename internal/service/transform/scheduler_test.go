package transform

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RejectsInvalidSpec(t *testing.T) {
	sched := NewScheduler(testService(nil, mustDate(t, "2023-08-01")), slog.New(slog.DiscardHandler))

	err := sched.Start("every now and then")

	assert.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	sched := NewScheduler(testService(nil, mustDate(t, "2023-08-01")), slog.New(slog.DiscardHandler))

	assert.NoError(t, sched.Start("@daily"))
	sched.Stop()
}
