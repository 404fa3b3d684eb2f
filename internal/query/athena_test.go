package query

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/athena/types"
	"github.com/stretchr/testify/assert"

	"facility-pipeline/internal/domain"
)

func TestStateFromAthena(t *testing.T) {
	tests := []struct {
		in   types.QueryExecutionState
		want domain.QueryState
	}{
		{in: types.QueryExecutionStateQueued, want: domain.QueryStateQueued},
		{in: types.QueryExecutionStateRunning, want: domain.QueryStateRunning},
		{in: types.QueryExecutionStateSucceeded, want: domain.QueryStateSucceeded},
		{in: types.QueryExecutionStateFailed, want: domain.QueryStateFailed},
		{in: types.QueryExecutionStateCancelled, want: domain.QueryStateCancelled},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stateFromAthena(tt.in))
	}
}
