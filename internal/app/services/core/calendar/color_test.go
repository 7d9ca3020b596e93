package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	testCases := []struct {
		status   Status
		expected string
	}{
		{StatusPending, "#ff9800"},
		{StatusConfirmed, "#4caf50"},
		{StatusCompleted, "#2196f3"},
		{StatusCancelled, "#f44336"},
		{StatusRescheduled, "#3f51b5"},
		{Status("SOMETHING_NEW"), "#3f51b5"},
		{Status(""), "#3f51b5"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusColor(tc.status))
		})
	}
}
