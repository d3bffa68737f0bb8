package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
)

func TestNext_AllowedTransitions(t *testing.T) {
	cases := []struct {
		from Status
		ev   Event
		want Status
	}{
		{StatusPending, EventConfirm, StatusConfirmed},
		{StatusPending, EventCancel, StatusCancelled},
		{StatusPending, EventReject, StatusRejected},
		{StatusConfirmed, EventCancel, StatusCancelled},
		{StatusConfirmed, EventComplete, StatusCompleted},
	}

	for _, tc := range cases {
		got, err := Next(tc.from, tc.ev)
		assert.NoError(t, err, "%s + %s", tc.from, tc.ev)
		assert.Equal(t, tc.want, got)
	}
}

func TestNext_RejectedTransitions(t *testing.T) {
	cases := []struct {
		from Status
		ev   Event
	}{
		{StatusPending, EventComplete},
		{StatusConfirmed, EventConfirm},
		{StatusConfirmed, EventReject},
		{StatusCancelled, EventConfirm},
		{StatusCancelled, EventCancel},
		{StatusCompleted, EventCancel},
		{StatusCompleted, EventComplete},
		{StatusRejected, EventConfirm},
		{Status("UNKNOWN"), EventConfirm},
	}

	for _, tc := range cases {
		_, err := Next(tc.from, tc.ev)
		assert.Error(t, err, "%s + %s", tc.from, tc.ev)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusRejected))
}

func TestIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRejected} {
		assert.True(t, IsValid(s))
	}
	assert.False(t, IsValid(Status("")))
	assert.False(t, IsValid(Status("pending")))
	assert.False(t, IsValid(Status("DONE")))
}
