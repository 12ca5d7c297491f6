package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	asStudent = SessionActor{IsStudent: true}
	asMentor  = SessionActor{IsMentor: true}
	asAdmin   = SessionActor{IsAdmin: true}
	asNobody  = SessionActor{}
)

func TestNextSessionStatusRequested(t *testing.T) {
	next, err := NextSessionStatus(StatusRequested, ActionAccept, asMentor)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, next)

	next, err = NextSessionStatus(StatusRequested, ActionReject, asMentor)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, next)

	for _, actor := range []SessionActor{asStudent, asMentor} {
		next, err = NextSessionStatus(StatusRequested, ActionCancel, actor)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, next)
	}
}

func TestNextSessionStatusStudentCannotAcceptOrReject(t *testing.T) {
	for _, action := range []string{ActionAccept, ActionReject} {
		_, err := NextSessionStatus(StatusRequested, action, asStudent)
		require.Error(t, err, action)
		assert.Equal(t, CodeInvalidTransition, ErrCode(err))
	}
}

func TestNextSessionStatusAccepted(t *testing.T) {
	for _, actor := range []SessionActor{asStudent, asMentor} {
		next, err := NextSessionStatus(StatusAccepted, ActionCancel, actor)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, next)
	}

	next, err := NextSessionStatus(StatusAccepted, ActionComplete, asAdmin)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, next)

	// Re-accepting an accepted session is not a transition.
	_, err = NextSessionStatus(StatusAccepted, ActionAccept, asMentor)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidTransition, ErrCode(err))
}

func TestNextSessionStatusCompleteRequiresAdmin(t *testing.T) {
	for _, actor := range []SessionActor{asStudent, asMentor, asNobody} {
		_, err := NextSessionStatus(StatusAccepted, ActionComplete, actor)
		require.Error(t, err)
		assert.Equal(t, CodeNotAuthorized, ErrCode(err))
	}
}

func TestNextSessionStatusTerminalStates(t *testing.T) {
	for _, terminal := range []string{StatusRejected, StatusCancelled, StatusCompleted} {
		for _, action := range []string{ActionAccept, ActionReject, ActionCancel} {
			_, err := NextSessionStatus(terminal, action, asMentor)
			require.Error(t, err, terminal+"/"+action)
			assert.Equal(t, CodeSessionTerminal, ErrCode(err))
		}
	}
}

// A request that is cancelled can never be accepted afterwards.
func TestCancelThenAcceptFails(t *testing.T) {
	next, err := NextSessionStatus(StatusRequested, ActionCancel, asStudent)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, next)

	_, err = NextSessionStatus(next, ActionAccept, asMentor)
	require.Error(t, err)
	assert.Equal(t, CodeSessionTerminal, ErrCode(err))
}

// Full lifecycle: the mentor accepts, the student cancels, and the mentor's
// second accept bounces off the terminal state.
func TestAcceptCancelAcceptSequence(t *testing.T) {
	status := StatusRequested

	status, err := NextSessionStatus(status, ActionAccept, asMentor)
	require.NoError(t, err)
	require.Equal(t, StatusAccepted, status)

	status, err = NextSessionStatus(status, ActionCancel, asStudent)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, status)

	_, err = NextSessionStatus(status, ActionAccept, asMentor)
	require.Error(t, err)
	assert.Equal(t, CodeSessionTerminal, ErrCode(err))
}

func TestNextSessionStatusStrangerNeverChangesStatus(t *testing.T) {
	for _, current := range []string{StatusRequested, StatusAccepted} {
		for _, action := range []string{ActionAccept, ActionReject, ActionCancel} {
			_, err := NextSessionStatus(current, action, asNobody)
			require.Error(t, err, current+"/"+action)
			assert.Equal(t, CodeNotAuthorized, ErrCode(err))
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.False(t, IsTerminalStatus(StatusRequested))
	assert.False(t, IsTerminalStatus(StatusAccepted))
	assert.True(t, IsTerminalStatus(StatusRejected))
	assert.True(t, IsTerminalStatus(StatusCancelled))
	assert.True(t, IsTerminalStatus(StatusCompleted))
}

func TestValidateBookingInputDuration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	for _, minutes := range []int{14, 0, -30, 121, 600} {
		err := ValidateBookingInput(future, minutes, now)
		require.Error(t, err, minutes)
		assert.Equal(t, CodeInvalidDuration, ErrCode(err))
	}
	for _, minutes := range []int{15, 60, 120} {
		assert.NoError(t, ValidateBookingInput(future, minutes, now))
	}
}

func TestValidateBookingInputPastSchedule(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	err := ValidateBookingInput(now.Add(-time.Minute), 60, now)
	require.Error(t, err)
	assert.Equal(t, CodePastSchedule, ErrCode(err))
}

// Duration is checked before the schedule, so a past time with a bad
// duration reports the duration problem.
func TestValidateBookingInputDurationCheckedFirst(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	err := ValidateBookingInput(now.Add(-time.Hour), 10, now)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidDuration, ErrCode(err))
}
