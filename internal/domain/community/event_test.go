package community

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manzp111/smartville/internal/domain/shared"
)

func TestNewEvent(t *testing.T) {
	event, err := NewEvent(uuid.New(), uuid.New(), "  Umuganda cleanup  ", "Monthly cleanup", time.Now().AddDate(0, 0, 7))
	require.NoError(t, err)

	assert.Equal(t, "Umuganda cleanup", event.Title)
	assert.Equal(t, EventPending, event.Status)
	assert.NotEqual(t, uuid.Nil, event.ID)
}

func TestNewEvent_Validation(t *testing.T) {
	_, err := NewEvent(uuid.New(), uuid.New(), "", "desc", time.Now())
	assert.Error(t, err)

	_, err = NewEvent(uuid.Nil, uuid.New(), "Title", "desc", time.Now())
	assert.Error(t, err)

	_, err = NewEvent(uuid.New(), uuid.New(), "Title", "desc", time.Time{})
	assert.Error(t, err)
}

func TestEvent_StatusTransitions(t *testing.T) {
	event, err := NewEvent(uuid.New(), uuid.New(), "Meeting", "", time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)

	require.NoError(t, event.Approve())
	assert.Equal(t, EventApproved, event.Status)

	// only pending events can be approved or rejected
	assert.ErrorIs(t, event.Approve(), shared.ErrInvalidTransition)
	assert.ErrorIs(t, event.Reject(), shared.ErrInvalidTransition)

	// an approved event can still be cancelled
	require.NoError(t, event.Cancel())
	assert.Equal(t, EventCancelled, event.Status)
	assert.ErrorIs(t, event.Cancel(), shared.ErrInvalidTransition)
}

func TestEvent_RejectedCannotBeCancelled(t *testing.T) {
	event, err := NewEvent(uuid.New(), uuid.New(), "Meeting", "", time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)

	require.NoError(t, event.Reject())
	assert.ErrorIs(t, event.Cancel(), shared.ErrInvalidTransition)
}

func TestComplaint_Resolve(t *testing.T) {
	complaint, err := NewComplaint(uuid.New(), uuid.New(), "Broken pump", "The borehole pump is down")
	require.NoError(t, err)
	assert.Equal(t, ComplaintPending, complaint.Status)

	require.NoError(t, complaint.Resolve("Pump repaired"))
	assert.Equal(t, ComplaintResolved, complaint.Status)
	assert.Equal(t, "Pump repaired", complaint.Resolution)
	require.NotNil(t, complaint.ResolvedAt)

	assert.ErrorIs(t, complaint.Resolve("again"), shared.ErrInvalidTransition)
}

func TestAlert_Close(t *testing.T) {
	alert, err := NewCommunityAlert(uuid.New(), uuid.New(), "flood", "River rising", UrgencyHigh)
	require.NoError(t, err)
	assert.Equal(t, AlertActive, alert.Status)

	require.NoError(t, alert.Close())
	assert.Equal(t, AlertClosed, alert.Status)
	assert.ErrorIs(t, alert.Close(), shared.ErrInvalidTransition)
}

func TestAlert_DefaultUrgency(t *testing.T) {
	alert, err := NewCommunityAlert(uuid.New(), uuid.New(), "security", "", "")
	require.NoError(t, err)
	assert.Equal(t, UrgencyMedium, alert.Urgency)
}

func TestVisitor_CheckOut(t *testing.T) {
	visitor, err := NewVisitor(uuid.New(), uuid.New(), uuid.New(), uuid.New(), "family visit")
	require.NoError(t, err)
	assert.True(t, visitor.Staying())

	require.NoError(t, visitor.CheckOut())
	assert.False(t, visitor.Staying())
	assert.ErrorIs(t, visitor.CheckOut(), shared.ErrInvalidTransition)
}

func TestVolunteeringEvent_Full(t *testing.T) {
	event, err := NewVolunteeringEvent(uuid.New(), uuid.New(), "Tree planting", "", time.Now().AddDate(0, 0, 3))
	require.NoError(t, err)

	// zero limit means unlimited
	assert.False(t, event.Full(1000))

	event.MaxParticipants = 10
	assert.False(t, event.Full(9))
	assert.True(t, event.Full(10))
}
