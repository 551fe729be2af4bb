//go:build unit

package calendar_test

import (
	"testing"

	"barberflow/internal/domain/calendar"
	"barberflow/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnassignUnknown(t *testing.T) {
	known, stray := int64(3), int64(99)
	resources := []calendar.Resource{{ID: 3, Name: "Davit"}, {ID: 4, Name: "Levan"}}

	events := []calendar.Event{
		builder.NewEventBuilder().WithID(1).WithResource(&known).Build(),
		builder.NewEventBuilder().WithID(2).WithResource(&stray).Build(),
		builder.NewEventBuilder().WithID(3).WithResource(nil).Build(),
	}

	cleared := calendar.UnassignUnknown(events, resources)

	assert.Equal(t, []int64{2}, cleared)
	require.NotNil(t, events[0].ResourceID)
	assert.Equal(t, int64(3), *events[0].ResourceID)
	assert.Nil(t, events[1].ResourceID)
	assert.Nil(t, events[2].ResourceID)

	t.Run("no columns leaves nothing assigned", func(t *testing.T) {
		evs := []calendar.Event{builder.NewEventBuilder().WithResource(&known).Build()}

		assert.Equal(t, []int64{1}, calendar.UnassignUnknown(evs, nil))
		assert.Nil(t, evs[0].ResourceID)
	})
}
