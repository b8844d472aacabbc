package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewbook/models"
)

const testDate = "2025-09-10"

func testStart(hour, minute int) time.Time {
	return time.Date(2025, 9, 10, hour, minute, 0, 0, time.UTC)
}

func newTestService(professionals []models.Professional, slots []models.Slot) (*DefaultBookingService, *fakeSlotRepo, *fakeBookingRepo) {
	slotStore := newFakeSlotRepo(slots...)
	bookingStore := newFakeBookingRepo()
	svc := NewBookingService(newFakeProfessionalRepo(professionals...), slotStore, bookingStore)
	return svc, slotStore, bookingStore
}

func crew() []models.Professional {
	return []models.Professional{
		{ID: "p1", Name: "Alice", VehicleID: "v1"},
		{ID: "p2", Name: "Bob", VehicleID: "v1"},
		{ID: "p3", Name: "Cara", VehicleID: "v2"},
	}
}

func TestCheckAvailability_NoFreeSlots(t *testing.T) {
	svc, _, _ := newTestService(crew(), []models.Slot{
		{ID: "s1", ProfessionalID: "p1", Date: testDate, Start: 480, End: 780, Status: models.SlotBooked},
	})

	result, err := svc.CheckAvailability(context.Background(), testDate, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestCheckAvailability_ListsFreeSlotsOrderedByProfessional(t *testing.T) {
	svc, _, _ := newTestService(crew(), []models.Slot{
		{ID: "s2", ProfessionalID: "p2", Date: testDate, Start: 600, End: 720, Status: models.SlotAvailable},
		{ID: "s1a", ProfessionalID: "p1", Date: testDate, Start: 480, End: 780, Status: models.SlotAvailable},
		{ID: "s1b", ProfessionalID: "p1", Date: testDate, Start: 800, End: 900, Status: models.SlotBooked},
		{ID: "s1c", ProfessionalID: "p1", Date: testDate, Start: 900, End: 960, Status: models.SlotUnavailable},
	})

	result, err := svc.CheckAvailability(context.Background(), testDate, nil, 0)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "p1", result[0].ProfessionalID)
	assert.Equal(t, "Alice", result[0].Name)
	// Booked and unavailable slots are filtered out.
	require.Len(t, result[0].Availabilities, 1)
	assert.Equal(t, models.TimeSlotView{StartTime: "08:00", EndTime: "13:00"}, result[0].Availabilities[0])

	assert.Equal(t, "p2", result[1].ProfessionalID)
	require.Len(t, result[1].Availabilities, 1)
	assert.Equal(t, models.TimeSlotView{StartTime: "10:00", EndTime: "12:00"}, result[1].Availabilities[0])
}

func TestCheckAvailability_WindowRequiresFullContainment(t *testing.T) {
	svc, _, _ := newTestService(crew(), []models.Slot{
		// Covers 10:00-12:00.
		{ID: "s1", ProfessionalID: "p1", Date: testDate, Start: 480, End: 780, Status: models.SlotAvailable},
		// Starts exactly at 10:00 but ends short of 12:00; must not qualify.
		{ID: "s2", ProfessionalID: "p2", Date: testDate, Start: 600, End: 660, Status: models.SlotAvailable},
		// Covers the window but is booked.
		{ID: "s3", ProfessionalID: "p3", Date: testDate, Start: 480, End: 780, Status: models.SlotBooked},
	})

	start := testStart(10, 0)
	result, err := svc.CheckAvailability(context.Background(), testDate, &start, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "p1", result[0].ProfessionalID)
}

func TestCheckAvailability_WindowAtExactSlotBounds(t *testing.T) {
	svc, _, _ := newTestService(crew(), []models.Slot{
		{ID: "s1", ProfessionalID: "p1", Date: testDate, Start: 600, End: 720, Status: models.SlotAvailable},
	})

	start := testStart(10, 0)
	result, err := svc.CheckAvailability(context.Background(), testDate, &start, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "p1", result[0].ProfessionalID)
}

func TestIsAvailable(t *testing.T) {
	svc, slotStore, _ := newTestService(crew(), []models.Slot{
		{ID: "s1", ProfessionalID: "p1", Date: testDate, Start: 480, End: 780, Status: models.SlotAvailable},
	})

	ok, err := svc.isAvailable(context.Background(), "p1", testDate, 600, 720)
	require.NoError(t, err)
	assert.True(t, ok)

	// A slot added later through Save is picked up immediately.
	require.NoError(t, slotStore.Save(context.Background(), models.Slot{
		ID: "s2", ProfessionalID: "p1", Date: testDate, Start: 840, End: 960, Status: models.SlotAvailable,
	}))
	ok, err = svc.isAvailable(context.Background(), "p1", testDate, 840, 960)
	require.NoError(t, err)
	assert.True(t, ok)

	// Window extends past the slot end.
	ok, err = svc.isAvailable(context.Background(), "p1", testDate, 600, 840)
	require.NoError(t, err)
	assert.False(t, ok)

	// No slots at all on another date.
	ok, err = svc.isAvailable(context.Background(), "p1", "2025-09-11", 600, 720)
	require.NoError(t, err)
	assert.False(t, ok)
}
