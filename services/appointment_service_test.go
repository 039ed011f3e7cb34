package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"marketplace-service/models"
	"marketplace-service/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAppointmentRepo struct {
	appointments map[uuid.UUID]*models.Appointment
	createErr    error
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[uuid.UUID]*models.Appointment)}
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	if m.createErr != nil {
		return m.createErr
	}
	appointment.ID = uuid.New()
	copied := *appointment
	m.appointments[appointment.ID] = &copied
	return nil
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	appointment, ok := m.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (m *mockAppointmentRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appointments {
		if a.ProviderID == userID || a.CustomerID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) FindBusySlots(ctx context.Context, providerID uuid.UUID, dayStart, dayEnd time.Time) ([]models.BusySlot, error) {
	var out []models.BusySlot
	for _, a := range m.appointments {
		if a.ProviderID != providerID || a.Status == models.AppointmentStatusCancelled {
			continue
		}
		if a.AppointmentDate.Before(dayStart) || !a.AppointmentDate.Before(dayEnd) {
			continue
		}
		out = append(out, models.BusySlot{AppointmentDate: a.AppointmentDate, DurationMins: a.DurationMins})
	}
	return out, nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	copied := *appointment
	m.appointments[appointment.ID] = &copied
	return nil
}

type availabilityKey struct {
	userID uuid.UUID
	date   time.Time
}

type mockAvailabilityRepo struct {
	entries map[availabilityKey]*models.Availability
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{entries: make(map[availabilityKey]*models.Availability)}
}

func (m *mockAvailabilityRepo) Upsert(ctx context.Context, entry *models.Availability) error {
	copied := *entry
	m.entries[availabilityKey{entry.UserID, entry.Date}] = &copied
	return nil
}

func (m *mockAvailabilityRepo) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.Availability, error) {
	entry, ok := m.entries[availabilityKey{userID, date}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (m *mockAvailabilityRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Availability, error) {
	var out []models.Availability
	for key, entry := range m.entries {
		if key.userID == userID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

type mockServiceRepo struct {
	services map[uuid.UUID]*models.Service
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{services: make(map[uuid.UUID]*models.Service)}
}

func (m *mockServiceRepo) Create(ctx context.Context, service *models.Service) error {
	service.ID = uuid.New()
	m.services[service.ID] = service
	return nil
}

func (m *mockServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	service, ok := m.services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return service, nil
}

func (m *mockServiceRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]models.Service, error) {
	return nil, nil
}

type appointmentFixture struct {
	appointments *mockAppointmentRepo
	availability *mockAvailabilityRepo
	services     *mockServiceRepo
	emitter      *mockEmitter
	svc          AppointmentService
}

func newAppointmentFixture() *appointmentFixture {
	f := &appointmentFixture{
		appointments: newMockAppointmentRepo(),
		availability: newMockAvailabilityRepo(),
		services:     newMockServiceRepo(),
		emitter:      &mockEmitter{},
	}
	f.svc = NewAppointmentService(f.appointments, f.availability, f.services, f.emitter, zap.NewNop())
	return f
}

func TestRequestAppointment_DefaultsToPending(t *testing.T) {
	f := newAppointmentFixture()
	providerID := uuid.New()

	result, serviceErr := f.svc.RequestAppointment(context.Background(), &RequestAppointmentRequest{
		ProviderID:      providerID,
		CustomerID:      uuid.New(),
		AppointmentDate: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		DurationMins:    45,
	})

	require.Nil(t, serviceErr)
	assert.Equal(t, models.AppointmentStatusPending, result.Status)

	stored := f.appointments.appointments[result.AppointmentID]
	require.NotNil(t, stored)
	assert.Equal(t, 45, stored.DurationMins)

	require.Len(t, f.emitter.emitted, 1)
	assert.Equal(t, providerID, f.emitter.emitted[0].UserID)
	assert.Equal(t, models.TypeAppointmentRequested, f.emitter.emitted[0].Type)
}

func TestRequestAppointment_AutoApproveConfirms(t *testing.T) {
	f := newAppointmentFixture()

	service := &models.Service{OwnerID: uuid.New(), Name: "Haircut", AutoApprove: true, DurationMins: 30}
	require.NoError(t, f.services.Create(context.Background(), service))

	result, serviceErr := f.svc.RequestAppointment(context.Background(), &RequestAppointmentRequest{
		ProviderID:      service.OwnerID,
		CustomerID:      uuid.New(),
		ServiceID:       &service.ID,
		AppointmentDate: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
	})

	require.Nil(t, serviceErr)
	assert.Equal(t, models.AppointmentStatusConfirmed, result.Status)

	stored := f.appointments.appointments[result.AppointmentID]
	assert.Equal(t, 30, stored.DurationMins, "duration falls back to the service default")
}

func TestRequestAppointment_BusyDayRejected(t *testing.T) {
	f := newAppointmentFixture()
	providerID := uuid.New()
	when := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	require.Nil(t, f.svc.SetAvailability(context.Background(), providerID, when, models.AvailabilityBusy))

	result, serviceErr := f.svc.RequestAppointment(context.Background(), &RequestAppointmentRequest{
		ProviderID:      providerID,
		CustomerID:      uuid.New(),
		AppointmentDate: when,
	})

	assert.Nil(t, result)
	require.NotNil(t, serviceErr)
	assert.Equal(t, http.StatusConflict, serviceErr.StatusCode)
	assert.Empty(t, f.appointments.appointments, "no row written on rejection")
	assert.Empty(t, f.emitter.emitted, "no notification on rejection")
}

func TestRequestAppointment_FreeDayAccepted(t *testing.T) {
	f := newAppointmentFixture()
	providerID := uuid.New()
	when := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	require.Nil(t, f.svc.SetAvailability(context.Background(), providerID, when, models.AvailabilityFree))

	_, serviceErr := f.svc.RequestAppointment(context.Background(), &RequestAppointmentRequest{
		ProviderID:      providerID,
		CustomerID:      uuid.New(),
		AppointmentDate: when,
	})

	require.Nil(t, serviceErr)
}

func TestRequestAppointment_UnknownService(t *testing.T) {
	f := newAppointmentFixture()
	missing := uuid.New()

	_, serviceErr := f.svc.RequestAppointment(context.Background(), &RequestAppointmentRequest{
		ProviderID:      uuid.New(),
		CustomerID:      uuid.New(),
		ServiceID:       &missing,
		AppointmentDate: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
	})

	require.NotNil(t, serviceErr)
	assert.Equal(t, http.StatusNotFound, serviceErr.StatusCode)
}

func seedAppointment(t *testing.T, f *appointmentFixture, status models.AppointmentStatus) *models.Appointment {
	t.Helper()
	appointment := &models.Appointment{
		ProviderID:      uuid.New(),
		CustomerID:      uuid.New(),
		AppointmentDate: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		Status:          status,
	}
	require.NoError(t, f.appointments.Create(context.Background(), appointment))
	return appointment
}

func TestUpdateAppointmentStatus_ConfirmNotifiesCustomer(t *testing.T) {
	f := newAppointmentFixture()
	appointment := seedAppointment(t, f, models.AppointmentStatusPending)

	require.Nil(t, f.svc.UpdateAppointmentStatus(context.Background(), appointment.ID, "confirmed"))

	assert.Equal(t, models.AppointmentStatusConfirmed, f.appointments.appointments[appointment.ID].Status)
	require.Len(t, f.emitter.emitted, 1)
	assert.Equal(t, appointment.CustomerID, f.emitter.emitted[0].UserID)
	assert.Equal(t, models.TypeAppointmentConfirmed, f.emitter.emitted[0].Type)
}

func TestUpdateAppointmentStatus_CancelAfterConfirm(t *testing.T) {
	f := newAppointmentFixture()
	appointment := seedAppointment(t, f, models.AppointmentStatusConfirmed)

	require.Nil(t, f.svc.UpdateAppointmentStatus(context.Background(), appointment.ID, "cancelled"))

	require.Len(t, f.emitter.emitted, 1)
	assert.Equal(t, models.TypeAppointmentCancelled, f.emitter.emitted[0].Type)
}

func TestUpdateAppointmentStatus_TerminalRejectsMoves(t *testing.T) {
	f := newAppointmentFixture()
	appointment := seedAppointment(t, f, models.AppointmentStatusCancelled)

	serviceErr := f.svc.UpdateAppointmentStatus(context.Background(), appointment.ID, "confirmed")

	require.NotNil(t, serviceErr)
	assert.Equal(t, http.StatusConflict, serviceErr.StatusCode)
}

func TestUpdateAppointmentStatus_SameStatusNoOp(t *testing.T) {
	f := newAppointmentFixture()
	appointment := seedAppointment(t, f, models.AppointmentStatusConfirmed)

	require.Nil(t, f.svc.UpdateAppointmentStatus(context.Background(), appointment.ID, "confirmed"))
	assert.Empty(t, f.emitter.emitted, "no duplicate confirmation notification")
}

func TestSetAvailability_RejectsUnknownStatus(t *testing.T) {
	f := newAppointmentFixture()

	serviceErr := f.svc.SetAvailability(context.Background(), uuid.New(), time.Now(), "maybe")

	require.NotNil(t, serviceErr)
	assert.Equal(t, http.StatusBadRequest, serviceErr.StatusCode)
}

func TestSetAvailability_LastWriteWins(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	when := time.Date(2026, 9, 14, 16, 30, 0, 0, time.UTC)

	require.Nil(t, f.svc.SetAvailability(context.Background(), userID, when, models.AvailabilityBusy))
	require.Nil(t, f.svc.SetAvailability(context.Background(), userID, when, models.AvailabilityFree))

	entries, serviceErr := f.svc.GetAvailability(context.Background(), userID)
	require.Nil(t, serviceErr)
	require.Len(t, entries, 1, "same day upserts into one row")
	assert.Equal(t, models.AvailabilityFree, entries[0].Status)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), entries[0].Date, "date truncated to day")
}

func TestGetBusySlots_ExcludesCancelledAndOtherDays(t *testing.T) {
	f := newAppointmentFixture()
	providerID := uuid.New()
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	for _, a := range []*models.Appointment{
		{ProviderID: providerID, CustomerID: uuid.New(), AppointmentDate: day.Add(9 * time.Hour), DurationMins: 60, Status: models.AppointmentStatusConfirmed},
		{ProviderID: providerID, CustomerID: uuid.New(), AppointmentDate: day.Add(11 * time.Hour), DurationMins: 30, Status: models.AppointmentStatusCancelled},
		{ProviderID: providerID, CustomerID: uuid.New(), AppointmentDate: day.Add(30 * time.Hour), DurationMins: 30, Status: models.AppointmentStatusPending},
	} {
		require.NoError(t, f.appointments.Create(context.Background(), a))
	}

	slots, serviceErr := f.svc.GetBusySlots(context.Background(), providerID, day.Add(13*time.Hour))

	require.Nil(t, serviceErr)
	require.Len(t, slots, 1)
	assert.Equal(t, day.Add(9*time.Hour), slots[0].AppointmentDate)
	assert.Equal(t, 60, slots[0].DurationMins)
}
