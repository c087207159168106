package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingRepo "pawhaven/database/repository/booking"
	groomingRepo "pawhaven/database/repository/grooming"
	"pawhaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// --- in-memory fakes ---

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (r *fakeBookingRepo) CreateIfSlotFree(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		existing := &r.bookings[i]
		if existing.CaregiverID != b.CaregiverID || existing.Date != b.Date || !existing.Active() {
			continue
		}
		if Overlaps(b.Start, b.End, existing.Start, existing.End) {
			return bookingRepo.ErrSlotTaken
		}
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByCaregiverDate(ctx context.Context, caregiverID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CaregiverID == caregiverID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Booking(nil), r.bookings...), nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

type fakeGroomingRepo struct {
	mu       sync.Mutex
	bookings []models.GroomingBooking
}

func (r *fakeGroomingRepo) CreateIfSlotFree(ctx context.Context, b *models.GroomingBooking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.Date == b.Date && existing.Slot == b.Slot && existing.Status != models.BookingRejected {
			return groomingRepo.ErrSlotTaken
		}
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeGroomingRepo) GetByID(ctx context.Context, id string) (*models.GroomingBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeGroomingRepo) GetByUser(ctx context.Context, userID string) ([]models.GroomingBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.GroomingBooking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeGroomingRepo) GetAll(ctx context.Context) ([]models.GroomingBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.GroomingBooking(nil), r.bookings...), nil
}

func (r *fakeGroomingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.GroomingBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

type fakeCaregiverRepo struct {
	caregivers map[string]*models.Caregiver
}

func (r *fakeCaregiverRepo) GetByID(id string) (*models.Caregiver, error) {
	return r.caregivers[id], nil
}
func (r *fakeCaregiverRepo) GetAll() ([]models.Caregiver, error) { return nil, nil }
func (r *fakeCaregiverRepo) Create(cg *models.Caregiver) error   { return nil }
func (r *fakeCaregiverRepo) Update(cg *models.Caregiver) error   { return nil }
func (r *fakeCaregiverRepo) Delete(id string) error              { return nil }

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error)       { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) GetAll() ([]models.User, error)                { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Delete(id string) error                        { return nil }
func (r *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.users[id], nil
}

type fakePetRepo struct {
	pets map[string]*models.Pet
}

func (r *fakePetRepo) GetByID(id string) (*models.Pet, error)            { return r.pets[id], nil }
func (r *fakePetRepo) GetByOwner(ownerID string) ([]models.Pet, error)   { return nil, nil }
func (r *fakePetRepo) Create(p *models.Pet) error                        { return nil }
func (r *fakePetRepo) Update(p *models.Pet) error                        { return nil }
func (r *fakePetRepo) Delete(id string) error                            { return nil }

type fakeNotifier struct {
	mu       sync.Mutex
	payloads []models.BookingStatusPayload
	err      error
}

func (n *fakeNotifier) DispatchBookingStatus(ctx context.Context, p models.BookingStatusPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.payloads = append(n.payloads, p)
	return nil
}

func (n *fakeNotifier) sent() []models.BookingStatusPayload {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.BookingStatusPayload(nil), n.payloads...)
}

// --- fixture ---

type fixture struct {
	svc        *DefaultBookingService
	bookings   *fakeBookingRepo
	grooming   *fakeGroomingRepo
	caregivers *fakeCaregiverRepo
	users      *fakeUserRepo
	pets       *fakePetRepo
	notifier   *fakeNotifier
}

func newFixture() *fixture {
	bookings := &fakeBookingRepo{}
	grooming := &fakeGroomingRepo{}
	caregivers := &fakeCaregiverRepo{caregivers: map[string]*models.Caregiver{
		"cg-1": {ID: "cg-1", Name: "Alice Groomsworth", Email: "alice@pawhaven.dev"},
		"cg-2": {ID: "cg-2", Name: "Bob Barker", Email: "bob@pawhaven.dev"},
	}}
	users := &fakeUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", Username: "jordan", Email: "jordan@example.com"},
	}}
	pets := &fakePetRepo{pets: map[string]*models.Pet{
		"pet-1": {ID: "pet-1", OwnerID: "user-1", Name: "Rex", Species: "dog"},
	}}
	notifier := &fakeNotifier{}

	return &fixture{
		svc:        NewDefaultBookingService(bookings, grooming, caregivers, users, pets, notifier, zap.NewNop()),
		bookings:   bookings,
		grooming:   grooming,
		caregivers: caregivers,
		users:      users,
		pets:       pets,
		notifier:   notifier,
	}
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CaregiverID: "cg-1",
		UserID:      "user-1",
		Date:        "2026-09-14",
		Start:       9 * 60,
		End:         11 * 60,
	}
}

// --- CreateBooking ---

func TestCreateBookingSucceeds(t *testing.T) {
	f := newFixture()

	b, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, "cg-1", b.CaregiverID)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestCreateBookingRejectsInvertedInterval(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Start, req.End = req.End, req.Start

	_, err := f.svc.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, f.bookings.bookings, "nothing may persist on validation failure")
}

func TestCreateBookingRejectsZeroLengthInterval(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.End = req.Start

	_, err := f.svc.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateBookingRejectsMalformedDate(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = "14-09-2026"

	_, err := f.svc.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateBookingUnknownCaregiver(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.CaregiverID = "cg-missing"

	_, err := f.svc.CreateBooking(context.Background(), req)

	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "caregiver", nferr.Resource)
	assert.Empty(t, f.bookings.bookings)
}

func TestCreateBookingConflictsWithPendingOverlap(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Start = 10 * 60
	req.End = 12 * 60

	_, err = f.svc.CreateBooking(ctx, req)

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestCreateBookingConflictsWithAcceptedOverlap(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, first.ID, models.BookingAccepted, Actor{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	req := validRequest()
	req.Start = 10 * 60
	req.End = 12 * 60

	_, err = f.svc.CreateBooking(ctx, req)

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestCreateBookingRejectedBookingFreesSlot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, first.ID, models.BookingRejected, Actor{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	second, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, second.Status)
}

func TestCreateBookingTouchingIntervalsDoNotConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	// [11:00, 13:00) starts exactly where [09:00, 11:00) ends.
	req := validRequest()
	req.Start = 11 * 60
	req.End = 13 * 60

	_, err = f.svc.CreateBooking(ctx, req)
	require.NoError(t, err)
	assert.Len(t, f.bookings.bookings, 2)
}

func TestCreateBookingDifferentCaregiversDoNotConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.CaregiverID = "cg-2"

	_, err = f.svc.CreateBooking(ctx, req)
	require.NoError(t, err)
}

func TestCreateBookingDifferentDatesDoNotConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Date = "2026-09-15"

	_, err = f.svc.CreateBooking(ctx, req)
	require.NoError(t, err)
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateBooking(ctx, validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		var cerr *ConflictError
		require.ErrorAs(t, err, &cerr)
		conflicts++
	}

	assert.Equal(t, 1, successes, "exactly one request may win the slot")
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, f.bookings.bookings, 1)
}

// --- SetStatus ---

func TestSetStatusAcceptNotifiesOwner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	updated, err := f.svc.SetStatus(ctx, b.ID, models.BookingAccepted, Actor{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, updated.Status)

	sent := f.notifier.sent()
	require.Len(t, sent, 1, "exactly one notification per transition")
	assert.Equal(t, b.ID, sent[0].BookingID)
	assert.Equal(t, "user-1", sent[0].RecipientID)
	assert.Equal(t, "jordan@example.com", sent[0].RecipientEmail)
	assert.Equal(t, models.NotifyKindCaregiver, sent[0].Kind)
	assert.Equal(t, "Alice Groomsworth", sent[0].SubjectContext)
	assert.Equal(t, models.BookingAccepted, sent[0].Status)
}

func TestSetStatusBookedCaregiverMayDecide(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	updated, err := f.svc.SetStatus(ctx, b.ID, models.BookingRejected, Actor{ID: "cg-1", Role: models.RoleCaregiver})
	require.NoError(t, err)
	assert.Equal(t, models.BookingRejected, updated.Status)
}

func TestSetStatusOtherCaregiverDenied(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, b.ID, models.BookingAccepted, Actor{ID: "cg-2", Role: models.RoleCaregiver})

	var aerr *AuthorizationError
	require.ErrorAs(t, err, &aerr)

	stored, _ := f.bookings.GetByID(ctx, b.ID)
	assert.Equal(t, models.BookingPending, stored.Status, "denied transition must not persist")
	assert.Empty(t, f.notifier.sent())
}

func TestSetStatusPlainUserDenied(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, b.ID, models.BookingAccepted, Actor{ID: "user-1", Role: models.RoleUser})

	var aerr *AuthorizationError
	require.ErrorAs(t, err, &aerr)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SetStatus(context.Background(), "whatever", "cancelled", Actor{Role: models.RoleAdmin})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSetStatusUnknownBooking(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SetStatus(context.Background(), "missing", models.BookingAccepted, Actor{Role: models.RoleAdmin})

	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestSetStatusAlreadyDecided(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := Actor{ID: "admin-1", Role: models.RoleAdmin}

	b, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, b.ID, models.BookingAccepted, admin)
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, b.ID, models.BookingRejected, admin)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	stored, _ := f.bookings.GetByID(ctx, b.ID)
	assert.Equal(t, models.BookingAccepted, stored.Status)
	assert.Len(t, f.notifier.sent(), 1, "no second notification for a terminal booking")
}

func TestSetStatusSurvivesNotificationFailure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notifier.err = errors.New("queue unreachable")

	b, err := f.svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	updated, err := f.svc.SetStatus(ctx, b.ID, models.BookingAccepted, Actor{Role: models.RoleAdmin})
	require.NoError(t, err, "notification failure must not surface")
	assert.Equal(t, models.BookingAccepted, updated.Status)

	stored, _ := f.bookings.GetByID(ctx, b.ID)
	assert.Equal(t, models.BookingAccepted, stored.Status, "transition persists despite dispatch failure")
}

// --- grooming ---

func validGroomingRequest() CreateGroomingRequest {
	return CreateGroomingRequest{
		UserID:  "user-1",
		PetID:   "pet-1",
		Service: "full-groom",
		Date:    "2026-09-14",
		Slot:    10 * 60,
	}
}

func TestCreateGroomingBookingSucceeds(t *testing.T) {
	f := newFixture()

	b, err := f.svc.CreateGroomingBooking(context.Background(), validGroomingRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b.Status)
}

func TestCreateGroomingBookingExactSlotConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateGroomingBooking(ctx, validGroomingRequest())
	require.NoError(t, err)

	_, err = f.svc.CreateGroomingBooking(ctx, validGroomingRequest())

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestCreateGroomingBookingDifferentSlotSucceeds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateGroomingBooking(ctx, validGroomingRequest())
	require.NoError(t, err)

	req := validGroomingRequest()
	req.Slot = 11 * 60

	_, err = f.svc.CreateGroomingBooking(ctx, req)
	require.NoError(t, err)
}

func TestCreateGroomingBookingForeignPetDenied(t *testing.T) {
	f := newFixture()
	f.pets.pets["pet-2"] = &models.Pet{ID: "pet-2", OwnerID: "someone-else", Name: "Mimi", Species: "cat"}

	req := validGroomingRequest()
	req.PetID = "pet-2"

	_, err := f.svc.CreateGroomingBooking(context.Background(), req)

	var aerr *AuthorizationError
	require.ErrorAs(t, err, &aerr)
	assert.Empty(t, f.grooming.bookings)
}

func TestCreateGroomingBookingUnknownPet(t *testing.T) {
	f := newFixture()

	req := validGroomingRequest()
	req.PetID = "pet-missing"

	_, err := f.svc.CreateGroomingBooking(context.Background(), req)

	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestSetGroomingStatusAdminOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b, err := f.svc.CreateGroomingBooking(ctx, validGroomingRequest())
	require.NoError(t, err)

	_, err = f.svc.SetGroomingStatus(ctx, b.ID, models.BookingAccepted, Actor{ID: "cg-1", Role: models.RoleCaregiver})
	var aerr *AuthorizationError
	require.ErrorAs(t, err, &aerr)

	updated, err := f.svc.SetGroomingStatus(ctx, b.ID, models.BookingAccepted, Actor{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, updated.Status)

	sent := f.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, models.NotifyKindPet, sent[0].Kind)
	assert.Equal(t, "full-groom", sent[0].SubjectContext)
}

// --- Overlaps ---

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"identical", 540, 660, 540, 660, true},
		{"contained", 540, 660, 570, 600, true},
		{"partial left", 540, 660, 500, 570, true},
		{"partial right", 540, 660, 630, 720, true},
		{"touching end to start", 540, 660, 660, 720, false},
		{"touching start to end", 540, 660, 480, 540, false},
		{"disjoint", 540, 660, 720, 780, false},
		{"one minute overlap", 540, 660, 659, 720, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1), "overlap is symmetric")
		})
	}
}
