package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/infrastructure/timeutil"
	"github.com/flight-search/booking-wizard/internal/wizard"
)

var epoch = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

func newWizard(t *testing.T) *wizard.Wizard {
	t.Helper()
	w, err := wizard.New(&domain.FlightOffer{TotalPrice: 100, Currency: "USD"}, 7, &domain.SearchParameters{Adults: 1})
	require.NoError(t, err)
	return w
}

// submittingWizard returns a wizard with a running submission.
func submittingWizard(t *testing.T) *wizard.Wizard {
	t.Helper()
	w := newWizard(t)
	first, last, email, phone, nat, dob := "Ada", "Lovelace", "ada@example.com", "+44", "GB", "1990-04-12"
	require.NoError(t, w.UpdatePassenger(0, domain.PassengerPatch{
		FirstName: &first, LastName: &last, Email: &email,
		PhoneNumber: &phone, Nationality: &nat, DateOfBirth: &dob,
	}))
	require.True(t, w.Advance())
	require.NoError(t, w.ReportCard(wizard.CardState{Complete: true, PaymentMethodID: "pm_1"}))
	_, err := w.BeginSubmit(true)
	require.NoError(t, err)
	return w
}

func TestStore_CreateAndWith(t *testing.T) {
	store := NewStore(time.Minute, timeutil.NewMockClock(epoch))
	w := newWizard(t)

	id := store.Create(w)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	var got *wizard.Wizard
	require.NoError(t, store.With(id, func(w *wizard.Wizard) error {
		got = w
		return nil
	}))
	assert.Same(t, w, got)
}

func TestStore_WithUnknownSession(t *testing.T) {
	store := NewStore(time.Minute, nil)

	err := store.With("missing", func(*wizard.Wizard) error {
		t.Fatal("callback must not run")
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_WithReturnsCallbackError(t *testing.T) {
	store := NewStore(time.Minute, nil)
	id := store.Create(newWizard(t))

	err := store.With(id, func(*wizard.Wizard) error { return domain.ErrInvalidTransition })

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestStore_ExpiresIdleSessions(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	store := NewStore(30*time.Minute, clock)
	id := store.Create(newWizard(t))

	clock.Advance(20 * time.Minute)
	require.NoError(t, store.With(id, func(*wizard.Wizard) error { return nil }))

	// access refreshed the expiry
	clock.Advance(20 * time.Minute)
	require.NoError(t, store.With(id, func(*wizard.Wizard) error { return nil }))

	clock.Advance(31 * time.Minute)
	err := store.With(id, func(*wizard.Wizard) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Minute, nil)
	id := store.Create(newWizard(t))

	assert.True(t, store.Delete(id))
	assert.False(t, store.Delete(id))
	assert.Zero(t, store.Len())
	assert.ErrorIs(t, store.With(id, func(*wizard.Wizard) error { return nil }), domain.ErrSessionNotFound)
}

func TestStore_SweepKeepsBusySessions(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	store := NewStore(time.Minute, clock)

	idle := store.Create(newWizard(t))
	busy := store.Create(submittingWizard(t))
	clock.Advance(30 * time.Second)
	fresh := store.Create(newWizard(t))

	clock.Advance(45 * time.Second)
	removed := store.Sweep()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, store.Len())
	assert.ErrorIs(t, store.With(idle, func(*wizard.Wizard) error { return nil }), domain.ErrSessionNotFound)
	assert.NoError(t, store.With(fresh, func(*wizard.Wizard) error { return nil }))

	// a running submission can still report its outcome
	assert.NoError(t, store.With(busy, func(w *wizard.Wizard) error {
		assert.True(t, w.Busy())
		return nil
	}))
}

func TestStore_RunStopsWithContext(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	store := NewStore(time.Minute, clock)
	store.Create(newWizard(t))
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestStore_SerialisesAccessPerSession(t *testing.T) {
	store := NewStore(time.Minute, nil)
	id := store.Create(newWizard(t))

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.With(id, func(*wizard.Wizard) error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}
