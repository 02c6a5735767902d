package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/booking-wizard/internal/domain"
)

func newTestWidget(t *testing.T, handler http.HandlerFunc) *StripeWidget {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewStripeWidget(Config{
		SecretKey:  "sk_test_123",
		APIURL:     srv.URL,
		HTTPClient: srv.Client(),
	})
}

func TestStripeWidget_Ready(t *testing.T) {
	assert.False(t, NewStripeWidget(Config{}).Ready())
	assert.True(t, NewStripeWidget(Config{SecretKey: "sk_test_123"}).Ready())

	var nilWidget *StripeWidget
	assert.False(t, nilWidget.Ready())
}

func TestStripeWidget_ConfirmCardPayment_Succeeded(t *testing.T) {
	widget := newTestWidget(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents/pi_123/confirm", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "pm_card_visa", r.PostForm.Get("payment_method"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"succeeded"}`))
	})

	conf, err := widget.ConfirmCardPayment(context.Background(), "pi_123_secret_abc", domain.Card{PaymentMethodID: "pm_card_visa"})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", conf.IntentID)
	assert.True(t, conf.Succeeded())
}

func TestStripeWidget_ConfirmCardPayment_RequiresAction(t *testing.T) {
	widget := newTestWidget(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"requires_action"}`))
	})

	conf, err := widget.ConfirmCardPayment(context.Background(), "pi_123_secret_abc", domain.Card{PaymentMethodID: "pm_3ds"})

	require.NoError(t, err)
	assert.False(t, conf.Succeeded())
	assert.Equal(t, domain.PaymentStatus("requires_action"), conf.Status)
}

func TestStripeWidget_ConfirmCardPayment_CardDeclined(t *testing.T) {
	widget := newTestWidget(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	})

	_, err := widget.ConfirmCardPayment(context.Background(), "pi_123_secret_abc", domain.Card{PaymentMethodID: "pm_declined"})

	var perr *domain.PaymentError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "card_declined", perr.Code)
	assert.Equal(t, "Your card was declined.", perr.Message)
	assert.Equal(t, "Your card was declined.", domain.UserMessage(err, "Failed to book flight"))
}

func TestStripeWidget_ConfirmCardPayment_NotReady(t *testing.T) {
	_, err := NewStripeWidget(Config{}).ConfirmCardPayment(context.Background(), "pi_1_secret_2", domain.Card{})

	assert.ErrorIs(t, err, domain.ErrPaymentNotReady)
}

func TestStripeWidget_ConfirmCardPayment_MalformedSecret(t *testing.T) {
	widget := newTestWidget(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := widget.ConfirmCardPayment(context.Background(), "garbage", domain.Card{PaymentMethodID: "pm"})

	assert.ErrorIs(t, err, ErrMalformedClientSecret)
}

func TestIntentIDFromClientSecret(t *testing.T) {
	tests := []struct {
		secret  string
		want    string
		wantErr bool
	}{
		{"pi_3Nabc_secret_xyz", "pi_3Nabc", false},
		{"pi_1_secret_", "pi_1", false},
		{"_secret_abc", "", true},
		{"seti_1_secret_abc", "", true},
		{"pi_without_marker", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.secret, func(t *testing.T) {
			got, err := IntentIDFromClientSecret(tt.secret)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedClientSecret)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntentIDFromClientSecret_DoesNotLeakSecret(t *testing.T) {
	_, err := IntentIDFromClientSecret("seti_1_secret_topsecret")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "topsecret")
}
