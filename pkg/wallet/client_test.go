package wallet_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/walletdesk/pkg/wallet"
)

func TestClient_Balance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		want       wallet.Balance
		wantErr    bool
		customerID string
	}{
		{
			name:       "balance with currency",
			status:     http.StatusOK,
			body:       `{"balance": 1234.5, "currency": "eur"}`,
			customerID: "cus_1",
			want:       wallet.Balance{CustomerID: "cus_1", Amount: 1234.5, Currency: "EUR"},
		},
		{
			name:       "default currency",
			status:     http.StatusOK,
			body:       `{"balance": 10, "customer": {"name": "Ann"}}`,
			customerID: "cus_2",
			want:       wallet.Balance{CustomerID: "cus_2", Amount: 10, Currency: wallet.DefaultCurrency},
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `{"error": "boom"}`,
			customerID: "cus_3",
			wantErr:    true,
		},
		{
			name:       "not found",
			status:     http.StatusNotFound,
			customerID: "cus_4",
			wantErr:    true,
		},
		{
			name:       "balance not numeric",
			status:     http.StatusOK,
			body:       `{"balance": "12"}`,
			customerID: "cus_5",
			wantErr:    true,
		},
		{
			name:       "malformed json",
			status:     http.StatusOK,
			body:       `{"balance": `,
			customerID: "cus_6",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/customers/"+tt.customerID+"/wallet", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			client := wallet.NewClient(srv.URL + "/")
			got, err := client.Balance(context.Background(), tt.customerID)
			if tt.wantErr {
				assert.ErrorIs(t, err, wallet.ErrBalanceUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_SingleAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := wallet.NewClient(srv.URL).Balance(context.Background(), "cus_1")
	assert.ErrorIs(t, err, wallet.ErrBalanceUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := wallet.NewClient(srv.URL, wallet.WithTimeout(20*time.Millisecond))
	_, err := client.Balance(context.Background(), "cus_1")
	assert.ErrorIs(t, err, wallet.ErrBalanceUnavailable)
}

func TestClient_EscapesCustomerID(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"balance": 1}`))
	}))
	t.Cleanup(srv.Close)

	_, err := wallet.NewClient(srv.URL, wallet.WithHTTPClient(srv.Client())).Balance(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/customers/a%2Fb/wallet", gotPath)
}

func TestClient_EmptyCustomerID(t *testing.T) {
	t.Parallel()
	_, err := wallet.NewClient("http://example.invalid").Balance(context.Background(), " ")
	assert.ErrorIs(t, err, wallet.ErrInvalidCustomerID)
}
