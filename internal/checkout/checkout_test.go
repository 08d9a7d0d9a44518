package checkout

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/kv"
	"github.com/sevenam/diamondstore/internal/notify"
	mock_notify "github.com/sevenam/diamondstore/internal/notify/mocks"
	"github.com/sevenam/diamondstore/internal/store"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 124, G: 58, B: 237, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func validRequest(t *testing.T) Request {
	return Request{
		PackageID:     "DP005",
		AccountName:   "Zaw Zaw",
		MlbbID:        "123456789",
		ServerID:      "2001",
		PhoneNumber:   "09123456789",
		PaymentMethod: store.PaymentKPay,
		Screenshot:    bytes.NewReader(pngBytes(t)),
	}
}

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T, notifier notify.Notifier) (*Service, *store.Store) {
	t.Helper()
	st, err := store.New(context.Background(), kv.NewMemoryBackend(),
		store.WithClock(func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)

	svc := NewService(st, NewScreenshotEncoder(1<<20), notifier, zap.NewNop())
	svc.timeNow = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }
	return svc, st
}

func TestService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock_notify.NewMockNotifier(ctrl)
	svc, st := newService(t, notifier)

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg notify.Message) error {
			assert.Equal(t, "New order ORD003 - 112 diamonds", msg.Subject)
			return nil
		})

	order, err := svc.Submit(context.Background(), validRequest(t))
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, "ORD003", order.ID)
	assert.Equal(t, "Zaw Zaw", order.CustomerName)
	assert.Equal(t, 112, order.Diamonds)
	assert.Equal(t, int64(9000), order.Price)
	assert.Equal(t, "kpay", order.PaymentMethod)
	assert.Equal(t, store.StatusPending, order.Status)
	assert.Equal(t, store.PriorityLow, order.Priority)
	assert.True(t, strings.HasPrefix(order.Screenshot, "data:image/png;base64,"))

	stored, err := st.Order("ORD003")
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestService_SubmitAutoApproval(t *testing.T) {
	svc, st := newService(t, nil)
	_, err := st.UpdateSystemSettings(context.Background(), store.SettingsPatch{AutoApproval: ptr(true)})
	require.NoError(t, err)

	req := validRequest(t)
	req.PackageID = "DP010"
	order, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, store.StatusCompleted, order.Status)
	assert.Equal(t, store.PriorityHigh, order.Priority)
}

func TestService_SubmitRejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, st *store.Store)
		mutate  func(r *Request)
		wantErr error
		wantMsg string
	}{
		{
			name: "maintenance mode",
			prepare: func(t *testing.T, st *store.Store) {
				_, err := st.UpdateSystemSettings(context.Background(), store.SettingsPatch{MaintenanceMode: ptr(true)})
				require.NoError(t, err)
			},
			wantErr: ErrMaintenance,
		},
		{
			name:    "missing fields",
			mutate:  func(r *Request) { r.AccountName = ""; r.PhoneNumber = "" },
			wantErr: ErrInvalidRequest,
			wantMsg: "accountName is required; phoneNumber is required",
		},
		{
			name:    "game id not numeric",
			mutate:  func(r *Request) { r.MlbbID = "12ab5678" },
			wantErr: ErrInvalidRequest,
			wantMsg: "mlbbId must contain digits only",
		},
		{
			name:    "server id too short",
			mutate:  func(r *Request) { r.ServerID = "12" },
			wantErr: ErrInvalidRequest,
			wantMsg: "serverId must be at least 3 characters",
		},
		{
			name:    "unknown payment type",
			mutate:  func(r *Request) { r.PaymentMethod = "paypal" },
			wantErr: ErrInvalidRequest,
			wantMsg: "paymentMethod must be one of",
		},
		{
			name:    "bad email",
			mutate:  func(r *Request) { r.Email = "not-an-email" },
			wantErr: ErrInvalidRequest,
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "no screenshot",
			mutate:  func(r *Request) { r.Screenshot = nil },
			wantErr: ErrScreenshotRequired,
		},
		{
			name:    "screenshot is not an image",
			mutate:  func(r *Request) { r.Screenshot = strings.NewReader("%PDF-1.4 receipt") },
			wantErr: ErrNotAnImage,
		},
		{
			name:    "unknown package",
			mutate:  func(r *Request) { r.PackageID = "DP999" },
			wantErr: ErrPackageUnavailable,
		},
		{
			name: "inactive package",
			prepare: func(t *testing.T, st *store.Store) {
				_, err := st.UpdateDiamondPackage(context.Background(), "DP005", store.DiamondPackagePatch{IsActive: ptr(false)})
				require.NoError(t, err)
			},
			wantErr: ErrPackageUnavailable,
		},
		{
			name:    "no active method of that type",
			mutate:  func(r *Request) { r.PaymentMethod = store.PaymentAYA },
			wantErr: ErrPaymentUnavailable,
		},
		{
			name: "payment method switched off",
			prepare: func(t *testing.T, st *store.Store) {
				_, err := st.UpdatePaymentMethod(context.Background(), "PAY001", store.PaymentMethodPatch{IsActive: ptr(false)})
				require.NoError(t, err)
			},
			wantErr: ErrPaymentUnavailable,
		},
		{
			name: "daily limit reached",
			prepare: func(t *testing.T, st *store.Store) {
				_, err := st.UpdateSystemSettings(context.Background(), store.SettingsPatch{MaxOrdersPerDay: ptr(1)})
				require.NoError(t, err)
				_, err = st.AddOrder(context.Background(), store.NewOrder{CustomerName: "earlier today"})
				require.NoError(t, err)
			},
			wantErr: ErrDailyLimitReached,
		},
		{
			name: "amount below minimum",
			prepare: func(t *testing.T, st *store.Store) {
				_, err := st.UpdateSystemSettings(context.Background(), store.SettingsPatch{MinOrderAmount: ptr(int64(10000))})
				require.NoError(t, err)
			},
			wantErr: ErrAmountOutOfRange,
		},
		{
			name: "amount above maximum",
			prepare: func(t *testing.T, st *store.Store) {
				_, err := st.UpdateSystemSettings(context.Background(), store.SettingsPatch{MaxOrderAmount: ptr(int64(5000))})
				require.NoError(t, err)
			},
			wantErr: ErrAmountOutOfRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, st := newService(t, nil)
			if tc.prepare != nil {
				tc.prepare(t, st)
			}
			ordersBefore := len(st.Orders())

			req := validRequest(t)
			if tc.mutate != nil {
				tc.mutate(&req)
			}
			_, err := svc.Submit(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, IsRejection(err))
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
			assert.Len(t, st.Orders(), ordersBefore)
		})
	}
}

func TestService_NotifierFailureDoesNotFailCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock_notify.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	svc, _ := newService(t, notifier)
	_, err := svc.Submit(context.Background(), validRequest(t))
	svc.Wait()
	assert.NoError(t, err)
}

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		price int64
		want  store.Priority
	}{
		{1000, store.PriorityLow},
		{10000, store.PriorityLow},
		{10001, store.PriorityMedium},
		{20000, store.PriorityMedium},
		{20001, store.PriorityHigh},
		{45000, store.PriorityHigh},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, PriorityFor(tc.price), "price %d", tc.price)
	}
}
