package checkout

import "errors"

var (
	ErrMaintenance        = errors.New("store is under maintenance")
	ErrInvalidRequest     = errors.New("invalid checkout request")
	ErrScreenshotRequired = errors.New("transaction screenshot is required")
	ErrScreenshotTooLarge = errors.New("transaction screenshot is too large")
	ErrNotAnImage         = errors.New("transaction screenshot is not an image")
	ErrPackageUnavailable = errors.New("diamond package is not available")
	ErrPaymentUnavailable = errors.New("payment method is not available")
	ErrDailyLimitReached  = errors.New("daily order limit reached")
	ErrAmountOutOfRange   = errors.New("order amount is outside the allowed range")
)

// IsRejection reports whether err is one of the checkout refusals above, as
// opposed to a failure while storing the order.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrMaintenance, ErrInvalidRequest, ErrScreenshotRequired, ErrScreenshotTooLarge,
		ErrNotAnImage, ErrPackageUnavailable, ErrPaymentUnavailable, ErrDailyLimitReached,
		ErrAmountOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
