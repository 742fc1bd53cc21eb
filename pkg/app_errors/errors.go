package apperrors

import (
	"errors"
	"fmt"
)

// 錯誤分類：呼叫端以 errors.Is(err, ErrLookup) / errors.Is(err, ErrValidation) 判斷
var (
	ErrLookup     = errors.New("lookup error")
	ErrValidation = errors.New("validation error")
)

// Lookup errors
var (
	ErrCityNotFound         = fmt.Errorf("%w: city not found", ErrLookup)
	ErrUnknownTariff        = fmt.Errorf("%w: unknown tariff", ErrLookup)
	ErrUnknownTier          = fmt.Errorf("%w: unknown tier", ErrLookup)
	ErrSearchNotFound       = fmt.Errorf("%w: search not found", ErrLookup)
	ErrOfferNotFound        = fmt.Errorf("%w: offer not found", ErrLookup)
	ErrUnknownPaymentMethod = fmt.Errorf("%w: unknown payment method", ErrLookup)
)

// Validation errors
var (
	ErrEmptyDeparture   = fmt.Errorf("%w: departure city is required", ErrValidation)
	ErrInvalidDateRange = fmt.Errorf("%w: end date must be after start date", ErrValidation)
	ErrDateInPast       = fmt.Errorf("%w: start date is in the past", ErrValidation)
	ErrInvalidInput     = fmt.Errorf("%w: invalid input", ErrValidation)
)

var (
	ErrPackageFinalized    = errors.New("package already finalized")
	ErrInternalServerError = errors.New("internal server error")
)
