// Package businessflow contains the core business logic and use cases for the listing engine
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Campaign-related errors
	ErrCampaignNotFound = errors.New("campaign not found")

	// Filter/sort validation errors
	ErrInvalidSortField             = errors.New("invalid sort field")
	ErrDistanceSortRequiresLocation = errors.New("sort=distance requires lat and lng parameters")
	ErrIncompleteBoundingBox        = errors.New("bounding box requires all four corner parameters")
	ErrDateRangeInverted            = errors.New("range start cannot be after range end")

	// Cache errors
	ErrCacheNotAvailable = errors.New("cache not available")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsCampaignNotFound(err error) bool {
	return errors.Is(err, ErrCampaignNotFound)
}

func IsInvalidSortField(err error) bool {
	return errors.Is(err, ErrInvalidSortField)
}

func IsDistanceSortRequiresLocation(err error) bool {
	return errors.Is(err, ErrDistanceSortRequiresLocation)
}

func IsIncompleteBoundingBox(err error) bool {
	return errors.Is(err, ErrIncompleteBoundingBox)
}

func IsDateRangeInverted(err error) bool {
	return errors.Is(err, ErrDateRangeInverted)
}

// IsClientInputError reports whether the failure should surface as a
// 4xx rather than a 5xx.
func IsClientInputError(err error) bool {
	return IsInvalidSortField(err) ||
		IsDistanceSortRequiresLocation(err) ||
		IsIncompleteBoundingBox(err) ||
		IsDateRangeInverted(err)
}
