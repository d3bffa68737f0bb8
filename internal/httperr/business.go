package httperr

import "errors"

// Business error codes shared between usecases, repositories and handlers.
const (
	CodeSlotNotFound       = "slot_not_found"
	CodeBookingNotFound    = "booking_not_found"
	CodeStudentNotFound    = "student_not_found"
	CodeTutorNotFound      = "tutor_not_found"
	CodeSlotAlreadyClaimed = "slot_already_claimed"
	CodeSlotInPast         = "slot_in_past"
	CodeTransitionConflict = "transition_conflict"
	CodeInvalidTransition  = "invalid_transition"
	CodeInvalidRating      = "invalid_rating"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
