package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
)

// messages maps business codes to the user-facing text.
var messages = map[string]string{
	httperr.CodeSlotNotFound:       "Slot not found",
	httperr.CodeBookingNotFound:    "Booking not found",
	httperr.CodeStudentNotFound:    "Student not found",
	httperr.CodeTutorNotFound:      "Tutor profile not found",
	httperr.CodeSlotAlreadyClaimed: "Slot is already booked",
	httperr.CodeSlotInPast:         "Cannot book a slot in the past",
	httperr.CodeTransitionConflict: "Booking was changed by a concurrent request",
	httperr.CodeInvalidTransition:  "Booking cannot change to that status",
	httperr.CodeInvalidRating:      "Rating must be between 1 and 5",
}

// respondBusiness writes the status matching a business error code:
// 404 for missing entities, 409 for lost races and claimed slots, 400 for
// precondition failures, 500 for everything unclassified.
func respondBusiness(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
			httperr.Conflict(c, httperr.CodeSlotAlreadyClaimed, messages[httperr.CodeSlotAlreadyClaimed])
			return
		}
		httperr.Internal(c, fallbackCode, fallbackMessage)
		return
	}

	msg := messages[code]
	if msg == "" {
		msg = fallbackMessage
	}

	switch code {
	case httperr.CodeSlotNotFound,
		httperr.CodeBookingNotFound,
		httperr.CodeStudentNotFound,
		httperr.CodeTutorNotFound:
		httperr.NotFound(c, code, msg)
	case httperr.CodeSlotAlreadyClaimed,
		httperr.CodeTransitionConflict,
		httperr.CodeInvalidTransition:
		httperr.Conflict(c, code, msg)
	case httperr.CodeSlotInPast,
		httperr.CodeInvalidRating:
		httperr.BadRequest(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
