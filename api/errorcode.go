package api

import (
	"github.com/wingmate-nz/companion-api/matcher"
	"github.com/wingmate-nz/companion-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrOfferNotExist.Error(),
		1202: store.ErrMatchConflict.Error(),
		1203: store.ErrDuplicateListing.Error(),
		1204: store.ErrInvalidRating.Error(),

		1210: matcher.ErrInvalidLimit.Error(),
		1211: matcher.ErrDomainMismatch.Error(),
		1212: matcher.ErrIncompatibleItinerary.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorRequestNotExist  = errorJSON(1200)
	errorOfferNotExist    = errorJSON(1201)
	errorMatchConflict    = errorJSON(1202)
	errorDuplicateListing = errorJSON(1203)
	errorInvalidRating    = errorJSON(1204)

	errorInvalidLimit          = errorJSON(1210)
	errorDomainMismatch        = errorJSON(1211)
	errorIncompatibleItinerary = errorJSON(1212)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
