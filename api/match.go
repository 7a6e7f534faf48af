package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wingmate-nz/companion-api/matcher"
	"github.com/wingmate-nz/companion-api/store"
)

// findMatches is the API for ranking eligible offers for an open
// request. It never mutates any state.
func (s *Server) findMatches(c *gin.Context) {
	id, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	candidates, err := s.matcher.FindMatches(id, count)
	if err != nil {
		switch err {
		case matcher.ErrInvalidLimit:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidLimit, err)
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": candidates})
}

// confirmMatch is the API for binding a request to an offer. The
// surrounding client treats a conflict as "this offer was just taken"
// and falls back to findMatches.
func (s *Server) confirmMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		OfferID string `json:"offer_id"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	offerID, err := uuid.Parse(params.OfferID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	confirmation, err := s.matcher.ConfirmMatch(id, offerID)
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		case store.ErrOfferNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorOfferNotExist, err)
		case store.ErrMatchConflict:
			abortWithEncoding(c, http.StatusConflict, errorMatchConflict, err)
		case matcher.ErrDomainMismatch:
			abortWithEncoding(c, http.StatusBadRequest, errorDomainMismatch, err)
		case matcher.ErrIncompatibleItinerary:
			abortWithEncoding(c, http.StatusBadRequest, errorIncompatibleItinerary, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
