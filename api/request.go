package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wingmate-nz/companion-api/schema"
	"github.com/wingmate-nz/companion-api/store"
)

// createRequest is the API for posting a new help request
func (s *Server) createRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var request schema.HelpRequest
	if err := c.BindJSON(&request); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request.ID = uuid.New()
	request.Requester = requester

	if err := request.Validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.CreateRequest(&request); err != nil {
		if err == store.ErrDuplicateListing {
			abortWithEncoding(c, http.StatusConflict, errorDuplicateListing, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, request)
}

// listRequests returns the caller's own listings, or open listings of a
// domain when one is queried, for helper-side browsing
func (s *Server) listRequests(c *gin.Context) {
	requester := c.GetString("requester")

	if domain := c.Query("domain"); domain != "" {
		if !schema.ValidDomain(schema.Domain(domain)) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}

		count, err := strconv.Atoi(c.DefaultQuery("count", "50"))
		if err != nil || count < 1 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}

		requests, err := s.store.ListOpenRequests(schema.Domain(domain), count)
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": requests})
		return
	}

	requests, err := s.store.ListRequestsByRequester(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (s *Server) getRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	request, err := s.store.GetRequest(id)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, request)
}

// withdrawRequest is the API for the owner taking a listing off the
// market before it is matched
func (s *Server) withdrawRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.WithdrawRequest(requester, id); err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
