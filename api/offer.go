package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wingmate-nz/companion-api/schema"
	"github.com/wingmate-nz/companion-api/store"
)

// createOffer is the API for posting a new help offer
func (s *Server) createOffer(c *gin.Context) {
	helper := c.GetString("requester")

	var offer schema.HelpOffer
	if err := c.BindJSON(&offer); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	offer.ID = uuid.New()
	offer.Helper = helper

	if err := offer.Validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.CreateOffer(&offer); err != nil {
		if err == store.ErrDuplicateListing {
			abortWithEncoding(c, http.StatusConflict, errorDuplicateListing, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (s *Server) myOffers(c *gin.Context) {
	helper := c.GetString("requester")

	offers, err := s.store.ListOffersByHelper(helper)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// updateOfferAvailability toggles whether an offer accepts new matches
func (s *Server) updateOfferAvailability(c *gin.Context) {
	helper := c.GetString("requester")

	id, err := uuid.Parse(c.Param("offerID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		IsAvailable *bool `json:"is_available"`
	}
	if err := c.BindJSON(&params); err != nil || params.IsAvailable == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.store.SetOfferAvailability(helper, id, *params.IsAvailable); err != nil {
		if err == store.ErrOfferNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorOfferNotExist, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) withdrawOffer(c *gin.Context) {
	helper := c.GetString("requester")

	id, err := uuid.Parse(c.Param("offerID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.WithdrawOffer(helper, id); err != nil {
		if err == store.ErrOfferNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorOfferNotExist, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
