package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wingmate-nz/companion-api/store"
)

// rateHelper is the API for a requester rating their helper after a
// completed trip
func (s *Server) rateHelper(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	var params struct {
		Rating float64 `json:"rating"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.store.AddRating(accountNumber, params.Rating); err != nil {
		if err == store.ErrInvalidRating {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRating, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) helperReputation(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	reputations, err := s.store.GetReputations([]string{accountNumber})
	if shouldInterupt(err, c) {
		return
	}

	r := reputations[accountNumber]
	r.AccountNumber = accountNumber

	c.JSON(http.StatusOK, gin.H{
		"account_number": accountNumber,
		"helped_count":   r.HelpedCount,
		"rating_count":   r.RatingCount,
		"average_rating": r.AverageRating(),
	})
}
