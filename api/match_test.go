package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wingmate-nz/companion-api/matcher"
	"github.com/wingmate-nz/companion-api/schema"
	"github.com/wingmate-nz/companion-api/score"
	"github.com/wingmate-nz/companion-api/store"
	"github.com/wingmate-nz/companion-api/store/mocks"
)

func newTestServer(s store.CompanionCore) *Server {
	return &Server{
		store:   s,
		matcher: matcher.New(s, nil, score.DefaultParams()),
	}
}

func TestFindMatches(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	flightDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	request := &schema.HelpRequest{
		ID:               uuid.New(),
		Requester:        "requester-1",
		Domain:           schema.DomainFlightCompanion,
		FlightNumber:     "NZ289",
		FlightDate:       flightDate,
		DepartureAirport: "AKL",
		ArrivalAirport:   "PVG",
		OfferedAmount:    80,
		IsActive:         true,
	}
	offer := schema.HelpOffer{
		ID:               uuid.New(),
		Helper:           "helper-1",
		Domain:           schema.DomainFlightCompanion,
		FlightNumber:     "NZ289",
		FlightDate:       flightDate,
		DepartureAirport: "AKL",
		ArrivalAirport:   "PVG",
		Amount:           60,
		IsAvailable:      true,
	}

	m := mocks.NewMockCompanionCore(ctl)
	m.EXPECT().GetActiveUnmatchedRequest(request.ID).Return(request, nil).Times(1)
	m.EXPECT().GetAvailableOffers(request, gomock.Any()).
		Return([]schema.HelpOffer{offer}, nil).Times(1)

	s := newTestServer(m)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/requests/:requestID/matches", s.findMatches)

	req := httptest.NewRequest("GET", fmt.Sprintf("/requests/%s/matches", request.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Matches []matcher.Candidate `json:"matches"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.NoError(t, err)
	assert.Len(t, jResp.Matches, 1)
	assert.Equal(t, offer.ID, jResp.Matches[0].Offer.ID)
	assert.True(t, jResp.Matches[0].Score > 0)
}

func TestFindMatchesUnknownRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	requestID := uuid.New()

	m := mocks.NewMockCompanionCore(ctl)
	m.EXPECT().GetActiveUnmatchedRequest(requestID).Return(nil, store.ErrRequestNotExist).Times(1)

	s := newTestServer(m)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/requests/:requestID/matches", s.findMatches)

	req := httptest.NewRequest("GET", fmt.Sprintf("/requests/%s/matches", requestID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestConfirmMatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	flightDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	request := &schema.HelpRequest{
		ID:               uuid.New(),
		Requester:        "requester-1",
		Domain:           schema.DomainFlightCompanion,
		FlightNumber:     "NZ289",
		FlightDate:       flightDate,
		DepartureAirport: "AKL",
		ArrivalAirport:   "PVG",
		OfferedAmount:    80,
		IsActive:         true,
	}
	offer := schema.HelpOffer{
		ID:               uuid.New(),
		Helper:           "helper-1",
		Domain:           schema.DomainFlightCompanion,
		FlightNumber:     "NZ289",
		FlightDate:       flightDate,
		DepartureAirport: "AKL",
		ArrivalAirport:   "PVG",
		Amount:           60,
		IsAvailable:      true,
	}
	matchedAt := time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)

	m := mocks.NewMockCompanionCore(ctl)
	m.EXPECT().GetRequest(request.ID).Return(request, nil).Times(1)
	m.EXPECT().GetOffer(offer.ID).Return(&offer, nil).Times(1)
	m.EXPECT().BindMatch(request, &offer).Return(matchedAt, nil).Times(1)

	s := newTestServer(m)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/requests/:requestID/match", s.confirmMatch)

	body, _ := json.Marshal(map[string]string{"offer_id": offer.ID.String()})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/requests/%s/match", request.ID), bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var confirmation matcher.Confirmation
	err := json.Unmarshal(w.Body.Bytes(), &confirmation)
	assert.NoError(t, err)
	assert.Equal(t, request.ID, confirmation.RequestID)
	assert.Equal(t, offer.ID, confirmation.OfferID)
}

func TestConfirmMatchConflict(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	boundOfferID := uuid.New()
	request := &schema.HelpRequest{
		ID:             uuid.New(),
		Requester:      "requester-1",
		Domain:         schema.DomainFlightCompanion,
		IsActive:       true,
		IsMatched:      true,
		MatchedOfferID: &boundOfferID,
	}

	m := mocks.NewMockCompanionCore(ctl)
	m.EXPECT().GetRequest(request.ID).Return(request, nil).Times(1)

	s := newTestServer(m)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/requests/:requestID/match", s.confirmMatch)

	body, _ := json.Marshal(map[string]string{"offer_id": uuid.New().String()})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/requests/%s/match", request.ID), bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}
