package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var flightKey = ItineraryKey{
	FlightNumber:     "NZ289",
	FlightDate:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	DepartureAirport: "AKL",
	ArrivalAirport:   "PVG",
}

func TestCompatibleFlightItinerary(t *testing.T) {
	offer := flightKey
	offer.FlightNumber = "nz289"
	offer.DepartureAirport = "akl"
	assert.True(t, CompatibleItinerary(DomainFlightCompanion, flightKey, offer, 0))
}

func TestIncompatibleFlightNumber(t *testing.T) {
	offer := flightKey
	offer.FlightNumber = "CA783"
	assert.False(t, CompatibleItinerary(DomainFlightCompanion, flightKey, offer, 0))
}

func TestIncompatibleFlightDate(t *testing.T) {
	offer := flightKey
	offer.FlightDate = offer.FlightDate.AddDate(0, 0, 1)
	assert.False(t, CompatibleItinerary(DomainFlightCompanion, flightKey, offer, 0))
}

func TestPickupItineraryWithinTolerance(t *testing.T) {
	req := ItineraryKey{
		Airport:   "AKL",
		ArrivalAt: time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
	}
	offer := req
	offer.ArrivalAt = req.ArrivalAt.Add(90 * time.Minute)

	assert.True(t, CompatibleItinerary(DomainAirportPickup, req, offer, 2*time.Hour))
	assert.False(t, CompatibleItinerary(DomainAirportPickup, req, offer, time.Hour))
}

func TestPickupItineraryAirportMismatch(t *testing.T) {
	req := ItineraryKey{
		Airport:   "AKL",
		ArrivalAt: time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
	}
	offer := req
	offer.Airport = "WLG"
	assert.False(t, CompatibleItinerary(DomainAirportPickup, req, offer, 2*time.Hour))
}

func TestValidateRequestBounds(t *testing.T) {
	r := HelpRequest{
		Requester:        "requester-1",
		Domain:           DomainFlightCompanion,
		FlightNumber:     "NZ289",
		FlightDate:       flightKey.FlightDate,
		DepartureAirport: "AKL",
		ArrivalAirport:   "PVG",
		OfferedAmount:    501,
	}
	assert.Equal(t, ErrAmountOutOfRange, r.Validate())

	r.OfferedAmount = 80
	assert.NoError(t, r.Validate())
}

func TestValidatePickupRequest(t *testing.T) {
	r := HelpRequest{
		Requester:     "requester-1",
		Domain:        DomainAirportPickup,
		Airport:       "AKL",
		ArrivalAt:     time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
		OfferedAmount: 201,
	}
	assert.Equal(t, ErrAmountOutOfRange, r.Validate())

	r.OfferedAmount = 40
	assert.Equal(t, ErrInvalidPassengers, r.Validate())

	r.PassengerCount = 2
	assert.NoError(t, r.Validate())
}
