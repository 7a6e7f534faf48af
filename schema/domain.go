package schema

import (
	"strings"
	"time"
)

// Domain is one of the two parallel service types of the platform.
type Domain string

const (
	DomainFlightCompanion Domain = "flight_companion"
	DomainAirportPickup   Domain = "airport_pickup"
)

const (
	// MaxFlightCompanionAmount is the upper bound of an offered amount
	// for a flight companion listing
	MaxFlightCompanionAmount = 500

	// MaxAirportPickupAmount is the upper bound of an offered amount
	// for an airport pickup listing
	MaxAirportPickupAmount = 200
)

// ValidDomain reports whether d is a known service domain
func ValidDomain(d Domain) bool {
	switch d {
	case DomainFlightCompanion, DomainAirportPickup:
		return true
	}
	return false
}

// MaxAmount returns the domain-specific bound of economic terms
func MaxAmount(d Domain) float64 {
	if d == DomainAirportPickup {
		return MaxAirportPickupAmount
	}
	return MaxFlightCompanionAmount
}

// ItineraryKey is the tuple of fields a request/offer pair has to agree
// on before the pair is eligible for matching at all. Flight companion
// listings use the flight fields; airport pickup listings use the
// airport and arrival fields.
type ItineraryKey struct {
	FlightNumber     string
	FlightDate       time.Time
	DepartureAirport string
	ArrivalAirport   string

	Airport   string
	ArrivalAt time.Time
}

// CompatibleItinerary reports whether a request itinerary and an offer
// itinerary agree under the rules of the given domain. Flight keys must
// match exactly (flight number, date and route, case-insensitive codes).
// Pickup keys must name the same airport on the same day, with the
// arrival times within the tolerance window.
func CompatibleItinerary(d Domain, req, offer ItineraryKey, tolerance time.Duration) bool {
	switch d {
	case DomainFlightCompanion:
		return strings.EqualFold(req.FlightNumber, offer.FlightNumber) &&
			sameDay(req.FlightDate, offer.FlightDate) &&
			strings.EqualFold(req.DepartureAirport, offer.DepartureAirport) &&
			strings.EqualFold(req.ArrivalAirport, offer.ArrivalAirport)
	case DomainAirportPickup:
		if !strings.EqualFold(req.Airport, offer.Airport) {
			return false
		}
		if !sameDay(req.ArrivalAt, offer.ArrivalAt) {
			return false
		}
		diff := req.ArrivalAt.Sub(offer.ArrivalAt)
		if diff < 0 {
			diff = -diff
		}
		return diff <= tolerance
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
