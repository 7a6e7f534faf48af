package schema

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownDomain       = fmt.Errorf("unknown service domain")
	ErrAmountOutOfRange    = fmt.Errorf("amount is negative or above the domain bound")
	ErrIncompleteItinerary = fmt.Errorf("itinerary fields are incomplete for the domain")
	ErrInvalidPassengers   = fmt.Errorf("passenger count must be at least 1")
)

// HelpRequest is a help-seeker listing. One row covers both domains;
// the domain column decides which itinerary columns are meaningful.
type HelpRequest struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Requester string    `json:"requester"`
	Domain    Domain    `json:"domain"`

	// flight companion itinerary
	FlightNumber     string    `json:"flight_number,omitempty"`
	FlightDate       time.Time `json:"flight_date,omitempty"`
	DepartureAirport string    `json:"departure_airport,omitempty"`
	ArrivalAirport   string    `json:"arrival_airport,omitempty"`

	// airport pickup itinerary
	Airport   string    `json:"airport,omitempty"`
	ArrivalAt time.Time `json:"arrival_at,omitempty"`

	OfferedAmount float64 `json:"offered_amount"`

	// flight companion extras
	TravelerAge  int    `json:"traveler_age,omitempty"`
	SpecialNeeds string `json:"special_needs,omitempty"`

	// airport pickup extras
	PassengerCount int  `json:"passenger_count,omitempty"`
	HasLuggage     bool `json:"has_luggage,omitempty"`

	IsActive       bool       `json:"is_active" sql:"default:true"`
	IsMatched      bool       `json:"is_matched" sql:"default:false"`
	MatchedOfferID *uuid.UUID `json:"matched_offer_id,omitempty" gorm:"type:uuid"`
	MatchedAt      *time.Time `json:"matched_at,omitempty"`

	Version   int       `json:"-" sql:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// ItineraryKey extracts the matching key of the request
func (r *HelpRequest) ItineraryKey() ItineraryKey {
	return ItineraryKey{
		FlightNumber:     r.FlightNumber,
		FlightDate:       r.FlightDate,
		DepartureAirport: r.DepartureAirport,
		ArrivalAirport:   r.ArrivalAirport,
		Airport:          r.Airport,
		ArrivalAt:        r.ArrivalAt,
	}
}

// Validate checks domain, economic bounds and itinerary completeness
// before a request touches storage
func (r *HelpRequest) Validate() error {
	if !ValidDomain(r.Domain) {
		return ErrUnknownDomain
	}

	if r.OfferedAmount < 0 || r.OfferedAmount > MaxAmount(r.Domain) {
		return ErrAmountOutOfRange
	}

	switch r.Domain {
	case DomainFlightCompanion:
		if r.FlightNumber == "" || r.FlightDate.IsZero() ||
			r.DepartureAirport == "" || r.ArrivalAirport == "" {
			return ErrIncompleteItinerary
		}
	case DomainAirportPickup:
		if r.Airport == "" || r.ArrivalAt.IsZero() {
			return ErrIncompleteItinerary
		}
		if r.PassengerCount < 1 {
			return ErrInvalidPassengers
		}
	}

	return nil
}

// Seats is the capacity a pickup confirmation consumes. Flight
// companion listings always take one slot.
func (r *HelpRequest) Seats() int {
	if r.Domain == DomainAirportPickup && r.PassengerCount > 1 {
		return r.PassengerCount
	}
	return 1
}
