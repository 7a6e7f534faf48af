package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HelpOffer is a helper listing. Flight companion offers are consumed
// one-to-one; pickup offers carry seat capacity and stay available
// until the remaining seats run out.
type HelpOffer struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Helper string    `json:"helper"`
	Domain Domain    `json:"domain"`

	// flight companion itinerary
	FlightNumber     string    `json:"flight_number,omitempty"`
	FlightDate       time.Time `json:"flight_date,omitempty"`
	DepartureAirport string    `json:"departure_airport,omitempty"`
	ArrivalAirport   string    `json:"arrival_airport,omitempty"`

	// airport pickup itinerary
	Airport   string    `json:"airport,omitempty"`
	ArrivalAt time.Time `json:"arrival_at,omitempty"`

	// requested amount for flight companion, base rate for pickup
	Amount float64 `json:"amount"`

	Languages         pq.StringArray `json:"languages,omitempty" gorm:"type:text[]"`
	AvailableServices pq.StringArray `json:"available_services,omitempty" gorm:"type:text[]"`

	MaxPassengers    int  `json:"max_passengers,omitempty"`
	RemainingSeats   int  `json:"remaining_seats,omitempty"`
	CanHandleLuggage bool `json:"can_handle_luggage,omitempty"`

	IsAvailable bool `json:"is_available" sql:"default:true"`

	// reputation aggregates live in mongo and are hydrated onto the
	// struct when candidates are listed; never written through gorm
	HelpedCount   int64   `json:"helped_count" gorm:"-"`
	AverageRating float64 `json:"average_rating" gorm:"-"`

	Version   int       `json:"-" sql:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// ItineraryKey extracts the matching key of the offer
func (o *HelpOffer) ItineraryKey() ItineraryKey {
	return ItineraryKey{
		FlightNumber:     o.FlightNumber,
		FlightDate:       o.FlightDate,
		DepartureAirport: o.DepartureAirport,
		ArrivalAirport:   o.ArrivalAirport,
		Airport:          o.Airport,
		ArrivalAt:        o.ArrivalAt,
	}
}

// Validate checks domain, economic bounds, itinerary completeness and
// capacity before an offer touches storage
func (o *HelpOffer) Validate() error {
	if !ValidDomain(o.Domain) {
		return ErrUnknownDomain
	}

	if o.Amount < 0 || o.Amount > MaxAmount(o.Domain) {
		return ErrAmountOutOfRange
	}

	switch o.Domain {
	case DomainFlightCompanion:
		if o.FlightNumber == "" || o.FlightDate.IsZero() ||
			o.DepartureAirport == "" || o.ArrivalAirport == "" {
			return ErrIncompleteItinerary
		}
	case DomainAirportPickup:
		if o.Airport == "" || o.ArrivalAt.IsZero() {
			return ErrIncompleteItinerary
		}
		if o.MaxPassengers < 1 {
			return ErrInvalidPassengers
		}
	}

	return nil
}
