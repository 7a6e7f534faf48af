package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/wingmate-nz/companion-api/schema"
)

// CreateOffer persists a new help offer in the available state. Pickup
// offers start with their full seat capacity.
func (s *CompanionStore) CreateOffer(offer *schema.HelpOffer) error {
	offer.IsAvailable = true
	if offer.Domain == schema.DomainAirportPickup {
		offer.RemainingSeats = offer.MaxPassengers
	}

	if err := s.ormDB.Create(offer).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateListing
		}
		return err
	}
	return nil
}

func (s *CompanionStore) GetOffer(id uuid.UUID) (*schema.HelpOffer, error) {
	var offer schema.HelpOffer

	if err := s.ormDB.Where("id = ?", id).First(&offer).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrOfferNotExist
		}
		return nil, err
	}

	return s.hydrateOffer(offer), nil
}

// hydrateOffer runs the batch reputation lookup for a single offer and
// returns the entry the lookup wrote into, so the aggregates actually
// reach the caller
func (s *CompanionStore) hydrateOffer(offer schema.HelpOffer) *schema.HelpOffer {
	offers := []schema.HelpOffer{offer}
	s.hydrateReputations(offers)
	return &offers[0]
}

func (s *CompanionStore) ListOffersByHelper(accountNumber string) ([]schema.HelpOffer, error) {
	offers := []schema.HelpOffer{}

	if err := s.ormDB.
		Where("helper = ?", accountNumber).
		Order("created_at desc").
		Find(&offers).Error; err != nil {
		return nil, err
	}

	return offers, nil
}

// GetAvailableOffers queries the candidate set for a request: available
// offers of the same domain sharing the itinerary key, excluding the
// requester's own listings. The itinerary columns are the primary
// filter so candidates are narrowed in the database before any
// per-candidate computation happens.
func (s *CompanionStore) GetAvailableOffers(request *schema.HelpRequest, timeTolerance time.Duration) ([]schema.HelpOffer, error) {
	offers := []schema.HelpOffer{}

	query := s.ormDB.
		Where("domain = ? AND is_available = ? AND helper != ?", request.Domain, true, request.Requester)

	switch request.Domain {
	case schema.DomainFlightCompanion:
		query = query.Where(
			"upper(flight_number) = ? AND flight_date = ? AND upper(departure_airport) = ? AND upper(arrival_airport) = ?",
			strings.ToUpper(request.FlightNumber),
			request.FlightDate,
			strings.ToUpper(request.DepartureAirport),
			strings.ToUpper(request.ArrivalAirport),
		)
	case schema.DomainAirportPickup:
		query = query.Where(
			"upper(airport) = ? AND arrival_at BETWEEN ? AND ?",
			strings.ToUpper(request.Airport),
			request.ArrivalAt.Add(-timeTolerance),
			request.ArrivalAt.Add(timeTolerance),
		)
	}

	if err := query.Order("created_at asc").Find(&offers).Error; err != nil {
		return nil, err
	}

	s.hydrateReputations(offers)
	return offers, nil
}

// hydrateReputations fills the mongo-backed aggregates onto offer
// structs in one batch. Reputation is informational; a mongo fault
// degrades candidates to neutral reputation instead of failing the
// query.
func (s *CompanionStore) hydrateReputations(offers []schema.HelpOffer) {
	if len(offers) == 0 {
		return
	}

	helpers := make([]string, 0, len(offers))
	for i := range offers {
		helpers = append(helpers, offers[i].Helper)
	}

	reputations, err := s.mongo.GetReputations(helpers)
	if err != nil {
		log.WithField("prefix", "store").WithError(err).Warn("reputation lookup failed, candidates degrade to neutral")
		return
	}

	for i := range offers {
		if r, ok := reputations[offers[i].Helper]; ok {
			offers[i].HelpedCount = r.HelpedCount
			offers[i].AverageRating = r.AverageRating()
		}
	}
}

// SetOfferAvailability toggles whether an offer accepts new matches.
// Re-enabling a pickup offer with no seats left is refused by the seat
// predicate.
func (s *CompanionStore) SetOfferAvailability(accountNumber string, id uuid.UUID, available bool) error {
	query := s.ormDB.Model(schema.HelpOffer{}).
		Where("id = ? AND helper = ?", id, accountNumber)
	if available {
		query = query.Where("domain = ? OR remaining_seats > 0", schema.DomainFlightCompanion)
	}

	result := query.Updates(map[string]interface{}{
		"is_available": available,
		"version":      gorm.Expr("version + 1"),
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrOfferNotExist
	}

	return nil
}

// WithdrawOffer takes an offer off the market. Only the owner may
// withdraw. Confirmed matches referencing the offer are unaffected.
func (s *CompanionStore) WithdrawOffer(accountNumber string, id uuid.UUID) error {
	result := s.ormDB.Model(schema.HelpOffer{}).
		Where("id = ? AND helper = ? AND is_available = ?", id, accountNumber, true).
		Updates(map[string]interface{}{
			"is_available": false,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrOfferNotExist
	}

	return nil
}
