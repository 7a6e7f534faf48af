package matcher

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/wingmate-nz/companion-api/schema"
	"github.com/wingmate-nz/companion-api/score"
	"github.com/wingmate-nz/companion-api/store"
)

var (
	ErrInvalidLimit          = fmt.Errorf("result limit must be at least 1")
	ErrDomainMismatch        = fmt.Errorf("the request and the offer belong to different service domains")
	ErrIncompatibleItinerary = fmt.Errorf("the offer itinerary does not fit the request")
)

// Notifier delivers a confirmation to both parties. It is
// fire-and-forget from the matcher's point of view: a delivery failure
// never unwinds a match.
type Notifier interface {
	NotifyMatchConfirmed(requester, helper string, domain schema.Domain, details map[string]interface{}) error
}

// Candidate is one ranked entry of a findMatches result
type Candidate struct {
	Offer schema.HelpOffer `json:"offer"`
	Score float64          `json:"score"`
}

// Confirmation is the durable outcome of a successful confirmMatch
type Confirmation struct {
	RequestID uuid.UUID `json:"request_id"`
	OfferID   uuid.UUID `json:"offer_id"`
	MatchedAt time.Time `json:"matched_at"`
}

// Matcher pairs help requests with help offers. All of its
// collaborators are injected; it keeps no state of its own beyond the
// scoring tunables.
type Matcher struct {
	store    store.CompanionCore
	notifier Notifier
	params   score.Params
}

func New(s store.CompanionCore, n Notifier, p score.Params) *Matcher {
	return &Matcher{
		store:    s,
		notifier: n,
		params:   p,
	}
}

// FindMatches returns up to maxResults eligible offers for an open
// request, best first. It is a read-only ranking query; results may be
// a few seconds stale since ConfirmMatch re-validates everything.
func (m *Matcher) FindMatches(requestID uuid.UUID, maxResults int) ([]Candidate, error) {
	if maxResults < 1 {
		return nil, ErrInvalidLimit
	}

	request, err := m.store.GetActiveUnmatchedRequest(requestID)
	if err != nil {
		return nil, err
	}

	offers, err := m.store.GetAvailableOffers(request, m.params.PickupTimeTolerance)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(offers))
	for i := range offers {
		offer := offers[i]
		if !score.Eligible(m.params, request, &offer) {
			continue
		}
		candidates = append(candidates, Candidate{
			Offer: offer,
			Score: score.Compute(m.params, request, &offer),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return score.Less(candidates[i].Score, &candidates[i].Offer,
			candidates[j].Score, &candidates[j].Offer)
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	return candidates, nil
}

// ConfirmMatch binds a request to an offer exactly once. Re-confirming
// the same pair succeeds without re-mutating; confirming a different
// offer for an already-matched request conflicts. The storage layer's
// conditional updates decide every race.
func (m *Matcher) ConfirmMatch(requestID, offerID uuid.UUID) (*Confirmation, error) {
	request, err := m.store.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if !request.IsActive {
		return nil, store.ErrRequestNotExist
	}

	if request.IsMatched {
		if request.MatchedOfferID != nil && *request.MatchedOfferID == offerID {
			// idempotent replay of an already confirmed pair
			return confirmation(request), nil
		}
		return nil, store.ErrMatchConflict
	}

	offer, err := m.store.GetOffer(offerID)
	if err != nil {
		return nil, err
	}

	if offer.Domain != request.Domain {
		return nil, ErrDomainMismatch
	}

	// confirming one's own offer is indistinguishable from a
	// nonexistent offer to the caller
	if offer.Helper == request.Requester {
		return nil, store.ErrOfferNotExist
	}

	if !schema.CompatibleItinerary(request.Domain, request.ItineraryKey(), offer.ItineraryKey(), m.params.PickupTimeTolerance) {
		return nil, ErrIncompatibleItinerary
	}

	if !offer.IsAvailable {
		return nil, store.ErrMatchConflict
	}
	if request.Domain == schema.DomainAirportPickup && offer.RemainingSeats < request.Seats() {
		return nil, store.ErrMatchConflict
	}

	matchedAt, err := m.store.BindMatch(request, offer)
	if err != nil {
		return nil, err
	}

	m.notify(request, offer)

	return &Confirmation{
		RequestID: request.ID,
		OfferID:   offer.ID,
		MatchedAt: matchedAt,
	}, nil
}

func (m *Matcher) notify(request *schema.HelpRequest, offer *schema.HelpOffer) {
	if m.notifier == nil {
		return
	}

	details := map[string]interface{}{
		"request_id": request.ID.String(),
		"offer_id":   offer.ID.String(),
	}
	switch request.Domain {
	case schema.DomainFlightCompanion:
		details["flight_number"] = request.FlightNumber
		details["flight_date"] = request.FlightDate.Format("2006-01-02")
	case schema.DomainAirportPickup:
		details["airport"] = request.Airport
		details["arrival_at"] = request.ArrivalAt.Format(time.RFC3339)
	}

	if err := m.notifier.NotifyMatchConfirmed(request.Requester, offer.Helper, request.Domain, details); err != nil {
		log.WithField("prefix", "matcher").
			WithField("request_id", request.ID).
			WithError(err).
			Error("match confirmed but notification dispatch failed")
	}
}

func confirmation(request *schema.HelpRequest) *Confirmation {
	c := &Confirmation{
		RequestID: request.ID,
		OfferID:   *request.MatchedOfferID,
	}
	if request.MatchedAt != nil {
		c.MatchedAt = *request.MatchedAt
	}
	return c
}
