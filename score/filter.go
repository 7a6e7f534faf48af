package score

import (
	"github.com/wingmate-nz/companion-api/schema"
)

// Eligible applies every hard filter to a candidate offer. An offer
// failing any of them is removed from the candidate set entirely, it is
// never scored.
func Eligible(p Params, req *schema.HelpRequest, offer *schema.HelpOffer) bool {
	if offer.Domain != req.Domain {
		return false
	}

	if !offer.IsAvailable {
		return false
	}

	// no self-matching
	if offer.Helper == req.Requester {
		return false
	}

	if !schema.CompatibleItinerary(req.Domain, req.ItineraryKey(), offer.ItineraryKey(), p.PickupTimeTolerance) {
		return false
	}

	// helpers priced beyond the tolerated budget are out, not merely
	// scored low
	if offer.Amount > priceCap(p, req) {
		return false
	}

	if req.Domain == schema.DomainAirportPickup {
		if offer.RemainingSeats < req.Seats() {
			return false
		}
		if req.HasLuggage && !offer.CanHandleLuggage {
			return false
		}
	}

	return true
}

func priceCap(p Params, req *schema.HelpRequest) float64 {
	return req.OfferedAmount * (1 + p.PriceTolerance)
}
