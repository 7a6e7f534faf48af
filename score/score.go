package score

import (
	"strings"

	"github.com/wingmate-nz/companion-api/schema"
)

// neutral reputation sub-score for helpers with no history, so new
// helpers remain eligible instead of being buried
const neutralReputation = 0.5

// ratings are submitted on a 1 to 5 scale
const maxRating = 5

// travelers at or past this age implicitly need elderly assistance
const elderlyAge = 60

// Compute calculates the compatibility score of an offer that already
// passed every hard filter. The result is in [0, 1].
func Compute(p Params, req *schema.HelpRequest, offer *schema.HelpOffer) float64 {
	w := p.weights(req.Domain)

	s := w.Price*priceFit(p, req, offer) + w.Reputation*reputation(offer)
	if req.Domain == schema.DomainFlightCompanion {
		s += w.Capability * capability(req, offer)
	}

	return s
}

// priceFit is 1 for a free offer and decays linearly to 0 at the
// tolerated price cap
func priceFit(p Params, req *schema.HelpRequest, offer *schema.HelpOffer) float64 {
	limit := priceCap(p, req)
	if limit == 0 {
		// only free offers survive the hard filter here
		return 1
	}
	return 1 - offer.Amount/limit
}

func reputation(offer *schema.HelpOffer) float64 {
	// ratings are 1 to 5, so a zero average means no rating history
	// even when the helper has completed trips
	if offer.AverageRating == 0 {
		return neutralReputation
	}
	return offer.AverageRating / maxRating
}

// capability measures how much of the requested needs the offer covers
// by case-insensitive containment against the offered services and
// languages. An elderly traveler counts as an implied need for elderly
// assistance. A request without any needs scores full.
func capability(req *schema.HelpRequest, offer *schema.HelpOffer) float64 {
	needs := splitNeeds(req.SpecialNeeds)
	if req.TravelerAge >= elderlyAge {
		needs = append(needs, "elderly")
	}
	if len(needs) == 0 {
		return 1
	}

	offered := make([]string, 0, len(offer.AvailableServices)+len(offer.Languages))
	for _, s := range offer.AvailableServices {
		offered = append(offered, strings.ToLower(s))
	}
	for _, l := range offer.Languages {
		offered = append(offered, strings.ToLower(l))
	}

	covered := 0
	for _, need := range needs {
		for _, have := range offered {
			if strings.Contains(have, need) || strings.Contains(need, have) {
				covered++
				break
			}
		}
	}

	return float64(covered) / float64(len(needs))
}

func splitNeeds(needs string) []string {
	parts := strings.Split(needs, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Less is the ranking order of scored candidates: higher score first,
// ties broken by higher reputation, then earlier creation, then
// lexically smaller id for determinism.
func Less(scoreA float64, a *schema.HelpOffer, scoreB float64, b *schema.HelpOffer) bool {
	if scoreA != scoreB {
		return scoreA > scoreB
	}
	if a.AverageRating != b.AverageRating {
		return a.AverageRating > b.AverageRating
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}
