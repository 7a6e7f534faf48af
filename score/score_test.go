package score

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/wingmate-nz/companion-api/schema"
)

var flightDate = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

func flightRequest() *schema.HelpRequest {
	return &schema.HelpRequest{
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
}

func flightOffer(helper string, amount float64) *schema.HelpOffer {
	return &schema.HelpOffer{
		ID:               uuid.New(),
		Helper:           helper,
		Domain:           schema.DomainFlightCompanion,
		FlightNumber:     "NZ289",
		FlightDate:       flightDate,
		DepartureAirport: "AKL",
		ArrivalAirport:   "PVG",
		Amount:           amount,
		IsAvailable:      true,
	}
}

func TestEligibleSameItinerary(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	assert.True(t, Eligible(p, req, flightOffer("helper-1", 60)))
}

func TestIneligibleDifferentFlight(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	other := flightOffer("helper-1", 60)
	other.FlightNumber = "CA783"
	assert.False(t, Eligible(p, req, other))
}

func TestIneligibleOwnOffer(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	assert.False(t, Eligible(p, req, flightOffer("requester-1", 60)))
}

func TestIneligibleOverpriced(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	within := flightOffer("helper-1", 95)
	assert.True(t, Eligible(p, req, within), "within the 20 percent tolerance")

	over := flightOffer("helper-1", 97)
	assert.False(t, Eligible(p, req, over))
}

func TestIneligibleUnavailable(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	o := flightOffer("helper-1", 60)
	o.IsAvailable = false
	assert.False(t, Eligible(p, req, o))
}

func TestPickupCapacityFilter(t *testing.T) {
	p := DefaultParams()
	arrival := time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC)

	req := &schema.HelpRequest{
		ID:             uuid.New(),
		Requester:      "requester-1",
		Domain:         schema.DomainAirportPickup,
		Airport:        "AKL",
		ArrivalAt:      arrival,
		PassengerCount: 3,
		HasLuggage:     true,
		OfferedAmount:  50,
		IsActive:       true,
	}

	o := &schema.HelpOffer{
		ID:               uuid.New(),
		Helper:           "helper-1",
		Domain:           schema.DomainAirportPickup,
		Airport:          "AKL",
		ArrivalAt:        arrival,
		Amount:           40,
		MaxPassengers:    2,
		RemainingSeats:   2,
		CanHandleLuggage: true,
		IsAvailable:      true,
	}
	assert.False(t, Eligible(p, req, o), "two seats cannot take three passengers")

	o.MaxPassengers = 4
	o.RemainingSeats = 4
	assert.True(t, Eligible(p, req, o))

	o.CanHandleLuggage = false
	assert.False(t, Eligible(p, req, o), "luggage capability is a hard filter")
}

func TestCheaperOfferScoresHigher(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	cheap := flightOffer("helper-1", 20)
	pricey := flightOffer("helper-2", 75)

	assert.Greater(t, Compute(p, req, cheap), Compute(p, req, pricey))
}

func TestNewHelperGetsNeutralReputation(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	newcomer := flightOffer("helper-1", 60)

	poor := flightOffer("helper-2", 60)
	poor.HelpedCount = 10
	poor.AverageRating = 1.5

	assert.Greater(t, Compute(p, req, newcomer), Compute(p, req, poor),
		"zero history must beat a bad track record, not count as zero")
}

func TestUnratedVeteranGetsNeutralReputation(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	veteran := flightOffer("helper-1", 60)
	veteran.HelpedCount = 10

	oneStar := flightOffer("helper-2", 60)
	oneStar.HelpedCount = 10
	oneStar.AverageRating = 1

	assert.InDelta(t, 0.5, reputation(veteran), 1e-9,
		"helped trips without ratings are still zero rating history")
	assert.Greater(t, Compute(p, req, veteran), Compute(p, req, oneStar))
}

func TestElderlyTravelerCapability(t *testing.T) {
	req := flightRequest()
	req.TravelerAge = 75

	equipped := flightOffer("helper-1", 60)
	equipped.AvailableServices = pq.StringArray{"Elderly assistance"}

	unequipped := flightOffer("helper-2", 60)
	unequipped.AvailableServices = pq.StringArray{"meal help"}

	assert.InDelta(t, 1.0, capability(req, equipped), 1e-9)
	assert.InDelta(t, 0.0, capability(req, unequipped), 1e-9)

	req.TravelerAge = 30
	assert.InDelta(t, 1.0, capability(req, unequipped), 1e-9,
		"age only implies a need past the elderly threshold")
}

func TestCapabilityOverlap(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()
	req.SpecialNeeds = "wheelchair, Mandarin"

	full := flightOffer("helper-1", 60)
	full.AvailableServices = pq.StringArray{"Wheelchair assistance"}
	full.Languages = pq.StringArray{"mandarin", "english"}

	none := flightOffer("helper-2", 60)
	none.AvailableServices = pq.StringArray{"meal help"}
	none.Languages = pq.StringArray{"french"}

	assert.Greater(t, Compute(p, req, full), Compute(p, req, none))
	assert.InDelta(t, 1.0, capability(req, full), 1e-9)
	assert.InDelta(t, 0.0, capability(req, none), 1e-9)
}

func TestScoreWithinUnitInterval(t *testing.T) {
	p := DefaultParams()
	req := flightRequest()

	o := flightOffer("helper-1", 0)
	o.HelpedCount = 3
	o.AverageRating = 5

	s := Compute(p, req, o)
	assert.True(t, s >= 0 && s <= 1, "score %f out of [0,1]", s)
}

func TestRankingTieBreaks(t *testing.T) {
	older := flightOffer("helper-1", 60)
	older.CreatedAt = flightDate
	newer := flightOffer("helper-2", 60)
	newer.CreatedAt = flightDate.Add(time.Hour)

	assert.True(t, Less(0.7, older, 0.5, newer), "score dominates")
	assert.True(t, Less(0.5, older, 0.5, newer), "earlier creation wins a tie")

	rated := flightOffer("helper-3", 60)
	rated.AverageRating = 4.5
	rated.CreatedAt = newer.CreatedAt
	assert.True(t, Less(0.5, rated, 0.5, older), "reputation beats age on equal score")
}
