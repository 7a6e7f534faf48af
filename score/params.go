package score

import (
	"time"

	"github.com/spf13/viper"

	"github.com/wingmate-nz/companion-api/schema"
)

// Weights are the coefficients of the weighted-sum compatibility score.
// They are expected to add up to 1.
type Weights struct {
	Price      float64
	Reputation float64
	Capability float64
}

var (
	DefaultFlightWeights = Weights{Price: 0.5, Reputation: 0.3, Capability: 0.2}
	DefaultPickupWeights = Weights{Price: 0.6, Reputation: 0.4}
)

// Params collect every tunable of the matching computation
type Params struct {
	FlightWeights Weights
	PickupWeights Weights

	// PriceTolerance is the fraction above the requester's offered
	// amount a helper's price may still be considered, e.g. 0.2 admits
	// prices up to 120% of the offered amount.
	PriceTolerance float64

	// PickupTimeTolerance is the window either side of the requested
	// arrival time in which a pickup offer remains itinerary-compatible
	PickupTimeTolerance time.Duration
}

// DefaultParams returns the compiled-in tunables
func DefaultParams() Params {
	return Params{
		FlightWeights:       DefaultFlightWeights,
		PickupWeights:       DefaultPickupWeights,
		PriceTolerance:      0.2,
		PickupTimeTolerance: 2 * time.Hour,
	}
}

// ParamsFromConfig reads tunables from viper, falling back to the
// defaults for any key that is unset
func ParamsFromConfig() Params {
	p := DefaultParams()

	// a configured zero is meaningful, e.g. dropping the reputation
	// term entirely, so only unset keys fall back
	if viper.IsSet("matching.weights.flight.price") {
		p.FlightWeights.Price = viper.GetFloat64("matching.weights.flight.price")
	}
	if viper.IsSet("matching.weights.flight.reputation") {
		p.FlightWeights.Reputation = viper.GetFloat64("matching.weights.flight.reputation")
	}
	if viper.IsSet("matching.weights.flight.capability") {
		p.FlightWeights.Capability = viper.GetFloat64("matching.weights.flight.capability")
	}
	if viper.IsSet("matching.weights.pickup.price") {
		p.PickupWeights.Price = viper.GetFloat64("matching.weights.pickup.price")
	}
	if viper.IsSet("matching.weights.pickup.reputation") {
		p.PickupWeights.Reputation = viper.GetFloat64("matching.weights.pickup.reputation")
	}
	if viper.IsSet("matching.price_tolerance") {
		p.PriceTolerance = viper.GetFloat64("matching.price_tolerance")
	}
	if viper.IsSet("matching.pickup_time_tolerance_minutes") {
		p.PickupTimeTolerance = time.Duration(viper.GetInt("matching.pickup_time_tolerance_minutes")) * time.Minute
	}

	return p
}

func (p Params) weights(d schema.Domain) Weights {
	if d == schema.DomainAirportPickup {
		return p.PickupWeights
	}
	return p.FlightWeights
}
