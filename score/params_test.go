package score

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestParamsFromConfigDefaults(t *testing.T) {
	viper.Reset()

	p := ParamsFromConfig()
	assert.Equal(t, DefaultFlightWeights, p.FlightWeights)
	assert.Equal(t, DefaultPickupWeights, p.PickupWeights)
	assert.Equal(t, 0.2, p.PriceTolerance)
	assert.Equal(t, 2*time.Hour, p.PickupTimeTolerance)
}

func TestParamsFromConfigZeroWeight(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("matching.weights.flight.reputation", 0.0)
	viper.Set("matching.weights.flight.price", 0.8)

	p := ParamsFromConfig()
	assert.Equal(t, 0.0, p.FlightWeights.Reputation, "a configured zero weight must stick")
	assert.Equal(t, 0.8, p.FlightWeights.Price)
	assert.Equal(t, DefaultFlightWeights.Capability, p.FlightWeights.Capability, "unset keys keep their defaults")
}
