package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wingmate-nz/companion-api/schema"
)

type stubReputationStore struct {
	reputations map[string]schema.HelperReputation
	err         error
}

func (s *stubReputationStore) AddRating(accountNumber string, rating float64) error { return nil }

func (s *stubReputationStore) RecordHelped(accountNumber string) error { return nil }

func (s *stubReputationStore) GetReputations(accountNumbers []string) (map[string]schema.HelperReputation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.reputations, nil
}

func (s *stubReputationStore) Close() {}

func (s *stubReputationStore) Ping() error { return nil }

func TestHydrateOfferCarriesReputation(t *testing.T) {
	s := &CompanionStore{mongo: &stubReputationStore{
		reputations: map[string]schema.HelperReputation{
			"helper-1": {
				AccountNumber: "helper-1",
				RatingTotal:   35,
				RatingCount:   7,
				HelpedCount:   7,
			},
		},
	}}

	offer := schema.HelpOffer{
		ID:     uuid.New(),
		Helper: "helper-1",
		Domain: schema.DomainFlightCompanion,
	}

	hydrated := s.hydrateOffer(offer)
	assert.Equal(t, int64(7), hydrated.HelpedCount)
	assert.Equal(t, 5.0, hydrated.AverageRating)
}

func TestHydrateOfferDegradesOnLookupFault(t *testing.T) {
	s := &CompanionStore{mongo: &stubReputationStore{err: assert.AnError}}

	offer := schema.HelpOffer{
		ID:     uuid.New(),
		Helper: "helper-1",
		Domain: schema.DomainFlightCompanion,
	}

	hydrated := s.hydrateOffer(offer)
	assert.Equal(t, int64(0), hydrated.HelpedCount)
	assert.Equal(t, 0.0, hydrated.AverageRating)
}
