package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/wingmate-nz/companion-api/schema"
)

// companion main datastore
type CompanionCore interface {
	Ping() error

	// Requests
	CreateRequest(request *schema.HelpRequest) error
	GetRequest(id uuid.UUID) (*schema.HelpRequest, error)
	GetActiveUnmatchedRequest(id uuid.UUID) (*schema.HelpRequest, error)
	ListRequestsByRequester(accountNumber string) ([]schema.HelpRequest, error)
	ListOpenRequests(domain schema.Domain, count int) ([]schema.HelpRequest, error)
	WithdrawRequest(accountNumber string, id uuid.UUID) error

	// Offers
	CreateOffer(offer *schema.HelpOffer) error
	GetOffer(id uuid.UUID) (*schema.HelpOffer, error)
	ListOffersByHelper(accountNumber string) ([]schema.HelpOffer, error)
	GetAvailableOffers(request *schema.HelpRequest, timeTolerance time.Duration) ([]schema.HelpOffer, error)
	SetOfferAvailability(accountNumber string, id uuid.UUID, available bool) error
	WithdrawOffer(accountNumber string, id uuid.UUID) error

	// Match
	BindMatch(request *schema.HelpRequest, offer *schema.HelpOffer) (time.Time, error)
	ExpireListings(now time.Time) error

	// Reputation
	AddRating(accountNumber string, rating float64) error
	RecordHelped(accountNumber string) error
	GetReputations(accountNumbers []string) (map[string]schema.HelperReputation, error)
}

// CompanionStore is an implementation of CompanionCore backed by
// postgres for listings and mongodb for reputation aggregates
type CompanionStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewCompanionStore(ormDB *gorm.DB, mongo MongoStore) *CompanionStore {
	return &CompanionStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *CompanionStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}
