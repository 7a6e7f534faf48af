package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wingmate-nz/companion-api/schema"
)

type ReputationTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewReputationTestSuite(connURI, dbName string) *ReputationTestSuite {
	return &ReputationTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ReputationTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *ReputationTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ReputationTestSuite) TestAddRatingOutOfRange() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.Equal(ErrInvalidRating, store.AddRating("account-test-rating-bounds", 0))
	s.Equal(ErrInvalidRating, store.AddRating("account-test-rating-bounds", 5.5))
}

func (s *ReputationTestSuite) TestAddRatingAggregates() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.AddRating("account-test-rating", 5))
	s.NoError(store.AddRating("account-test-rating", 4))

	reputations, err := store.GetReputations([]string{"account-test-rating"})
	s.NoError(err)

	r, ok := reputations["account-test-rating"]
	s.True(ok)
	s.Equal(int64(2), r.RatingCount)
	s.Equal(4.5, r.AverageRating())
}

func (s *ReputationTestSuite) TestRecordHelped() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.RecordHelped("account-test-helped"))
	s.NoError(store.RecordHelped("account-test-helped"))

	reputations, err := store.GetReputations([]string{"account-test-helped"})
	s.NoError(err)
	s.Equal(int64(2), reputations["account-test-helped"].HelpedCount)
}

func (s *ReputationTestSuite) TestGetReputationsAbsentAccount() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	reputations, err := store.GetReputations([]string{"account-test-never-rated"})
	s.NoError(err)

	_, ok := reputations["account-test-never-rated"]
	s.False(ok, "accounts without history have no document")
}

func TestReputationTestSuite(t *testing.T) {
	suite.Run(t, NewReputationTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
