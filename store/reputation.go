package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wingmate-nz/companion-api/schema"
)

var ErrInvalidRating = fmt.Errorf("rating must be between 1 and 5")

// AddRating folds one 1-5 rating into the helper's aggregates,
// creating the reputation document on first use
func (m *mongoDB) AddRating(accountNumber string, rating float64) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReputationCollection)

	_, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{
			"$inc": bson.M{
				"rating_total": rating,
				"rating_count": 1,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// RecordHelped bumps the helped counter after a confirmed match. This
// runs from the background bookkeeping job, never from the matcher.
func (m *mongoDB) RecordHelped(accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReputationCollection)

	_, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$inc": bson.M{"helped_count": 1}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetReputations batch-fetches reputation aggregates for a set of
// helper accounts. Accounts without a document are simply absent from
// the result.
func (m *mongoDB) GetReputations(accountNumbers []string) (map[string]schema.HelperReputation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReputationCollection)

	cursor, err := c.Find(ctx, bson.M{
		"account_number": bson.M{"$in": accountNumbers},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reputations := make(map[string]schema.HelperReputation)
	for cursor.Next(ctx) {
		var r schema.HelperReputation
		if err := cursor.Decode(&r); err != nil {
			return nil, err
		}
		reputations[r.AccountNumber] = r
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return reputations, nil
}

// AddRating on the composed store delegates to mongo
func (s *CompanionStore) AddRating(accountNumber string, rating float64) error {
	return s.mongo.AddRating(accountNumber, rating)
}

// RecordHelped on the composed store delegates to mongo
func (s *CompanionStore) RecordHelped(accountNumber string) error {
	return s.mongo.RecordHelped(accountNumber)
}

// GetReputations on the composed store delegates to mongo
func (s *CompanionStore) GetReputations(accountNumbers []string) (map[string]schema.HelperReputation, error) {
	return s.mongo.GetReputations(accountNumbers)
}
