package schema

// ReputationCollection is the mongodb collection of helper reputations
const ReputationCollection = "reputation"

// HelperReputation aggregates the track record of a helper account.
// It is only ever used as a scoring input; the matching core never
// writes it directly.
type HelperReputation struct {
	AccountNumber string  `bson:"account_number" json:"account_number"`
	RatingTotal   float64 `bson:"rating_total" json:"-"`
	RatingCount   int64   `bson:"rating_count" json:"rating_count"`
	HelpedCount   int64   `bson:"helped_count" json:"helped_count"`
}

// AverageRating derives the mean rating. Zero means no history.
func (r HelperReputation) AverageRating() float64 {
	if r.RatingCount == 0 {
		return 0
	}
	return r.RatingTotal / float64(r.RatingCount)
}
