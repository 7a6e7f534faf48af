package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/wingmate-nz/companion-api/schema"
)

// BindMatch binds one request to one offer in a single transaction of
// two conditional updates. The WHERE predicates re-validate the
// persisted state at transition time, so the database, not the caller's
// possibly stale read, decides the transition. Zero affected rows on
// either side means another confirmation won the race; nothing is left
// half-applied.
func (s *CompanionStore) BindMatch(request *schema.HelpRequest, offer *schema.HelpOffer) (time.Time, error) {
	matchedAt := time.Now().UTC()

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return time.Time{}, tx.Error
	}

	requestUpdate := tx.Model(schema.HelpRequest{}).
		Where("id = ? AND is_active = ? AND is_matched = ? AND version = ?",
			request.ID, true, false, request.Version).
		Updates(map[string]interface{}{
			"is_matched":       true,
			"matched_offer_id": offer.ID,
			"matched_at":       matchedAt,
			"version":          gorm.Expr("version + 1"),
		})
	if requestUpdate.Error != nil {
		tx.Rollback()
		return time.Time{}, requestUpdate.Error
	}
	if requestUpdate.RowsAffected == 0 {
		tx.Rollback()
		return time.Time{}, ErrMatchConflict
	}

	var offerUpdate *gorm.DB
	switch offer.Domain {
	case schema.DomainAirportPickup:
		seats := request.Seats()
		offerUpdate = tx.Model(schema.HelpOffer{}).
			Where("id = ? AND is_available = ? AND remaining_seats >= ?", offer.ID, true, seats).
			Updates(map[string]interface{}{
				"remaining_seats": gorm.Expr("remaining_seats - ?", seats),
				"is_available":    gorm.Expr("remaining_seats - ? > 0", seats),
				"version":         gorm.Expr("version + 1"),
			})
	default:
		// flight companion offers are consumed one-to-one
		offerUpdate = tx.Model(schema.HelpOffer{}).
			Where("id = ? AND is_available = ?", offer.ID, true).
			Updates(map[string]interface{}{
				"is_available": false,
				"version":      gorm.Expr("version + 1"),
			})
	}
	if offerUpdate.Error != nil {
		tx.Rollback()
		return time.Time{}, offerUpdate.Error
	}
	if offerUpdate.RowsAffected == 0 {
		tx.Rollback()
		return time.Time{}, ErrMatchConflict
	}

	if err := tx.Commit().Error; err != nil {
		return time.Time{}, err
	}

	return matchedAt, nil
}

// ExpireListings soft-deactivates every listing whose flight or arrival
// date has passed
func (s *CompanionStore) ExpireListings(now time.Time) error {
	if err := s.ormDB.Model(schema.HelpRequest{}).
		Where("is_active = ? AND ((domain = ? AND flight_date < ?) OR (domain = ? AND arrival_at < ?))",
			true,
			schema.DomainFlightCompanion, now.Truncate(24*time.Hour),
			schema.DomainAirportPickup, now).
		Update("is_active", false).Error; err != nil {
		return err
	}

	return s.ormDB.Model(schema.HelpOffer{}).
		Where("is_available = ? AND ((domain = ? AND flight_date < ?) OR (domain = ? AND arrival_at < ?))",
			true,
			schema.DomainFlightCompanion, now.Truncate(24*time.Hour),
			schema.DomainAirportPickup, now).
		Updates(map[string]interface{}{
			"is_available": false,
			"version":      gorm.Expr("version + 1"),
		}).Error
}
