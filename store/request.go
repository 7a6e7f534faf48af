package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/wingmate-nz/companion-api/schema"
)

var (
	ErrRequestNotExist  = fmt.Errorf("the request is either closed or not open for you")
	ErrOfferNotExist    = fmt.Errorf("the offer is either closed or not open for you")
	ErrDuplicateListing = fmt.Errorf("an identical listing already exists")
	ErrMatchConflict    = fmt.Errorf("the offer was just taken or the request is already matched")
)

// CreateRequest persists a new help request in the active, unmatched state
func (s *CompanionStore) CreateRequest(request *schema.HelpRequest) error {
	request.IsActive = true
	request.IsMatched = false

	if err := s.ormDB.Create(request).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateListing
		}
		return err
	}
	return nil
}

// GetRequest returns a request regardless of its lifecycle state
func (s *CompanionStore) GetRequest(id uuid.UUID) (*schema.HelpRequest, error) {
	var request schema.HelpRequest

	if err := s.ormDB.Where("id = ?", id).First(&request).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &request, nil
}

// GetActiveUnmatchedRequest returns a request only when it is still
// open for matching
func (s *CompanionStore) GetActiveUnmatchedRequest(id uuid.UUID) (*schema.HelpRequest, error) {
	var request schema.HelpRequest

	if err := s.ormDB.
		Where("id = ? AND is_active = ? AND is_matched = ?", id, true, false).
		First(&request).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &request, nil
}

// ListRequestsByRequester returns every listing of an account, newest first
func (s *CompanionStore) ListRequestsByRequester(accountNumber string) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	if err := s.ormDB.
		Where("requester = ?", accountNumber).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// ListOpenRequests returns active unmatched requests of a domain for
// helper-side browsing
func (s *CompanionStore) ListOpenRequests(domain schema.Domain, count int) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	if err := s.ormDB.
		Where("domain = ? AND is_active = ? AND is_matched = ?", domain, true, false).
		Order("created_at asc").
		Limit(count).
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// WithdrawRequest soft-deactivates a listing. Only the owner may
// withdraw, and only while the request is still unmatched.
func (s *CompanionStore) WithdrawRequest(accountNumber string, id uuid.UUID) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND requester = ? AND is_active = ? AND is_matched = ?", id, accountNumber, true, false).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	return nil
}
