package subscriber

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maison-lumiere/atelier/internal/models"
	"github.com/maison-lumiere/atelier/internal/pkg/pagination"
	redisc "github.com/maison-lumiere/atelier/internal/pkg/redis"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	verifyKeyPrefix = "atelier:subscribe:verify:"
	verifyTTL       = 48 * time.Hour
)

var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrTokenExpired      = errors.New("token expired or unknown")
)

// Service manages newsletter subscribers.
type Service struct {
	db *gorm.DB
	rc *redisc.Client
}

func NewService(db *gorm.DB, rc *redisc.Client) *Service {
	return &Service{db: db, rc: rc}
}

// Subscribe registers an unverified subscriber and returns the verification
// token to embed in the confirmation email. Re-subscribing an unverified
// address issues a fresh token instead of failing.
func (s *Service) Subscribe(ctx context.Context, email, locale string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	if locale != "ko" && locale != "en" {
		locale = "ko"
	}

	var existing models.SubscriberModel
	err := s.db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil && existing.Verified:
		return "", ErrAlreadySubscribed
	case err == nil:
		// unverified re-subscribe: keep the row, refresh locale
		if existing.Locale != locale {
			s.db.Model(&existing).Update("locale", locale)
		}
		return s.issueVerifyToken(ctx, existing.ID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := models.SubscriberModel{
			Email:       email,
			Locale:      locale,
			CancelToken: uuid.New().String(),
		}
		if err := s.db.Create(&sub).Error; err != nil {
			return "", err
		}
		return s.issueVerifyToken(ctx, sub.ID)
	default:
		return "", err
	}
}

func (s *Service) issueVerifyToken(ctx context.Context, subscriberID string) (string, error) {
	token := uuid.New().String()
	if err := s.rc.Set(ctx, verifyKeyPrefix+token, subscriberID, verifyTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Verify confirms a subscription from the emailed token.
func (s *Service) Verify(ctx context.Context, token string) (*models.SubscriberModel, error) {
	id, err := s.rc.Get(ctx, verifyKeyPrefix+token)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrTokenExpired
	}

	var sub models.SubscriberModel
	if err := s.db.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	if err := s.db.Model(&sub).Update("verified", true).Error; err != nil {
		return nil, err
	}
	sub.Verified = true
	_ = s.rc.Del(ctx, verifyKeyPrefix+token)
	return &sub, nil
}

// Unsubscribe removes a subscriber by their permanent cancel token.
func (s *Service) Unsubscribe(cancelToken string) error {
	res := s.db.Where("cancel_token = ?", cancelToken).Delete(&models.SubscriberModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTokenExpired
	}
	return nil
}

// List returns subscribers for the console, newest first.
func (s *Service) List(q pagination.Query, verifiedOnly bool) ([]models.SubscriberModel, response.Pagination, error) {
	tx := s.db.Model(&models.SubscriberModel{}).Order("created_at DESC")
	if verifiedOnly {
		tx = tx.Where("verified = ?", true)
	}
	var subs []models.SubscriberModel
	pag, err := pagination.Paginate(tx, q, &subs)
	return subs, pag, err
}

// ListVerified returns every verified subscriber for a locale, for dispatch.
func (s *Service) ListVerified(locale string) ([]models.SubscriberModel, error) {
	tx := s.db.Where("verified = ?", true)
	if locale != "" {
		tx = tx.Where("locale = ?", locale)
	}
	var subs []models.SubscriberModel
	return subs, tx.Order("created_at ASC").Find(&subs).Error
}

// DeleteByIDs removes subscribers in bulk from the console.
func (s *Service) DeleteByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.db.Where("id IN ?", ids).Delete(&models.SubscriberModel{})
	return res.RowsAffected, res.Error
}

// ExportCSV renders every subscriber as CSV for the console export.
func (s *Service) ExportCSV() (string, error) {
	var subs []models.SubscriberModel
	if err := s.db.Order("created_at ASC").Find(&subs).Error; err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("email,locale,verified,subscribed_at\n")
	for _, sub := range subs {
		sb.WriteString(fmt.Sprintf("%s,%s,%t,%s\n",
			sub.Email, sub.Locale, sub.Verified, sub.CreatedAt.Format(time.RFC3339)))
	}
	return sb.String(), nil
}

// CleanupUnverified removes unverified subscribers older than the cutoff.
// Runs from the scheduler so abandoned signups do not pile up.
func (s *Service) CleanupUnverified(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res := s.db.Where("verified = ? AND created_at < ?", false, cutoff).
		Delete(&models.SubscriberModel{})
	return res.RowsAffected, res.Error
}
