package campaign

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/maison-lumiere/atelier/internal/config"
	"github.com/maison-lumiere/atelier/internal/models"
	"github.com/maison-lumiere/atelier/internal/modules/newsletter/subscriber"
	"github.com/maison-lumiere/atelier/internal/pkg/mail"
	"github.com/maison-lumiere/atelier/internal/pkg/pagination"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotDraft       = errors.New("campaign is not sendable")
	ErrNoRecipients   = errors.New("no verified recipients")
	ErrAlreadySending = errors.New("campaign is already sending")
	ErrNoBody         = errors.New("campaign body is empty")
)

// Service handles newsletter campaigns and their dispatch.
type Service struct {
	db     *gorm.DB
	subs   *subscriber.Service
	sender *mail.Sender
	cfg    *config.AppConfig
	logger *zap.Logger
}

func NewService(db *gorm.DB, subs *subscriber.Service, sender *mail.Sender, cfg *config.AppConfig, logger *zap.Logger) *Service {
	return &Service{db: db, subs: subs, sender: sender, cfg: cfg, logger: logger.Named("CampaignService")}
}

// CreateCampaignDTO is the request body for creating a campaign. The body
// is authored either as ready HTML or as markdown; markdown wins when both
// are present and is rendered before storage.
type CreateCampaignDTO struct {
	Subject      string `json:"subject" binding:"required"`
	BodyHTML     string `json:"bodyHtml"`
	BodyMarkdown string `json:"bodyMarkdown"`
	Locale       string `json:"locale"`
}

// UpdateCampaignDTO patches a draft campaign.
type UpdateCampaignDTO struct {
	Subject      *string `json:"subject"`
	BodyHTML     *string `json:"bodyHtml"`
	BodyMarkdown *string `json:"bodyMarkdown"`
	Locale       *string `json:"locale"`
}

func (s *Service) List(q pagination.Query) ([]models.CampaignModel, response.Pagination, error) {
	tx := s.db.Model(&models.CampaignModel{}).Order("created_at DESC")
	var campaigns []models.CampaignModel
	pag, err := pagination.Paginate(tx, q, &campaigns)
	return campaigns, pag, err
}

func (s *Service) GetByID(id string) (*models.CampaignModel, error) {
	var cp models.CampaignModel
	if err := s.db.First(&cp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cp, nil
}

// resolveBody picks the stored HTML for a campaign body. Markdown, when
// present, is rendered and takes precedence over raw HTML.
func resolveBody(bodyHTML, bodyMarkdown string) (string, error) {
	body := bodyHTML
	if strings.TrimSpace(bodyMarkdown) != "" {
		rendered, err := RenderBodyMarkdown(bodyMarkdown)
		if err != nil {
			return "", err
		}
		body = rendered
	}
	if strings.TrimSpace(body) == "" {
		return "", ErrNoBody
	}
	return body, nil
}

func (s *Service) Create(dto *CreateCampaignDTO) (*models.CampaignModel, error) {
	body, err := resolveBody(dto.BodyHTML, dto.BodyMarkdown)
	if err != nil {
		return nil, err
	}

	cp := models.CampaignModel{
		Subject:  dto.Subject,
		BodyHTML: body,
		Status:   models.CampaignDraft,
	}
	if dto.Locale == "ko" || dto.Locale == "en" {
		cp.Locale = dto.Locale
	}
	return &cp, s.db.Create(&cp).Error
}

func (s *Service) Update(id string, dto *UpdateCampaignDTO) (*models.CampaignModel, error) {
	cp, err := s.GetByID(id)
	if err != nil || cp == nil {
		return cp, err
	}
	if cp.Status == models.CampaignSending || cp.Status == models.CampaignSent {
		return nil, ErrNotDraft
	}

	updates := map[string]interface{}{}
	if dto.Subject != nil {
		updates["subject"] = *dto.Subject
	}
	if dto.BodyMarkdown != nil {
		rendered, err := RenderBodyMarkdown(*dto.BodyMarkdown)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(rendered) == "" {
			return nil, ErrNoBody
		}
		updates["body_html"] = rendered
	} else if dto.BodyHTML != nil {
		updates["body_html"] = *dto.BodyHTML
	}
	if dto.Locale != nil && (*dto.Locale == "ko" || *dto.Locale == "en") {
		updates["locale"] = *dto.Locale
	}
	return cp, s.db.Model(cp).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.CampaignModel{}, "id = ?", id).Error
}

// Schedule marks a draft for sending at a future time; the scheduler picks
// it up once due.
func (s *Service) Schedule(id string, at time.Time) (*models.CampaignModel, error) {
	cp, err := s.GetByID(id)
	if err != nil || cp == nil {
		return cp, err
	}
	if cp.Status != models.CampaignDraft && cp.Status != models.CampaignScheduled {
		return nil, ErrNotDraft
	}

	err = s.db.Model(cp).Updates(map[string]interface{}{
		"status":       models.CampaignScheduled,
		"scheduled_at": at,
	}).Error
	return cp, err
}

// Send dispatches a campaign to every verified subscriber of its locale.
// The status move to "sending" is guarded so two console clicks cannot
// double-send.
func (s *Service) Send(ctx context.Context, id string) (*DispatchResult, error) {
	cp, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, gorm.ErrRecordNotFound
	}
	if cp.Status == models.CampaignSent {
		return nil, ErrNotDraft
	}

	res := s.db.Model(&models.CampaignModel{}).
		Where("id = ? AND status <> ?", id, models.CampaignSending).
		Update("status", models.CampaignSending)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadySending
	}

	subs, err := s.subs.ListVerified(cp.Locale)
	if err != nil {
		s.revertToDraft(id)
		return nil, err
	}
	if len(subs) == 0 {
		s.revertToDraft(id)
		return nil, ErrNoRecipients
	}

	recipients := make([]Recipient, len(subs))
	for i, sub := range subs {
		recipients[i] = Recipient{Email: sub.Email, Locale: sub.Locale, CancelToken: sub.CancelToken}
	}

	result := Dispatch(ctx, recipients, s.cfg.Newsletter.BatchSize, func(ctx context.Context, r Recipient) error {
		return s.sender.SendNewsletter(r.Email, mail.NewsletterData{
			SiteName:       s.cfg.Site.Name,
			Subject:        cp.Subject,
			Body:           template.HTML(cp.BodyHTML),
			Lang:           r.Locale,
			UnsubscribeURL: fmt.Sprintf("%s/subscribers/unsubscribe/%s", s.cfg.Site.ServerURL, r.CancelToken),
		})
	})

	now := time.Now()
	if err := s.db.Model(&models.CampaignModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":    models.CampaignSent,
		"sent_at":   now,
		"delivered": result.Delivered,
		"failed":    result.Failed,
	}).Error; err != nil {
		return &result, err
	}

	s.logger.Info("campaign dispatched",
		zap.String("campaign", id),
		zap.Int("delivered", result.Delivered),
		zap.Int("failed", result.Failed))
	return &result, nil
}

func (s *Service) revertToDraft(id string) {
	if err := s.db.Model(&models.CampaignModel{}).Where("id = ?", id).
		Update("status", models.CampaignDraft).Error; err != nil {
		s.logger.Warn("campaign: revert to draft failed", zap.String("campaign", id), zap.Error(err))
	}
}

// SendDue dispatches every scheduled campaign whose time has come. Invoked
// from the scheduler.
func (s *Service) SendDue(ctx context.Context) error {
	var due []models.CampaignModel
	if err := s.db.
		Where("status = ? AND scheduled_at <= ?", models.CampaignScheduled, time.Now()).
		Find(&due).Error; err != nil {
		return err
	}

	for _, cp := range due {
		if _, err := s.Send(ctx, cp.ID); err != nil {
			s.logger.Warn("scheduled campaign send failed",
				zap.String("campaign", cp.ID), zap.Error(err))
		}
	}
	return nil
}
