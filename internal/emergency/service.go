package emergency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/realtime"
	"github.com/trongdat-dev/volunteer-hub-backend/utils"
)

// AdminDirectory supplies the contact points of admin accounts that should
// hear about a new SOS request. Backed by the auth repository.
type AdminDirectory interface {
	GetAdminFCMTokens() ([]string, error)
	GetUserEmailsByRole(roleName string) ([]string, error)
}

type Service struct {
	Repo        Repository
	Hub         *realtime.Hub
	Admins      AdminDirectory
	ActivitySvc activitylog.Service
}

func NewService(r Repository, hub *realtime.Hub, admins AdminDirectory, activitySvc activitylog.Service) *Service {
	return &Service{Repo: r, Hub: hub, Admins: admins, ActivitySvc: activitySvc}
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	if status != "" && status != StatusNew && status != StatusCompleted {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	return s.Repo.ListByStatus(ctx, status)
}

// Create stores a new SOS request and fans the alert out: realtime broadcast
// to connected consoles, a Kafka event for downstream consumers, and an FCM
// push to admin devices. Fan-out failures never fail the create.
func (s *Service) Create(ctx context.Context, req CreateRequest, ip string) (*Request, error) {
	snapshot, err := json.Marshal(req.Beneficiary)
	if err != nil {
		return nil, fmt.Errorf("invalid beneficiary snapshot: %w", err)
	}

	r := &Request{
		BeneficiaryID: req.BeneficiaryID,
		Beneficiary:   snapshot,
		Message:       req.Message,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Status:        StatusNew,
	}

	if err := s.Repo.Create(ctx, r); err != nil {
		return nil, err
	}

	alert := AlertPayload{
		RequestID:   r.ID,
		Beneficiary: req.Beneficiary,
		Message:     r.Message,
		CreatedAt:   r.CreatedAt,
	}

	s.broadcast(alert)
	s.publishEvent(ctx, alert)
	s.pushToAdmins(ctx, alert)
	s.emailAdmins(alert)

	_ = s.ActivitySvc.LogAction(ctx, nil, nil, "SOS_CREATED",
		map[string]interface{}{"request_id": r.ID, "beneficiary_id": r.BeneficiaryID},
		ip, "success")

	return r, nil
}

// UpdateStatus moves a request NEW → COMPLETED. The reverse transition does
// not exist.
func (s *Service) UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest, adminID uint, ip string) error {
	if req.Status != StatusCompleted {
		return fmt.Errorf("status must be %s", StatusCompleted)
	}

	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("emergency request not found")
	}

	if r.Status != StatusNew {
		return fmt.Errorf("request is already %s", r.Status)
	}

	now := time.Now()
	r.Status = StatusCompleted
	r.CompletedBy = &adminID
	r.CompletedAt = &now

	if err := s.Repo.Update(ctx, r); err != nil {
		return err
	}

	_ = s.ActivitySvc.LogAction(ctx, &adminID, nil, "SOS_COMPLETED",
		map[string]interface{}{"request_id": r.ID}, ip, "success")

	return nil
}

func (s *Service) broadcast(alert AlertPayload) {
	if s.Hub != nil {
		s.Hub.Broadcast(realtime.EventSOSAlert, alert)
	}
}

func (s *Service) publishEvent(ctx context.Context, alert AlertPayload) {
	if utils.SOSWriter == nil {
		return
	}
	payload, err := json.Marshal(alert)
	if err != nil {
		return
	}
	if err := utils.SOSWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", alert.RequestID)),
		Value: payload,
	}); err != nil {
		log.Printf("⚠️ failed to publish SOS event: %v", err)
	}
}

func (s *Service) pushToAdmins(ctx context.Context, alert AlertPayload) {
	if !utils.IsFCMEnabled() || s.Admins == nil {
		return
	}
	tokens, err := s.Admins.GetAdminFCMTokens()
	if err != nil || len(tokens) == 0 {
		return
	}
	title := "🚨 New SOS request"
	body := fmt.Sprintf("%s needs help", alert.Beneficiary.FullName)
	if err := utils.SendPushToTokens(ctx, tokens, title, body, map[string]string{
		"request_id": fmt.Sprintf("%d", alert.RequestID),
		"type":       "sos_alert",
	}); err != nil {
		log.Printf("⚠️ failed to push SOS alert: %v", err)
	}
}

func (s *Service) emailAdmins(alert AlertPayload) {
	if s.Admins == nil {
		return
	}
	emails, err := s.Admins.GetUserEmailsByRole("admin")
	if err != nil || len(emails) == 0 {
		return
	}
	subject := fmt.Sprintf("New SOS request #%d", alert.RequestID)
	body := fmt.Sprintf("%s needs help.\nMessage: %s\nOpen the emergency dashboard to respond.",
		alert.Beneficiary.FullName, alert.Message)
	utils.SendBulkEmailsAsync(emails, subject, body)
}
