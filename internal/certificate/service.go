package certificate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/trongdat-dev/volunteer-hub-backend/config"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/volunteer"
	"github.com/trongdat-dev/volunteer-hub-backend/utils"
)

// VolunteerSource resolves the volunteer an issuance is for.
type VolunteerSource interface {
	GetByID(ctx context.Context, id uint) (*volunteer.Volunteer, error)
}

type Service struct {
	Repo        Repository
	Volunteers  VolunteerSource
	ActivitySvc activitylog.Service

	// UploadDir is where template images live and issued PDFs are written.
	UploadDir string
}

func NewService(r Repository, volunteers VolunteerSource, activitySvc activitylog.Service, uploadDir string) *Service {
	return &Service{Repo: r, Volunteers: volunteers, ActivitySvc: activitySvc, UploadDir: uploadDir}
}

func (s *Service) ListTemplates(ctx context.Context, limit, page int) (*PaginatedTemplates, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	templates, total, err := s.Repo.ListTemplates(ctx, limit, page)
	if err != nil {
		return nil, err
	}

	return &PaginatedTemplates{
		Data:       templates,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *Service) GetTemplate(ctx context.Context, id uint) (*Template, error) {
	return s.Repo.GetTemplate(ctx, id)
}

// CreateTemplate validates the box configuration against the image bounds
// and persists it.
func (s *Service) CreateTemplate(ctx context.Context, req CreateTemplateRequest, userID uint, ip string) (*Template, error) {
	if len(req.TextBoxConfig) == 0 {
		return nil, errors.New("at least one text box is required")
	}
	for field, box := range req.TextBoxConfig {
		if box.Width < MinBoxWidth || box.Height < MinBoxHeight {
			return nil, fmt.Errorf("box %q is below the minimum size %gx%g", field, MinBoxWidth, MinBoxHeight)
		}
		if box.X < 0 || box.Y < 0 {
			return nil, fmt.Errorf("box %q has a negative position", field)
		}
	}

	configJSON, err := json.Marshal(req.TextBoxConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid text box config: %w", err)
	}

	t := &Template{
		Name:          req.Name,
		ImageURL:      req.ImageURL,
		ImageWidth:    req.ImageWidth,
		ImageHeight:   req.ImageHeight,
		TextBoxConfig: configJSON,
	}

	if err := s.Repo.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}

	_ = s.ActivitySvc.LogAction(ctx, &userID, nil, "CERTIFICATE_TEMPLATE_CREATED",
		map[string]interface{}{"template_id": t.ID, "name": t.Name}, ip, "success")

	return t, nil
}

func (s *Service) DeleteTemplate(ctx context.Context, id uint, userID uint, ip string) error {
	t, err := s.Repo.GetTemplate(ctx, id)
	if err != nil {
		return errors.New("template not found")
	}

	if err := s.Repo.DeleteTemplate(ctx, id); err != nil {
		return err
	}

	_ = s.ActivitySvc.LogAction(ctx, &userID, nil, "CERTIFICATE_TEMPLATE_DELETED",
		map[string]interface{}{"template_id": t.ID, "name": t.Name}, ip, "success")

	return nil
}

func (s *Service) ListIssued(ctx context.Context, volunteerID *uint, limit, page int) (*PaginatedIssued, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	issued, total, err := s.Repo.ListIssued(ctx, volunteerID, limit, page)
	if err != nil {
		return nil, err
	}

	return &PaginatedIssued{
		Data:       issued,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Issue renders the certificate PDF for one volunteer, records the issuance
// and emails the result. The record is immutable after creation; a failed
// email only leaves email_sent false.
func (s *Service) Issue(ctx context.Context, req IssueRequest, userID uint, ip string) (*IssuedCertificate, error) {
	t, err := s.Repo.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		return nil, errors.New("template not found")
	}

	v, err := s.Volunteers.GetByID(ctx, req.VolunteerID)
	if err != nil {
		return nil, errors.New("volunteer not found")
	}

	var boxConfig TextBoxConfig
	if err := json.Unmarshal(t.TextBoxConfig, &boxConfig); err != nil {
		return nil, fmt.Errorf("corrupt text box config on template %d: %w", t.ID, err)
	}

	imagePath := filepath.Join(s.UploadDir, filepath.Base(t.ImageURL))
	img, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("template image unavailable: %w", err)
	}
	defer img.Close()

	values := map[string]string{
		"volunteer_name": v.FullName,
		"points":         fmt.Sprintf("%d", v.Points),
	}

	pdfBytes, err := RenderPDF(img, imageType(imagePath), float64(t.ImageWidth), float64(t.ImageHeight), boxConfig, values)
	if err != nil {
		return nil, err
	}

	certDir := filepath.Join(s.UploadDir, "certificates")
	if err := os.MkdirAll(certDir, 0o755); err != nil {
		return nil, err
	}
	filename := uuid.New().String() + ".pdf"
	if err := os.WriteFile(filepath.Join(certDir, filename), pdfBytes, 0o644); err != nil {
		return nil, err
	}

	ic := &IssuedCertificate{
		TemplateID:  t.ID,
		VolunteerID: v.ID,
		PDFURL:      "/uploads/certificates/" + filename,
		Notes:       req.Notes,
	}
	if err := s.Repo.CreateIssued(ctx, ic); err != nil {
		return nil, err
	}

	if err := utils.SendCertificateEmail(v.Email, v.FullName, t.Name, config.BaseURL+ic.PDFURL); err != nil {
		log.Printf("⚠️ certificate email to %s failed: %v", v.Email, err)
	} else {
		ic.EmailSent = true
		if err := s.Repo.UpdateIssued(ctx, ic); err != nil {
			log.Printf("⚠️ failed to record email_sent for certificate %d: %v", ic.ID, err)
		}
	}

	_ = s.ActivitySvc.LogAction(ctx, &userID, nil, "CERTIFICATE_ISSUED",
		map[string]interface{}{"certificate_id": ic.ID, "template_id": t.ID, "volunteer_id": v.ID},
		ip, "success")

	return ic, nil
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	default:
		return "PNG"
	}
}
