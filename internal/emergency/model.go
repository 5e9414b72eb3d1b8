package emergency

import (
	"time"

	"gorm.io/datatypes"
)

// SOS request statuses. A request is born NEW and an admin closes it out.
const (
	StatusNew       = "NEW"
	StatusCompleted = "COMPLETED"
)

// Request is an SOS emergency request raised by a beneficiary. The
// beneficiary details are stored as a snapshot taken at creation time so the
// dashboard keeps showing what the responder saw even if the profile changes.
type Request struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BeneficiaryID uint           `gorm:"not null;index" json:"beneficiary_id"`
	Beneficiary   datatypes.JSON `gorm:"type:jsonb" json:"beneficiary"`

	Message   string  `gorm:"type:text" json:"message"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Status string `gorm:"size:20;default:'NEW';index" json:"status"`

	CompletedBy *uint      `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string {
	return "emergency_requests"
}

// BeneficiarySnapshot is the denormalized beneficiary payload captured when a
// request is created. It also travels in the sos_alert event.
type BeneficiarySnapshot struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type CreateRequest struct {
	BeneficiaryID uint                `json:"beneficiary_id" binding:"required"`
	Beneficiary   BeneficiarySnapshot `json:"beneficiary" binding:"required"`
	Message       string              `json:"message"`
	Latitude      float64             `json:"latitude"`
	Longitude     float64             `json:"longitude"`
}

// UpdateStatusRequest is the PATCH /emergency/:id body.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AlertPayload is the sos_alert event body pushed over the realtime channel.
type AlertPayload struct {
	RequestID   uint                `json:"request_id"`
	Beneficiary BeneficiarySnapshot `json:"beneficiary"`
	Message     string              `json:"message"`
	CreatedAt   time.Time           `json:"created_at"`
}
