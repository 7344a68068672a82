// Package dto defines the HTTP request/response shapes and their conversion
// to application layer commands.
package dto

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jmbbc/bc-visitor-dashboard/internal/application/registration/usecases"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
)

// SubmitRegistrationRequest represents HTTP request to submit a registration.
// resourceOwnerId/eventDate/identity* follow the gateway contract; the rest
// are the optional visitor detail fields the dashboard collects.
type SubmitRegistrationRequest struct {
	ResourceOwnerID string `json:"resourceOwnerId" binding:"required"`
	EventDate       string `json:"eventDate" binding:"required"`
	EndDate         string `json:"endDate" binding:"omitempty"`
	IdentityName    string `json:"identityName" binding:"omitempty,max=100"`
	IdentityPhone   string `json:"identityPhone" binding:"omitempty,max=32"`
	HostName        string `json:"hostName" binding:"omitempty,max=100"`
	HostPhone       string `json:"hostPhone" binding:"omitempty,max=32"`
	Category        string `json:"category" binding:"omitempty,oneof=visitor contractor"`
	SubCategory     string `json:"subCategory" binding:"omitempty,max=50"`
	CompanyName     string `json:"companyName" binding:"omitempty,max=100"`
	VehicleNo       string `json:"vehicleNo" binding:"omitempty,max=20"`
	StayOver        bool   `json:"stayOver"`
	// AdminOverride is only a request; it takes effect when the upstream
	// gateway marked the caller as an administrator.
	AdminOverride bool `json:"adminOverride"`
}

// ToCommand converts the HTTP request to the submission command. Actor and
// callerIsAdmin come from the request context, never from the body.
func (r *SubmitRegistrationRequest) ToCommand(actor string, callerIsAdmin bool) (usecases.SubmitRegistrationCommand, error) {
	var cmd usecases.SubmitRegistrationCommand

	eta, err := ParseEventTime(r.EventDate)
	if err != nil {
		return cmd, errors.NewValidationError("invalid eventDate", "expected ISO-8601 or YYYY-MM-DD")
	}

	var etd *time.Time
	if r.EndDate != "" {
		end, err := ParseEventTime(r.EndDate)
		if err != nil {
			return cmd, errors.NewValidationError("invalid endDate", "expected ISO-8601 or YYYY-MM-DD")
		}
		etd = &end
	}

	return usecases.SubmitRegistrationCommand{
		HostUnit:      r.ResourceOwnerID,
		HostName:      r.HostName,
		HostPhone:     r.HostPhone,
		Category:      r.Category,
		SubCategory:   r.SubCategory,
		CompanyName:   r.CompanyName,
		VisitorName:   r.IdentityName,
		VisitorPhone:  r.IdentityPhone,
		VehicleNo:     r.VehicleNo,
		StayOver:      r.StayOver,
		ETA:           eta,
		ETD:           etd,
		AdminOverride: r.AdminOverride,
		CallerIsAdmin: callerIsAdmin,
		Actor:         actor,
	}, nil
}

// AssignLotRequest represents HTTP request to assign a parking lot.
type AssignLotRequest struct {
	LotID string `json:"lotId" binding:"required,max=16"`
}

// SubmitRegistrationResponse is the body returned by a successful submit.
type SubmitRegistrationResponse struct {
	ID              string     `json:"id"`
	CooldownApplied bool       `json:"cooldownApplied,omitempty"`
	CooldownUntil   *time.Time `json:"cooldownUntil,omitempty"`
	Fallback        bool       `json:"fallback,omitempty"`
}

// NewSubmitRegistrationResponse maps the usecase result onto the wire shape.
func NewSubmitRegistrationResponse(result *usecases.SubmitRegistrationResult) SubmitRegistrationResponse {
	return SubmitRegistrationResponse{
		ID:              result.RegistrationID,
		CooldownApplied: result.CooldownApplied,
		CooldownUntil:   result.CooldownUntil,
		Fallback:        result.Fallback,
	}
}

// RegistrationResponse is the read model of one registration as the dashboard
// consumes it.
type RegistrationResponse struct {
	ID           string     `json:"id"`
	HostUnit     string     `json:"hostUnit"`
	HostName     string     `json:"hostName,omitempty"`
	HostPhone    string     `json:"hostPhone,omitempty"`
	Category     string     `json:"category,omitempty"`
	SubCategory  string     `json:"subCategory,omitempty"`
	CompanyName  string     `json:"companyName,omitempty"`
	VisitorName  string     `json:"visitorName,omitempty"`
	VisitorPhone string     `json:"visitorPhone,omitempty"`
	VehicleNo    string     `json:"vehicleNo,omitempty"`
	StayOver     bool       `json:"stayOver"`
	ETA          time.Time  `json:"eta"`
	ETD          *time.Time `json:"etd,omitempty"`
	Status       string     `json:"status"`
	ParkingLot   string     `json:"parkingLot,omitempty"`
	AssignedBy   string     `json:"assignedBy,omitempty"`
	AssignedAt   *time.Time `json:"assignedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewRegistrationResponse maps a registration entity onto the wire shape.
func NewRegistrationResponse(reg *registration.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           reg.ID(),
		HostUnit:     reg.HostUnit(),
		HostName:     reg.HostName(),
		HostPhone:    reg.HostPhone(),
		Category:     reg.Category(),
		SubCategory:  reg.SubCategory(),
		CompanyName:  reg.CompanyName(),
		VisitorName:  reg.VisitorName(),
		VisitorPhone: reg.VisitorPhone(),
		VehicleNo:    reg.VehicleNo(),
		StayOver:     reg.StayOver(),
		ETA:          reg.ETA(),
		ETD:          reg.ETD(),
		Status:       string(reg.Status()),
		ParkingLot:   reg.ParkingLot(),
		AssignedBy:   reg.AssignedBy(),
		AssignedAt:   reg.AssignedAt(),
		CreatedAt:    reg.CreatedAt(),
	}
}

// NewRegistrationListResponse maps a day's registrations for the list endpoint.
func NewRegistrationListResponse(regs []*registration.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, NewRegistrationResponse(reg))
	}
	return out
}

// ParseQuoteQuery parses query parameters for the parking charge preview.
func ParseQuoteQuery(c *gin.Context) (usecases.QuoteChargeQuery, error) {
	var query usecases.QuoteChargeQuery

	unitID := c.Query("unit")
	if unitID == "" {
		return query, errors.NewValidationError("unit query parameter is required")
	}

	etaStr := c.Query("eta")
	if etaStr == "" {
		return query, errors.NewValidationError("eta query parameter is required")
	}
	start, err := ParseEventTime(etaStr)
	if err != nil {
		return query, errors.NewValidationError("invalid eta", "expected ISO-8601 or YYYY-MM-DD")
	}

	var end time.Time
	if etdStr := c.Query("etd"); etdStr != "" {
		end, err = ParseEventTime(etdStr)
		if err != nil {
			return query, errors.NewValidationError("invalid etd", "expected ISO-8601 or YYYY-MM-DD")
		}
	}

	return usecases.QuoteChargeQuery{UnitID: unitID, Start: start, End: end}, nil
}

// ParseEventTime accepts an RFC3339 timestamp or a bare calendar date. Bare
// dates anchor to midnight in the business timezone so they land on the same
// date key the caller meant.
func ParseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, biztime.Location())
}
