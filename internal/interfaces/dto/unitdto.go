package dto

import (
	"time"

	"github.com/shopspring/decimal"

	unitusecases "github.com/jmbbc/bc-visitor-dashboard/internal/application/unit/usecases"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
)

// UpdateArrearsRequest represents HTTP request to set a unit's arrears state.
type UpdateArrearsRequest struct {
	Arrears bool            `json:"arrears"`
	Amount  decimal.Decimal `json:"amount"`
}

// ToCommand converts the HTTP request to the update command.
func (r *UpdateArrearsRequest) ToCommand(unitID, updatedBy string) unitusecases.UpdateArrearsCommand {
	return unitusecases.UpdateArrearsCommand{
		UnitID:    unitID,
		Arrears:   r.Arrears,
		Amount:    r.Amount,
		UpdatedBy: updatedBy,
	}
}

// UnitResponse is the read model of one unit with its derived arrears tier.
type UnitResponse struct {
	ID            string          `json:"id"`
	OwnerName     string          `json:"ownerName,omitempty"`
	OwnerPhone    string          `json:"ownerPhone,omitempty"`
	Arrears       bool            `json:"arrears"`
	ArrearsAmount decimal.Decimal `json:"arrearsAmount"`
	Tier          parking.Tier    `json:"tier"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	UpdatedBy     string          `json:"updatedBy,omitempty"`
}

// NewUnitResponse maps a unit entity onto the wire shape, classifying its
// arrears amount under the given policy.
func NewUnitResponse(u *unit.Unit, policy parking.Policy) UnitResponse {
	return UnitResponse{
		ID:            u.ID,
		OwnerName:     u.OwnerName,
		OwnerPhone:    u.OwnerPhone,
		Arrears:       u.Arrears,
		ArrearsAmount: u.ArrearsAmount,
		Tier:          policy.ClassifyArrears(u.ArrearsAmount),
		UpdatedAt:     u.UpdatedAt,
		UpdatedBy:     u.UpdatedBy,
	}
}
