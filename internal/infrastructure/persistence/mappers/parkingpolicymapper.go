package mappers

import (
	"time"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
)

// parkingPolicyRowID pins the singleton policy row.
const parkingPolicyRowID = 1

// ParkingPolicyMapper handles the conversion between the parking policy and its persistence model.
type ParkingPolicyMapper interface {
	ToModel(policy parking.Policy, updatedAt time.Time, updatedBy string) *models.ParkingPolicyModel
	ToDomain(model *models.ParkingPolicyModel) parking.Policy
}

type ParkingPolicyMapperImpl struct{}

func NewParkingPolicyMapper() ParkingPolicyMapper {
	return &ParkingPolicyMapperImpl{}
}

func (m *ParkingPolicyMapperImpl) ToModel(policy parking.Policy, updatedAt time.Time, updatedBy string) *models.ParkingPolicyModel {
	return &models.ParkingPolicyModel{
		ID:                      parkingPolicyRowID,
		Enabled:                 policy.Enabled,
		LowArrearsBound:         policy.LowArrearsBound,
		HighArrearsThreshold:    policy.HighArrearsThreshold,
		ArrearsCooldownDays:     policy.ArrearsCooldownDays,
		HighArrearsCooldownDays: policy.HighArrearsCooldownDays,
		NoArrearsCooldownDays:   policy.NoArrearsCooldownDays,
		Tier1FreeDays:           policy.Tier1FreeDays,
		Tier2FreeDays:           policy.Tier2FreeDays,
		Tier3FreeDays:           policy.Tier3FreeDays,
		Tier2DailyRate:          policy.Tier2DailyRate,
		Tier3DailyRate:          policy.Tier3DailyRate,
		UpdatedAt:               updatedAt,
		UpdatedBy:               updatedBy,
	}
}

func (m *ParkingPolicyMapperImpl) ToDomain(model *models.ParkingPolicyModel) parking.Policy {
	if model == nil {
		return parking.DefaultPolicy()
	}
	return parking.Policy{
		Enabled:                 model.Enabled,
		LowArrearsBound:         model.LowArrearsBound,
		HighArrearsThreshold:    model.HighArrearsThreshold,
		ArrearsCooldownDays:     model.ArrearsCooldownDays,
		HighArrearsCooldownDays: model.HighArrearsCooldownDays,
		NoArrearsCooldownDays:   model.NoArrearsCooldownDays,
		Tier1FreeDays:           model.Tier1FreeDays,
		Tier2FreeDays:           model.Tier2FreeDays,
		Tier3FreeDays:           model.Tier3FreeDays,
		Tier2DailyRate:          model.Tier2DailyRate,
		Tier3DailyRate:          model.Tier3DailyRate,
	}
}
