package mappers

import (
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
)

// RegistrationMapper handles the conversion between Registration domain entities and persistence models.
type RegistrationMapper interface {
	ToModel(entity *registration.Registration) *models.RegistrationModel
	ToDomain(model *models.RegistrationModel) (*registration.Registration, error)
}

// RegistrationMapperImpl is the concrete implementation of RegistrationMapper.
type RegistrationMapperImpl struct{}

// NewRegistrationMapper creates a new RegistrationMapper.
func NewRegistrationMapper() RegistrationMapper {
	return &RegistrationMapperImpl{}
}

// ToModel converts a domain entity to a persistence model. ETADateKey is
// derived here so the stored day always matches the entity's arrival time.
func (m *RegistrationMapperImpl) ToModel(entity *registration.Registration) *models.RegistrationModel {
	if entity == nil {
		return nil
	}
	return &models.RegistrationModel{
		ID:           entity.ID(),
		HostUnit:     entity.HostUnit(),
		HostName:     entity.HostName(),
		HostPhone:    entity.HostPhone(),
		Category:     entity.Category(),
		SubCategory:  entity.SubCategory(),
		CompanyName:  entity.CompanyName(),
		VisitorName:  entity.VisitorName(),
		VisitorPhone: entity.VisitorPhone(),
		VehicleNo:    entity.VehicleNo(),
		StayOver:     entity.StayOver(),
		ETA:          entity.ETA(),
		ETADateKey:   biztime.DateKey(entity.ETA()),
		ETD:          entity.ETD(),
		Status:       entity.Status().String(),
		ParkingLot:   entity.ParkingLot(),
		AssignedBy:   entity.AssignedBy(),
		AssignedAt:   entity.AssignedAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *RegistrationMapperImpl) ToDomain(model *models.RegistrationModel) (*registration.Registration, error) {
	if model == nil {
		return nil, nil
	}
	return registration.ReconstructRegistration(
		model.ID,
		model.HostUnit,
		model.HostName,
		model.HostPhone,
		model.Category,
		model.SubCategory,
		model.CompanyName,
		model.VisitorName,
		model.VisitorPhone,
		model.VehicleNo,
		model.StayOver,
		model.ETA,
		model.ETD,
		registration.Status(model.Status),
		model.ParkingLot,
		model.AssignedBy,
		model.AssignedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
