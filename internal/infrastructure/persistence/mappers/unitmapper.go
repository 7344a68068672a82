package mappers

import (
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
)

// UnitMapper handles the conversion between Unit domain entities and persistence models.
type UnitMapper interface {
	ToModel(entity *unit.Unit) *models.UnitModel
	ToDomain(model *models.UnitModel) *unit.Unit
}

// UnitMapperImpl is the concrete implementation of UnitMapper.
type UnitMapperImpl struct{}

// NewUnitMapper creates a new UnitMapper.
func NewUnitMapper() UnitMapper {
	return &UnitMapperImpl{}
}

func (m *UnitMapperImpl) ToModel(entity *unit.Unit) *models.UnitModel {
	if entity == nil {
		return nil
	}
	return &models.UnitModel{
		ID:            entity.ID,
		OwnerName:     entity.OwnerName,
		OwnerPhone:    entity.OwnerPhone,
		Arrears:       entity.Arrears,
		ArrearsAmount: entity.ArrearsAmount,
		UpdatedAt:     entity.UpdatedAt,
		UpdatedBy:     entity.UpdatedBy,
	}
}

func (m *UnitMapperImpl) ToDomain(model *models.UnitModel) *unit.Unit {
	if model == nil {
		return nil
	}
	return &unit.Unit{
		ID:            model.ID,
		OwnerName:     model.OwnerName,
		OwnerPhone:    model.OwnerPhone,
		Arrears:       model.Arrears,
		ArrearsAmount: model.ArrearsAmount,
		UpdatedAt:     model.UpdatedAt,
		UpdatedBy:     model.UpdatedBy,
	}
}
