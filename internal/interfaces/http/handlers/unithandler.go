package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	unitusecases "github.com/jmbbc/bc-visitor-dashboard/internal/application/unit/usecases"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/dto"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/http/middleware"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/utils"
)

// UnitHandler handles unit administration HTTP requests
type UnitHandler struct {
	getUseCase    getUnitUseCase
	updateUseCase updateArrearsUseCase
	policies      policyProvider
	logger        logger.Interface
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(
	getUseCase getUnitUseCase,
	updateUseCase updateArrearsUseCase,
	policies policyProvider,
	logger logger.Interface,
) *UnitHandler {
	return &UnitHandler{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		policies:      policies,
		logger:        logger,
	}
}

// Get handles GET /api/units/:id
func (h *UnitHandler) Get(c *gin.Context) {
	u, err := h.getUseCase.Execute(c.Request.Context(), unitusecases.GetUnitQuery{
		UnitID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The tier shown here is advisory; submit re-derives it inside its own
	// transaction.
	policy, err := h.policies.Get(c.Request.Context())
	if err != nil {
		h.logger.Warnw("failed to load parking policy for unit read, using defaults",
			"error", err, "unit_id", u.ID)
		policy = parking.DefaultPolicy()
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUnitResponse(u, policy.Sanitized()))
}

// UpdateArrears handles PUT /api/units/:id/arrears
func (h *UnitHandler) UpdateArrears(c *gin.Context) {
	var req dto.UpdateArrearsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(),
		req.ToCommand(c.Param("id"), middleware.ActorFrom(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "arrears updated", result)
}
