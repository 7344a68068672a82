package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	regusecases "github.com/jmbbc/bc-visitor-dashboard/internal/application/registration/usecases"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/dto"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/http/middleware"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/utils"
)

// RegistrationHandler handles registration HTTP requests
type RegistrationHandler struct {
	submitUseCase   submitRegistrationUseCase
	fallbackUseCase fallbackSubmitUseCase
	assignUseCase   assignLotUseCase
	listUseCase     listRegistrationsUseCase
	logger          logger.Interface
}

// NewRegistrationHandler creates a new RegistrationHandler. fallbackUseCase
// may be nil, which disables the degraded submit path.
func NewRegistrationHandler(
	submitUseCase submitRegistrationUseCase,
	fallbackUseCase fallbackSubmitUseCase,
	assignUseCase assignLotUseCase,
	listUseCase listRegistrationsUseCase,
	logger logger.Interface,
) *RegistrationHandler {
	return &RegistrationHandler{
		submitUseCase:   submitUseCase,
		fallbackUseCase: fallbackUseCase,
		assignUseCase:   assignUseCase,
		listUseCase:     listUseCase,
		logger:          logger,
	}
}

// Submit handles POST /api/registrations
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req dto.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(middleware.ActorFrom(c), middleware.IsAdminFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		// Rejections (duplicate, cooldown, validation) are final. Only an
		// internal failure of the coordinator falls through to the
		// best-effort non-transactional path.
		if errors.IsInternalError(err) && h.fallbackUseCase != nil {
			h.submitFallback(c, cmd, err)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewSubmitRegistrationResponse(result), "registration created")
}

func (h *RegistrationHandler) submitFallback(c *gin.Context, cmd regusecases.SubmitRegistrationCommand, cause error) {
	h.logger.Warnw("submit coordinator failed, attempting fallback write",
		"host_unit", cmd.HostUnit, "error", cause)

	result, err := h.fallbackUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("fallback write failed", "host_unit", cmd.HostUnit, "error", err)
		utils.ErrorResponseWithError(c, cause)
		return
	}

	utils.CreatedResponse(c, dto.NewSubmitRegistrationResponse(result), "registration created via fallback")
}

// AssignLot handles POST /api/registrations/:id/lot
func (h *RegistrationHandler) AssignLot(c *gin.Context) {
	registrationID := c.Param("id")

	var req dto.AssignLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignUseCase.Execute(c.Request.Context(), regusecases.AssignLotCommand{
		RegistrationID: registrationID,
		LotID:          req.LotID,
		AssignedBy:     middleware.ActorFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /api/registrations?date=YYYY-MM-DD
func (h *RegistrationHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), regusecases.ListRegistrationsQuery{
		DateKey: c.Query("date"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"date":          result.DateKey,
		"registrations": dto.NewRegistrationListResponse(result.Registrations),
	})
}
