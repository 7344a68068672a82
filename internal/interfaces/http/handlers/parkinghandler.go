package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/dto"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/utils"
)

// ParkingHandler handles parking charge preview HTTP requests
type ParkingHandler struct {
	quoteUseCase quoteChargeUseCase
	logger       logger.Interface
}

// NewParkingHandler creates a new ParkingHandler
func NewParkingHandler(quoteUseCase quoteChargeUseCase, logger logger.Interface) *ParkingHandler {
	return &ParkingHandler{quoteUseCase: quoteUseCase, logger: logger}
}

// Quote handles GET /api/parking/quote?unit=&eta=&etd=
func (h *ParkingHandler) Quote(c *gin.Context) {
	query, err := dto.ParseQuoteQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.quoteUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
