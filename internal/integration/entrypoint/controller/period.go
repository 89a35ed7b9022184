package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/usecase/period"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/dto"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/middleware"
)

// PeriodController handles period lifecycle and draw endpoints.
type PeriodController struct {
	listUseCase      *period.ListPeriodsUseCase
	getUseCase       *period.GetPeriodUseCase
	createUseCase    *period.CreatePeriodUseCase
	updateUseCase    *period.UpdatePeriodUseCase
	deleteUseCase    *period.DeletePeriodUseCase
	listDrawsUseCase *period.ListDrawsUseCase
	markDrawnUseCase *period.MarkDrawnUseCase
}

// NewPeriodController creates a new period controller instance.
func NewPeriodController(
	listUseCase *period.ListPeriodsUseCase,
	getUseCase *period.GetPeriodUseCase,
	createUseCase *period.CreatePeriodUseCase,
	updateUseCase *period.UpdatePeriodUseCase,
	deleteUseCase *period.DeletePeriodUseCase,
	listDrawsUseCase *period.ListDrawsUseCase,
	markDrawnUseCase *period.MarkDrawnUseCase,
) *PeriodController {
	return &PeriodController{
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		listDrawsUseCase: listDrawsUseCase,
		markDrawnUseCase: markDrawnUseCase,
	}
}

// List handles GET /periods requests.
func (c *PeriodController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	periods := make([]dto.PeriodResponse, len(output.Periods))
	for i, p := range output.Periods {
		periods[i] = dto.ToPeriodResponse(p)
	}
	ctx.JSON(http.StatusOK, dto.PeriodListResponse{Periods: periods})
}

// Get handles GET /periods/:id requests.
func (c *PeriodController) Get(ctx *gin.Context) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), periodID)
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodDetailResponse(output))
}

// Create handles POST /periods requests.
func (c *PeriodController) Create(ctx *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := period.CreatePeriodInput{
		Name:          req.Name,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DefaultAmount: decimal.NewFromFloat(req.DefaultAmount),
	}
	if adminID, ok := middleware.GetAdminIDFromContext(ctx); ok {
		input.AdminID = &adminID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPeriodResponse(output.Period))
}

// Update handles PATCH /periods/:id requests.
func (c *PeriodController) Update(ctx *gin.Context) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	var req dto.UpdatePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := period.UpdatePeriodInput{
		ID:        periodID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.DefaultAmount != nil {
		amount := decimal.NewFromFloat(*req.DefaultAmount)
		input.DefaultAmount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodResponse(output.Period))
}

// Delete handles DELETE /periods/:id requests.
func (c *PeriodController) Delete(ctx *gin.Context) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), periodID); err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListDraws handles GET /periods/:id/draws requests. The pending-only
// variant is mounted at /periods/:id/draws/pending.
func (c *PeriodController) ListDraws(pendingOnly bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		periodID, err := uuid.Parse(ctx.Param("id"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid period ID format",
			})
			return
		}

		output, err := c.listDrawsUseCase.Execute(ctx.Request.Context(), period.ListDrawsInput{
			PeriodID:    periodID,
			PendingOnly: pendingOnly,
		})
		if err != nil {
			c.handlePeriodError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.DrawListResponse{
			Memberships: dto.ToMembershipResponses(output.Memberships),
		})
	}
}

// MarkDrawn handles POST /periods/:id/draws requests.
func (c *PeriodController) MarkDrawn(ctx *gin.Context) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	var req dto.MarkDrawnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
		})
		return
	}

	output, err := c.markDrawnUseCase.Execute(ctx.Request.Context(), period.MarkDrawnInput{
		PeriodID: periodID,
		MemberID: memberID,
	})
	if err != nil {
		c.handlePeriodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MembershipResponse{
		ID:       output.Membership.ID.String(),
		MemberID: output.Membership.MemberID.String(),
		Status:   string(output.Membership.Status),
		DrawnAt:  output.Membership.DrawnAt,
	})
}

// handlePeriodError handles period errors and returns appropriate HTTP responses.
func (c *PeriodController) handlePeriodError(ctx *gin.Context, err error) {
	var periodErr *domainerror.PeriodError
	if errors.As(err, &periodErr) {
		statusCode := c.getStatusCodeForPeriodError(periodErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: periodErr.Message,
			Code:  string(periodErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPeriodError maps period error codes to HTTP status codes.
func (c *PeriodController) getStatusCodeForPeriodError(code domainerror.PeriodErrorCode) int {
	switch code {
	case domainerror.ErrCodePeriodNotFound,
		domainerror.ErrCodeMembershipNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePeriodExists,
		domainerror.ErrCodeAlreadyDrawn:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPeriodRange,
		domainerror.ErrCodeInvalidPeriodDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
