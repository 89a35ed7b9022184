package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/dto"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/middleware"
	"github.com/rukun-warga/backend/internal/integration/export"
)

// RecapController handles recap matrix endpoints for the arisan and
// dues ledger funds.
type RecapController struct {
	getUseCase    *recap.GetRecapUseCase
	saveUseCase   *recap.SaveRecapUseCase
	exportUseCase *recap.ExportRecapUseCase
	exportSink    adapter.ExportSink
}

// NewRecapController creates a new recap controller instance.
func NewRecapController(
	getUseCase *recap.GetRecapUseCase,
	saveUseCase *recap.SaveRecapUseCase,
	exportUseCase *recap.ExportRecapUseCase,
	exportSink adapter.ExportSink,
) *RecapController {
	return &RecapController{
		getUseCase:    getUseCase,
		saveUseCase:   saveUseCase,
		exportUseCase: exportUseCase,
		exportSink:    exportSink,
	}
}

// Get handles GET /recap/:fund requests.
func (c *RecapController) Get(ctx *gin.Context) {
	input, ok := c.parseRecapQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleRecapError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecapResponse(output, *input))
}

// Save handles POST /recap/:fund requests.
func (c *RecapController) Save(ctx *gin.Context) {
	var req dto.SaveRecapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	periodID, err := uuid.Parse(req.PeriodID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period ID format",
		})
		return
	}

	input := recap.SaveRecapInput{
		Fund:     entity.LedgerFund(ctx.Param("fund")),
		PeriodID: periodID,
		Items:    make([]recap.SaveRecapItem, 0, len(req.Items)),
	}
	if adminID, ok := middleware.GetAdminIDFromContext(ctx); ok {
		input.AdminID = &adminID
	}

	for _, item := range req.Items {
		memberID, err := uuid.Parse(item.MemberID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid member ID format: " + item.MemberID,
			})
			return
		}
		saveItem := recap.SaveRecapItem{
			MemberID: memberID,
			Date:     item.Date,
			Status:   entity.PaymentStatus(item.Status),
		}
		if item.Amount != nil {
			amount := decimal.NewFromFloat(*item.Amount)
			saveItem.Amount = &amount
		}
		input.Items = append(input.Items, saveItem)
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecapError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SaveRecapResponse{Saved: output.Saved})
}

// Export handles GET /recap/:fund/export requests. The format query
// parameter selects csv (default) or xlsx; save=true stores the
// artifact on the server instead of streaming it.
func (c *RecapController) Export(ctx *gin.Context) {
	input, ok := c.parseRecapQuery(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleRecapError(ctx, err)
		return
	}

	filename := fmt.Sprintf("rekap-%s-%s", input.Fund, output.Period.StartDate)
	var render func(io.Writer) error
	var contentType string
	switch ctx.DefaultQuery("format", "csv") {
	case "xlsx":
		filename += ".xlsx"
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		render = func(w io.Writer) error { return export.WriteRecapWorkbook(w, output) }
	case "csv":
		filename += ".csv"
		contentType = "text/csv; charset=utf-8"
		render = func(w io.Writer) error { return export.WriteRecapCSV(w, output) }
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown export format, expected csv or xlsx",
		})
		return
	}

	if ctx.Query("save") == "true" {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			c.handleRecapError(ctx, domainerror.NewRecapError(domainerror.ErrCodeExportFailed, "failed to render export", err))
			return
		}
		path, err := c.exportSink.Store(ctx.Request.Context(), filename, contentType, &buf)
		if err != nil {
			c.handleRecapError(ctx, domainerror.NewRecapError(domainerror.ErrCodeExportFailed, "failed to store export", err))
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"path": path})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Header("Content-Type", contentType)
	if err := render(ctx.Writer); err != nil {
		c.handleRecapError(ctx, domainerror.NewRecapError(domainerror.ErrCodeExportFailed, "failed to render export", err))
	}
}

// parseRecapQuery builds the shared recap input from path and query
// parameters. It writes the error response itself when parsing fails.
func (c *RecapController) parseRecapQuery(ctx *gin.Context) (*recap.GetRecapInput, bool) {
	input := recap.GetRecapInput{
		Fund:     entity.LedgerFund(ctx.Param("fund")),
		Search:   ctx.Query("search"),
		Unit:     ctx.Query("unit"),
		FromDate: ctx.Query("from"),
		ToDate:   ctx.Query("to"),
	}

	if periodIDStr := ctx.Query("period_id"); periodIDStr != "" {
		periodID, err := uuid.Parse(periodIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid period ID format",
			})
			return nil, false
		}
		input.PeriodID = &periodID
	}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
			})
			return nil, false
		}
		input.Year = &year
	}

	input.RowAmountMin = parseDecimalQuery(ctx, "amount_min")
	input.RowAmountMax = parseDecimalQuery(ctx, "amount_max")
	input.TotalAmountMin = parseDecimalQuery(ctx, "total_min")
	input.TotalAmountMax = parseDecimalQuery(ctx, "total_max")

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if perPageStr := ctx.Query("per_page"); perPageStr != "" {
		if perPage, err := strconv.Atoi(perPageStr); err == nil {
			input.PerPage = perPage
		}
	}

	return &input, true
}

// parseDecimalQuery parses an optional decimal query parameter,
// ignoring malformed values.
func parseDecimalQuery(ctx *gin.Context, name string) *decimal.Decimal {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &value
}

// handleRecapError handles recap errors and returns appropriate HTTP responses.
func (c *RecapController) handleRecapError(ctx *gin.Context, err error) {
	var recapErr *domainerror.RecapError
	if errors.As(err, &recapErr) {
		statusCode := c.getStatusCodeForRecapError(recapErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recapErr.Message,
			Code:  string(recapErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecapError maps recap error codes to HTTP status codes.
func (c *RecapController) getStatusCodeForRecapError(code domainerror.RecapErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecapPeriodNotFound,
		domainerror.ErrCodeNoPeriodAvailable:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidLedgerFund,
		domainerror.ErrCodeInvalidRecapDate,
		domainerror.ErrCodeInvalidPaymentStatus,
		domainerror.ErrCodeEmptyUpsertBatch,
		domainerror.ErrCodeUnknownRecapMember:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
