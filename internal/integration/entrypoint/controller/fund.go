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
	"github.com/rukun-warga/backend/internal/application/usecase/fundreport"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/dto"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/middleware"
	"github.com/rukun-warga/backend/internal/integration/export"
)

// FundController handles cash fund transaction endpoints.
type FundController struct {
	listUseCase    *fundreport.ListTransactionsUseCase
	createUseCase  *fundreport.CreateTransactionUseCase
	updateUseCase  *fundreport.UpdateTransactionUseCase
	deleteUseCase  *fundreport.DeleteTransactionUseCase
	summaryUseCase *fundreport.GetSummaryUseCase
	exportUseCase  *fundreport.ExportTransactionsUseCase
	exportSink     adapter.ExportSink
}

// NewFundController creates a new fund controller instance.
func NewFundController(
	listUseCase *fundreport.ListTransactionsUseCase,
	createUseCase *fundreport.CreateTransactionUseCase,
	updateUseCase *fundreport.UpdateTransactionUseCase,
	deleteUseCase *fundreport.DeleteTransactionUseCase,
	summaryUseCase *fundreport.GetSummaryUseCase,
	exportUseCase *fundreport.ExportTransactionsUseCase,
	exportSink adapter.ExportSink,
) *FundController {
	return &FundController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		exportUseCase:  exportUseCase,
		exportSink:     exportSink,
	}
}

// cashFundFromParam maps the URL segment to a cash fund. The
// night-watch fund uses a hyphen in the URL.
func cashFundFromParam(param string) entity.CashFund {
	if param == "night-watch" {
		return entity.CashFundNightWatch
	}
	return entity.CashFund(param)
}

// List handles GET /funds/:fund/transactions requests.
func (c *FundController) List(ctx *gin.Context) {
	input, ok := c.parseListQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleFundError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFundTransactionListResponse(output))
}

// Create handles POST /funds/:fund/transactions requests.
func (c *FundController) Create(ctx *gin.Context) {
	var req dto.CreateFundTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := fundreport.CreateTransactionInput{
		Fund:   cashFundFromParam(ctx.Param("fund")),
		Type:   entity.FlowType(req.Type),
		Amount: decimal.NewFromFloat(req.Amount),
		Memo:   req.Memo,
		Date:   req.Date,
	}
	if adminID, ok := middleware.GetAdminIDFromContext(ctx); ok {
		input.AdminID = &adminID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFundError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFundTransactionResponse(output.Transaction))
}

// Update handles PATCH /funds/:fund/transactions/:id requests.
func (c *FundController) Update(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateFundTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := fundreport.UpdateTransactionInput{
		Fund: cashFundFromParam(ctx.Param("fund")),
		ID:   transactionID,
		Memo: req.Memo,
		Date: req.Date,
	}
	if req.Type != nil {
		flowType := entity.FlowType(*req.Type)
		input.Type = &flowType
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if adminID, ok := middleware.GetAdminIDFromContext(ctx); ok {
		input.AdminID = &adminID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFundError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFundTransactionResponse(output.Transaction))
}

// Delete handles DELETE /funds/:fund/transactions/:id requests.
func (c *FundController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), fundreport.DeleteTransactionInput{
		Fund: cashFundFromParam(ctx.Param("fund")),
		ID:   transactionID,
	})
	if err != nil {
		c.handleFundError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /funds/:fund/summary requests.
func (c *FundController) Summary(ctx *gin.Context) {
	input := fundreport.GetSummaryInput{
		Fund: cashFundFromParam(ctx.Param("fund")),
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
			})
			return
		}
		input.Year = &year
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFundError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FundSummaryResponse{
		Fund:         string(input.Fund),
		TotalInflow:  output.Summary.TotalInflow.String(),
		TotalOutflow: output.Summary.TotalOutflow.String(),
		Balance:      output.Summary.Balance.String(),
	})
}

// Export handles GET /funds/:fund/export requests. The format query
// parameter selects csv (default) or xlsx; save=true stores the
// artifact on the server instead of streaming it.
func (c *FundController) Export(ctx *gin.Context) {
	input, ok := c.parseListQuery(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleFundError(ctx, err)
		return
	}

	filename := fmt.Sprintf("kas-%s", ctx.Param("fund"))
	var render func(io.Writer) error
	var contentType string
	switch ctx.DefaultQuery("format", "csv") {
	case "xlsx":
		filename += ".xlsx"
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		render = func(w io.Writer) error { return export.WriteFundWorkbook(w, output) }
	case "csv":
		filename += ".csv"
		contentType = "text/csv; charset=utf-8"
		render = func(w io.Writer) error { return export.WriteFundCSV(w, output) }
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown export format, expected csv or xlsx",
		})
		return
	}

	if ctx.Query("save") == "true" {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			c.handleFundError(ctx, domainerror.NewFundError(domainerror.ErrCodeFundExportFailed, "failed to render export", err))
			return
		}
		path, err := c.exportSink.Store(ctx.Request.Context(), filename, contentType, &buf)
		if err != nil {
			c.handleFundError(ctx, domainerror.NewFundError(domainerror.ErrCodeFundExportFailed, "failed to store export", err))
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"path": path})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Header("Content-Type", contentType)
	if err := render(ctx.Writer); err != nil {
		c.handleFundError(ctx, domainerror.NewFundError(domainerror.ErrCodeFundExportFailed, "failed to render export", err))
	}
}

// parseListQuery builds the shared report input from path and query
// parameters. It writes the error response itself when parsing fails.
func (c *FundController) parseListQuery(ctx *gin.Context) (*fundreport.ListTransactionsInput, bool) {
	input := fundreport.ListTransactionsInput{
		Fund:     cashFundFromParam(ctx.Param("fund")),
		FromDate: ctx.Query("from"),
		ToDate:   ctx.Query("to"),
		Date:     ctx.Query("date"),
		Search:   ctx.Query("search"),
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

	if typeStr := ctx.Query("type"); typeStr != "" {
		flowType := entity.FlowType(typeStr)
		input.Type = &flowType
	}

	input.AmountMin = parseDecimalQuery(ctx, "amount_min")
	input.AmountMax = parseDecimalQuery(ctx, "amount_max")

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

// handleFundError handles fund errors and returns appropriate HTTP responses.
func (c *FundController) handleFundError(ctx *gin.Context, err error) {
	var fundErr *domainerror.FundError
	if errors.As(err, &fundErr) {
		statusCode := c.getStatusCodeForFundError(fundErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: fundErr.Message,
			Code:  string(fundErr.Code),
		})
		return
	}

	// Resolving the default window can also surface recap errors.
	var recapErr *domainerror.RecapError
	if errors.As(err, &recapErr) {
		statusCode := http.StatusInternalServerError
		switch recapErr.Code {
		case domainerror.ErrCodeRecapPeriodNotFound, domainerror.ErrCodeNoPeriodAvailable:
			statusCode = http.StatusNotFound
		}
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

// getStatusCodeForFundError maps fund error codes to HTTP status codes.
func (c *FundController) getStatusCodeForFundError(code domainerror.FundErrorCode) int {
	switch code {
	case domainerror.ErrCodeFundTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCashFund,
		domainerror.ErrCodeInvalidFlowType,
		domainerror.ErrCodeInvalidFundAmount,
		domainerror.ErrCodeInvalidFundDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
