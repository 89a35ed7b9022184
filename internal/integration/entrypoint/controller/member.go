package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/usecase/member"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/dto"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/middleware"
)

// MemberController handles roster endpoints.
type MemberController struct {
	listUseCase   *member.ListMembersUseCase
	createUseCase *member.CreateMemberUseCase
	updateUseCase *member.UpdateMemberUseCase
	deleteUseCase *member.DeleteMemberUseCase
}

// NewMemberController creates a new member controller instance.
func NewMemberController(
	listUseCase *member.ListMembersUseCase,
	createUseCase *member.CreateMemberUseCase,
	updateUseCase *member.UpdateMemberUseCase,
	deleteUseCase *member.DeleteMemberUseCase,
) *MemberController {
	return &MemberController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /members requests.
func (c *MemberController) List(ctx *gin.Context) {
	input := member.ListMembersInput{
		Unit:   ctx.Query("unit"),
		Search: ctx.Query("search"),
	}

	if roleStr := ctx.Query("role"); roleStr != "" {
		role := entity.MemberRole(roleStr)
		input.Role = &role
	}

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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberListResponse(output.Result))
}

// Create handles POST /members requests.
func (c *MemberController) Create(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := member.CreateMemberInput{
		Name:      req.Name,
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Unit:      req.Unit,
		Category:  entity.MemberCategory(req.Category),
	}
	if req.Role != nil {
		role := entity.MemberRole(*req.Role)
		input.Role = &role
	}
	if adminID, ok := middleware.GetAdminIDFromContext(ctx); ok {
		input.AdminID = &adminID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMemberResponse(output.Member))
}

// Update handles PATCH /members/:id requests.
func (c *MemberController) Update(ctx *gin.Context) {
	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
		})
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := member.UpdateMemberInput{
		ID:        memberID,
		Name:      req.Name,
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Unit:      req.Unit,
	}
	if req.Role != nil {
		role := entity.MemberRole(*req.Role)
		input.Role = &role
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberResponse(output.Member))
}

// Delete handles DELETE /members/:id requests.
func (c *MemberController) Delete(ctx *gin.Context) {
	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), memberID); err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleMemberError handles member errors and returns appropriate HTTP responses.
func (c *MemberController) handleMemberError(ctx *gin.Context, err error) {
	var memberErr *domainerror.MemberError
	if errors.As(err, &memberErr) {
		statusCode := c.getStatusCodeForMemberError(memberErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: memberErr.Message,
			Code:  string(memberErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMemberError maps member error codes to HTTP status codes.
func (c *MemberController) getStatusCodeForMemberError(code domainerror.MemberErrorCode) int {
	switch code {
	case domainerror.ErrCodeMemberNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidMemberCategory,
		domainerror.ErrCodeInvalidMemberRole,
		domainerror.ErrCodeMemberNameRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
