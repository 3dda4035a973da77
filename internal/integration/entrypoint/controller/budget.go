package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase      *budget.CreateBudgetUseCase
	listUseCase        *budget.ListBudgetsUseCase
	getUseCase         *budget.GetBudgetUseCase
	updateUseCase      *budget.UpdateBudgetUseCase
	deleteUseCase      *budget.DeleteBudgetUseCase
	checkStatusUseCase *budget.CheckStatusUseCase
	recommendUseCase   *budget.RecommendUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	getUseCase *budget.GetBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	checkStatusUseCase *budget.CheckStatusUseCase,
	recommendUseCase *budget.RecommendUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		getUseCase:         getUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		checkStatusUseCase: checkStatusUseCase,
		recommendUseCase:   recommendUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, codeInvalidBody, "Invalid request body: "+err.Error())
		return
	}
	start, err := parseOptionalDate(req.StartDate, false)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}
	end, err := parseOptionalDate(req.EndDate, true)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:    userID,
		Category:  req.Category,
		Amount:    req.Amount,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Response{
		Message: "Budget created successfully",
		Data:    dto.ToBudgetResponse(output.Budget),
	})
}

// List handles GET /budgets requests. Admins may pass all=true.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	all, err := queryBool(ctx, "all")
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID:   userID,
		IsAdmin:  middleware.GetIsAdminFromContext(ctx),
		AllUsers: all != nil && *all,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Budgets retrieved successfully",
		Data:    dto.ToBudgetResponses(output.Budgets),
	})
}

// Status handles GET /budgets/status requests.
func (c *BudgetController) Status(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.checkStatusUseCase.Execute(ctx.Request.Context(), budget.CheckStatusInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Budget status retrieved successfully",
		Data:    dto.ToCheckStatusResponse(output),
	})
}

// Recommendations handles GET /budgets/recommendations requests.
func (c *BudgetController) Recommendations(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.recommendUseCase.Execute(ctx.Request.Context(), budget.RecommendInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Budget recommendations retrieved successfully",
		Data:    dto.ToRecommendationResponses(output),
	})
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		BudgetID: id,
		UserID:   userID,
		IsAdmin:  middleware.GetIsAdminFromContext(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Budget retrieved successfully",
		Data:    dto.ToBudgetStatusResponse(output),
	})
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, codeInvalidBody, "Invalid request body: "+err.Error())
		return
	}
	start, err := parseOptionalDate(req.StartDate, false)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}
	end, err := parseOptionalDate(req.EndDate, true)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		BudgetID:      id,
		UserID:        userID,
		IsAdmin:       middleware.GetIsAdminFromContext(ctx),
		Category:      req.Category,
		ClearCategory: req.ClearCategory,
		Amount:        req.Amount,
		StartDate:     start,
		EndDate:       end,
		ClearEndDate:  req.ClearEndDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Budget updated successfully",
		Data:    dto.ToBudgetResponse(output.Budget),
	})
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: id,
		UserID:   userID,
		IsAdmin:  middleware.GetIsAdminFromContext(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{Message: "Budget deleted successfully"})
}
