package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase     *goal.ListGoalsUseCase
	createUseCase   *goal.CreateGoalUseCase
	getUseCase      *goal.GetGoalUseCase
	updateUseCase   *goal.UpdateGoalUseCase
	deleteUseCase   *goal.DeleteGoalUseCase
	progressUseCase *goal.TrackProgressUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	progressUseCase *goal.TrackProgressUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		progressUseCase: progressUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Goals retrieved successfully",
		Data:    dto.ToGoalResponses(output.Goals),
	})
}

// Progress handles GET /goals/progress requests.
func (c *GoalController) Progress(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), goal.TrackProgressInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Savings progress retrieved successfully",
		Data:    dto.ToGoalProgressResponses(output),
	})
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, codeInvalidBody, "Invalid request body: "+err.Error())
		return
	}
	deadline, err := parseOptionalDate(req.Deadline, true)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:               userID,
		Title:                req.Title,
		TargetAmount:         req.TargetAmount,
		CurrentAmount:        req.CurrentAmount,
		Deadline:             deadline,
		AutoAllocate:         req.AutoAllocate,
		AllocationPercentage: req.AllocationPercentage,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Response{
		Message: "Goal created successfully",
		Data:    dto.ToGoalResponse(output.Goal),
	})
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "goal")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Goal retrieved successfully",
		Data:    dto.ToGoalResponse(output.Goal),
	})
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "goal")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, codeInvalidBody, "Invalid request body: "+err.Error())
		return
	}
	deadline, err := parseOptionalDate(req.Deadline, true)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:               goalID,
		UserID:               userID,
		Title:                req.Title,
		TargetAmount:         req.TargetAmount,
		CurrentAmount:        req.CurrentAmount,
		Deadline:             deadline,
		ClearDeadline:        req.ClearDeadline,
		AutoAllocate:         req.AutoAllocate,
		AllocationPercentage: req.AllocationPercentage,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Goal updated successfully",
		Data:    dto.ToGoalResponse(output.Goal),
	})
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "goal")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{Message: "Goal deleted successfully"})
}
