package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurrence"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase     *transaction.CreateTransactionUseCase
	listUseCase       *transaction.ListTransactionsUseCase
	getUseCase        *transaction.GetTransactionUseCase
	updateUseCase     *transaction.UpdateTransactionUseCase
	updateTagsUseCase *transaction.UpdateTagsUseCase
	deleteUseCase     *transaction.DeleteTransactionUseCase
	classifyUseCase   *recurrence.ClassifyUseCase
	now               func() time.Time
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	updateTagsUseCase *transaction.UpdateTagsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	classifyUseCase *recurrence.ClassifyUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		updateTagsUseCase: updateTagsUseCase,
		deleteUseCase:     deleteUseCase,
		classifyUseCase:   classifyUseCase,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, codeInvalidBody, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseOptionalDate(req.Date, false)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}
	endDate, err := parseOptionalDate(req.RecurrenceEndDate, false)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:            userID,
		Type:              entity.TransactionType(req.Type),
		Amount:            req.Amount,
		Category:          req.Category,
		Date:              date,
		Tags:              req.Tags,
		Notes:             req.Notes,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: entity.RecurrencePattern(req.RecurrencePattern),
		RecurrenceEndDate: endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.CreateTransactionResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
	}
	if output.AllocationError != nil {
		response.AllocationError = "Transaction recorded, but goal allocation failed"
	}

	ctx.JSON(http.StatusCreated, dto.Response{
		Message: "Transaction added successfully",
		Data:    response,
	})
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	c.list(ctx, nil)
}

// ListRecurring handles GET /transactions/recurring requests.
func (c *TransactionController) ListRecurring(ctx *gin.Context) {
	recurring := true
	c.list(ctx, &recurring)
}

func (c *TransactionController) list(ctx *gin.Context, recurring *bool) {
	if _, ok := requireUser(ctx); !ok {
		return
	}

	input, err := listInput(ctx)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}
	if recurring != nil {
		input.IsRecurring = recurring
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Transactions retrieved successfully",
		Data:    dto.ToTransactionListResponse(output),
	})
}

func listInput(ctx *gin.Context) (transaction.ListTransactionsInput, error) {
	var input transaction.ListTransactionsInput

	scope, err := callerScope(ctx)
	if err != nil {
		return input, err
	}
	order, err := queryOrder(ctx)
	if err != nil {
		return input, err
	}
	recurring, err := queryBool(ctx, "recurring")
	if err != nil {
		return input, err
	}
	start, err := queryDate(ctx, "start_date", false)
	if err != nil {
		return input, err
	}
	end, err := queryDate(ctx, "end_date", true)
	if err != nil {
		return input, err
	}

	input = transaction.ListTransactionsInput{
		Scope:       scope,
		Tags:        queryTags(ctx),
		IsRecurring: recurring,
		StartDate:   start,
		EndDate:     end,
		Category:    queryString(ctx, "category"),
		Order:       order,
	}
	if raw := queryString(ctx, "type"); raw != nil {
		t := entity.TransactionType(*raw)
		input.Type = &t
	}
	return input, nil
}

// Notifications handles GET /transactions/notifications requests.
func (c *TransactionController) Notifications(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.classifyUseCase.Execute(ctx.Request.Context(), recurrence.ClassifyInput{
		Scope: transaction.Scope{UserID: userID},
		Now:   c.now(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Recurring transaction notifications retrieved successfully",
		Data:    dto.ToNotificationsResponse(output),
	})
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: id,
		UserID:        userID,
		IsAdmin:       middleware.GetIsAdminFromContext(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Transaction retrieved successfully",
		Data:    dto.ToTransactionResponse(output.Transaction),
	})
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, codeInvalidBody, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseOptionalDate(req.Date, false)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}
	endDate, err := parseOptionalDate(req.RecurrenceEndDate, false)
	if err != nil {
		badRequest(ctx, codeInvalidParameter, err.Error())
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID:     id,
		UserID:            userID,
		IsAdmin:           middleware.GetIsAdminFromContext(ctx),
		Amount:            req.Amount,
		Category:          req.Category,
		Date:              date,
		Tags:              req.Tags,
		Notes:             req.Notes,
		IsRecurring:       req.IsRecurring,
		RecurrenceEndDate: endDate,
		ClearEndDate:      req.ClearEndDate,
	}
	if req.Type != nil {
		t := entity.TransactionType(*req.Type)
		input.Type = &t
	}
	if req.RecurrencePattern != nil {
		p := entity.RecurrencePattern(*req.RecurrencePattern)
		input.RecurrencePattern = &p
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Transaction updated successfully",
		Data:    dto.ToTransactionResponse(output.Transaction),
	})
}

// UpdateTags handles PUT /transactions/:id/tags requests.
func (c *TransactionController) UpdateTags(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}

	var req dto.UpdateTagsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, codeInvalidBody, "Invalid request body: "+err.Error())
		return
	}

	output, err := c.updateTagsUseCase.Execute(ctx.Request.Context(), transaction.UpdateTagsInput{
		TransactionID: id,
		UserID:        userID,
		IsAdmin:       middleware.GetIsAdminFromContext(ctx),
		Tags:          req.Tags,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Tags updated successfully",
		Data:    dto.ToTransactionResponse(output.Transaction),
	})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: id,
		UserID:        userID,
		IsAdmin:       middleware.GetIsAdminFromContext(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Transaction deleted successfully",
		Data:    dto.ToTransactionResponse(output.Transaction),
	})
}
