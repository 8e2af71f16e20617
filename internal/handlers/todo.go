package handlers

import (
	"context"
	"errors"
	"net/http"

	dom "github.com/ikedadada/start-ddd-and-clean-architecture/internal/domain"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/dto"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/usecase"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type (
	TodoCreator interface {
		Execute(ctx context.Context, in usecase.CreateTodoInput) (dom.Todo, error)
	}
	TodoGetter interface {
		Execute(ctx context.Context, id uuid.UUID) (dom.Todo, error)
	}
	TodoLister interface {
		Execute(ctx context.Context) ([]dom.Todo, error)
	}
	TodoUpdater interface {
		Execute(ctx context.Context, in usecase.UpdateTodoInput) (dom.Todo, error)
	}
	// TodoMarker covers both completion transitions.
	TodoMarker interface {
		Execute(ctx context.Context, id uuid.UUID) (dom.Todo, error)
	}
	TodoDeleter interface {
		Execute(ctx context.Context, id uuid.UUID) error
	}
)

// TodoUsecases bundles the usecases TodoHandler dispatches to.
type TodoUsecases struct {
	Create         TodoCreator
	Get            TodoGetter
	List           TodoLister
	Update         TodoUpdater
	MarkCompleted  TodoMarker
	MarkIncomplete TodoMarker
	Delete         TodoDeleter
}

type TodoHandler struct {
	uc     TodoUsecases
	logger *log.Logger
}

func NewTodoHandler(uc TodoUsecases, logger *log.Logger) *TodoHandler {
	return &TodoHandler{uc: uc, logger: logger}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.TodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.uc.Create.Execute(c.Request.Context(), usecase.CreateTodoInput{
		Title:       req.NormalizedTitle(),
		Description: req.NormalizedDescription(),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(t))
}

// List godoc
// @Summary      List all todos
// @Tags         todos
// @Produce      json
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.uc.List.Execute(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Todos: todosToResponses(list)})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID (UUID)"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Update godoc
// @Summary      Replace title and description of a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Todo ID (UUID)"
// @Param        body  body      dto.TodoRequest  true  "New title and description"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	t, err := h.uc.Update.Execute(c.Request.Context(), usecase.UpdateTodoInput{
		ID:          id,
		Title:       req.NormalizedTitle(),
		Description: req.NormalizedDescription(),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Complete godoc
// @Summary      Mark a todo as completed
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID (UUID)"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id}/complete [put]
func (h *TodoHandler) Complete(c *gin.Context) {
	h.mark(c, h.uc.MarkCompleted)
}

// Uncomplete godoc
// @Summary      Mark a completed todo as incomplete
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID (UUID)"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id}/uncomplete [put]
func (h *TodoHandler) Uncomplete(c *gin.Context) {
	h.mark(c, h.uc.MarkIncomplete)
}

func (h *TodoHandler) mark(c *gin.Context, m TodoMarker) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := m.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Param        id   path  string  true  "Todo ID (UUID)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError is the only place domain and repository errors become HTTP statuses.
func (h *TodoHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dom.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "todo not found"})
	case errors.Is(err, dom.ErrAlreadyCompleted), errors.Is(err, dom.ErrNotCompleted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:          t.ID().String(),
		Title:       t.Title(),
		Description: t.Description(),
		Completed:   t.Completed(),
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
