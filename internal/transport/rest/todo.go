package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/service/todo"
)

type todoService interface {
	CreateTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	GetTodo(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, input todo.UpdateTodoInput) (*domain.Todo, error)
	SetStatus(ctx context.Context, input todo.SetStatusInput) (*domain.Todo, error)
	SetPriority(ctx context.Context, input todo.SetPriorityInput) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, todoID uuid.UUID) error
	ListHistory(ctx context.Context, input todo.ListHistoryInput) (domain.Page[domain.ChangeRecord], error)
}

// TodoHandler serves the todo endpoints and their change history.
type TodoHandler struct {
	svc   todoService
	pages Pagination
	log   *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, pages Pagination, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, pages: pages, log: logger.With("handler", "todo")}
}

type createTodoRequest struct {
	Title       string      `json:"title"       validate:"required,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=5000"`
	Priority    string      `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Status      string      `json:"status"      validate:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate     *time.Time  `json:"dueDate"`
	CategoryID  *uuid.UUID  `json:"categoryId"`
	TagIDs      []uuid.UUID `json:"tagIds"      validate:"max=20"`
}

// updateTodoRequest is a JSON merge patch: absent fields are left alone and
// null clears the nullable ones.
type updateTodoRequest struct {
	Title       *string               `json:"title" validate:"omitempty,max=200"`
	Description nullable[string]      `json:"description"`
	Completed   *bool                 `json:"completed"`
	Priority    *string               `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status      *string               `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate     nullable[time.Time]   `json:"dueDate"`
	CategoryID  nullable[uuid.UUID]   `json:"categoryId"`
	TagIDs      nullable[[]uuid.UUID] `json:"tagIds"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

type setPriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=low medium high urgent"`
}

type todoResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Completed   bool        `json:"completed"`
	Priority    string      `json:"priority"`
	Status      string      `json:"status"`
	DueDate     *time.Time  `json:"dueDate"`
	CategoryID  *uuid.UUID  `json:"categoryId"`
	TagIDs      []uuid.UUID `json:"tagIds"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type changeRecordResponse struct {
	ID           uuid.UUID           `json:"id"`
	TodoID       uuid.UUID           `json:"todoId"`
	ActorID      uuid.UUID           `json:"actorId"`
	Action       string              `json:"action"`
	FieldChanges domain.FieldChanges `json:"fieldChanges"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.CreateTodo(r.Context(), todo.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TodoPriority(req.Priority),
		Status:      domain.TodoStatus(req.Status),
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTodoResponse(*t))
}

// Get handles GET /api/todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(*t))
}

// Update handles PATCH /api/todos/{id}.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := todo.UpdateTodoInput{
		TodoID:        id,
		Title:         req.Title,
		Completed:     req.Completed,
		DueDate:       req.DueDate.Value,
		ClearDueDate:  req.DueDate.cleared(),
		CategoryID:    req.CategoryID.Value,
		ClearCategory: req.CategoryID.cleared(),
	}
	if req.Description.Set {
		desc := ""
		if req.Description.Value != nil {
			desc = *req.Description.Value
		}
		input.Description = &desc
	}
	if req.Priority != nil {
		p := domain.TodoPriority(*req.Priority)
		input.Priority = &p
	}
	if req.Status != nil {
		s := domain.TodoStatus(*req.Status)
		input.Status = &s
	}
	if req.TagIDs.Set {
		tags := []uuid.UUID{}
		if req.TagIDs.Value != nil {
			tags = *req.TagIDs.Value
		}
		input.TagIDs = &tags
	}

	t, err := h.svc.UpdateTodo(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(*t))
}

// SetStatus handles PUT /api/todos/{id}/status.
func (h *TodoHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req setStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.SetStatus(r.Context(), todo.SetStatusInput{TodoID: id, Status: domain.TodoStatus(req.Status)})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(*t))
}

// SetPriority handles PUT /api/todos/{id}/priority.
func (h *TodoHandler) SetPriority(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req setPriorityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.SetPriority(r.Context(), todo.SetPriorityInput{TodoID: id, Priority: domain.TodoPriority(req.Priority)})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(*t))
}

// Delete handles DELETE /api/todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/todos/{id}/history?page=&per_page=.
func (h *TodoHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	page, perPage, err := h.pages.parse(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	records, err := h.svc.ListHistory(r.Context(), todo.ListHistoryInput{TodoID: id, Page: page, PerPage: perPage})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(records, toChangeRecordResponse))
}

func toTodoResponse(t domain.Todo) todoResponse {
	tags := t.TagIDs
	if tags == nil {
		tags = []uuid.UUID{}
	}
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		DueDate:     t.DueDate,
		CategoryID:  t.CategoryID,
		TagIDs:      tags,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toChangeRecordResponse(rec domain.ChangeRecord) changeRecordResponse {
	return changeRecordResponse{
		ID:           rec.ID,
		TodoID:       rec.EntityID,
		ActorID:      rec.ActorID,
		Action:       rec.Action.String(),
		FieldChanges: rec.FieldChanges,
		CreatedAt:    rec.CreatedAt,
	}
}
