package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/service/comment"
)

type commentService interface {
	CreateComment(ctx context.Context, input comment.CreateCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, input comment.ListCommentsInput) (domain.Page[domain.Comment], error)
	UpdateComment(ctx context.Context, input comment.UpdateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
}

// CommentHandler serves comments on todos.
type CommentHandler struct {
	svc   commentService
	pages Pagination
	log   *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, pages Pagination, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, pages: pages, log: logger.With("handler", "comment")}
}

type commentRequest struct {
	Content string `json:"content" validate:"required,max=10000"`
}

type commentResponse struct {
	ID         uuid.UUID `json:"id"`
	TargetType string    `json:"targetType"`
	TargetID   uuid.UUID `json:"targetId"`
	AuthorID   uuid.UUID `json:"authorId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Create handles POST /api/todos/{id}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	todoID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateComment(r.Context(), comment.CreateCommentInput{TodoID: todoID, Content: req.Content})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(*c))
}

// List handles GET /api/todos/{id}/comments?page=&per_page=.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	todoID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	page, perPage, err := h.pages.parse(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	comments, err := h.svc.ListComments(r.Context(), comment.ListCommentsInput{TodoID: todoID, Page: page, PerPage: perPage})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(comments, toCommentResponse))
}

// Update handles PATCH /api/comments/{id}. Only the author may edit, and
// only within the edit window.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateComment(r.Context(), comment.UpdateCommentInput{CommentID: id, Content: req.Content})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// Delete handles DELETE /api/comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCommentResponse(c domain.Comment) commentResponse {
	resp := commentResponse{
		ID:        c.ID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Target != nil {
		resp.TargetType = c.Target.TargetType().String()
		resp.TargetID = c.Target.TargetID()
	}
	return resp
}
