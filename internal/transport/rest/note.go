package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/service/note"
)

type noteService interface {
	CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	GetNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	SetPinned(ctx context.Context, noteID uuid.UUID, pinned bool) (*domain.Note, error)
	Archive(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	Unarchive(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	Trash(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	Untrash(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
	ListRevisions(ctx context.Context, input note.ListRevisionsInput) (domain.Page[domain.Revision], error)
	GetRevision(ctx context.Context, noteID, revisionID uuid.UUID) (*domain.Revision, error)
	RestoreRevision(ctx context.Context, noteID, revisionID uuid.UUID) (*domain.Note, error)
}

// NoteHandler serves the note endpoints, including revision history and restore.
type NoteHandler struct {
	svc   noteService
	pages Pagination
	log   *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, pages Pagination, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, pages: pages, log: logger.With("handler", "note")}
}

type createNoteRequest struct {
	Title string `json:"title" validate:"max=200"`
	Body  string `json:"body"  validate:"max=100000"`
}

type updateNoteRequest struct {
	Title *string `json:"title" validate:"omitempty,max=200"`
	Body  *string `json:"body"  validate:"omitempty,max=100000"`
}

type setPinnedRequest struct {
	Pinned *bool `json:"pinned" validate:"required"`
}

type noteResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	Pinned       bool       `json:"pinned"`
	ArchivedAt   *time.Time `json:"archivedAt"`
	TrashedAt    *time.Time `json:"trashedAt"`
	LastEditedAt time.Time  `json:"lastEditedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type revisionResponse struct {
	ID        uuid.UUID `json:"id"`
	NoteID    uuid.UUID `json:"noteId"`
	ActorID   uuid.UUID `json:"actorId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.CreateNote(r.Context(), note.CreateNoteInput{Title: req.Title, Body: req.Body})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(*n))
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, h.svc.GetNote)
}

// Update handles PATCH /api/notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.UpdateNote(r.Context(), note.UpdateNoteInput{NoteID: id, Title: req.Title, Body: req.Body})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(*n))
}

// SetPinned handles PUT /api/notes/{id}/pin.
func (h *NoteHandler) SetPinned(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req setPinnedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.SetPinned(r.Context(), id, *req.Pinned)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(*n))
}

// Archive handles POST /api/notes/{id}/archive.
func (h *NoteHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, h.svc.Archive)
}

// Unarchive handles POST /api/notes/{id}/unarchive.
func (h *NoteHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, h.svc.Unarchive)
}

// Trash handles POST /api/notes/{id}/trash.
func (h *NoteHandler) Trash(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, h.svc.Trash)
}

// Untrash handles POST /api/notes/{id}/untrash.
func (h *NoteHandler) Untrash(w http.ResponseWriter, r *http.Request) {
	h.withNote(w, r, h.svc.Untrash)
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListRevisions handles GET /api/notes/{id}/revisions?page=&per_page=.
func (h *NoteHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
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

	revisions, err := h.svc.ListRevisions(r.Context(), note.ListRevisionsInput{NoteID: id, Page: page, PerPage: perPage})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(revisions, toRevisionResponse))
}

// GetRevision handles GET /api/notes/{id}/revisions/{revisionId}.
func (h *NoteHandler) GetRevision(w http.ResponseWriter, r *http.Request) {
	noteID, revisionID, err := revisionPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rev, err := h.svc.GetRevision(r.Context(), noteID, revisionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRevisionResponse(*rev))
}

// RestoreRevision handles POST /api/notes/{id}/revisions/{revisionId}/restore.
// The note's content before the restore becomes a new revision.
func (h *NoteHandler) RestoreRevision(w http.ResponseWriter, r *http.Request) {
	noteID, revisionID, err := revisionPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.RestoreRevision(r.Context(), noteID, revisionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(*n))
}

// withNote runs a body-less operation on the note named in the path.
func (h *NoteHandler) withNote(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := op(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(*n))
}

func revisionPath(r *http.Request) (noteID, revisionID uuid.UUID, err error) {
	if noteID, err = pathUUID(r, "id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if revisionID, err = pathUUID(r, "revisionId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return noteID, revisionID, nil
}

func toNoteResponse(n domain.Note) noteResponse {
	return noteResponse{
		ID:           n.ID,
		Title:        n.Title,
		Body:         n.Body,
		Pinned:       n.Pinned,
		ArchivedAt:   n.ArchivedAt,
		TrashedAt:    n.TrashedAt,
		LastEditedAt: n.LastEditedAt,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func toRevisionResponse(rev domain.Revision) revisionResponse {
	return revisionResponse{
		ID:        rev.ID,
		NoteID:    rev.NoteID,
		ActorID:   rev.ActorID,
		Title:     rev.Title,
		Body:      rev.Body,
		CreatedAt: rev.CreatedAt,
	}
}
