package rest

import "net/http"

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Todos    *TodoHandler
	Notes    *NoteHandler
	Comments *CommentHandler
	Metrics  http.Handler
}

// NewRouter registers every route on a ServeMux. Middleware is applied by
// the caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("POST /api/todos", h.Todos.Create)
	mux.HandleFunc("GET /api/todos/{id}", h.Todos.Get)
	mux.HandleFunc("PATCH /api/todos/{id}", h.Todos.Update)
	mux.HandleFunc("DELETE /api/todos/{id}", h.Todos.Delete)
	mux.HandleFunc("PUT /api/todos/{id}/status", h.Todos.SetStatus)
	mux.HandleFunc("PUT /api/todos/{id}/priority", h.Todos.SetPriority)
	mux.HandleFunc("GET /api/todos/{id}/history", h.Todos.History)

	mux.HandleFunc("POST /api/todos/{id}/comments", h.Comments.Create)
	mux.HandleFunc("GET /api/todos/{id}/comments", h.Comments.List)
	mux.HandleFunc("PATCH /api/comments/{id}", h.Comments.Update)
	mux.HandleFunc("DELETE /api/comments/{id}", h.Comments.Delete)

	mux.HandleFunc("POST /api/notes", h.Notes.Create)
	mux.HandleFunc("GET /api/notes/{id}", h.Notes.Get)
	mux.HandleFunc("PATCH /api/notes/{id}", h.Notes.Update)
	mux.HandleFunc("DELETE /api/notes/{id}", h.Notes.Delete)
	mux.HandleFunc("PUT /api/notes/{id}/pin", h.Notes.SetPinned)
	mux.HandleFunc("POST /api/notes/{id}/archive", h.Notes.Archive)
	mux.HandleFunc("POST /api/notes/{id}/unarchive", h.Notes.Unarchive)
	mux.HandleFunc("POST /api/notes/{id}/trash", h.Notes.Trash)
	mux.HandleFunc("POST /api/notes/{id}/untrash", h.Notes.Untrash)
	mux.HandleFunc("GET /api/notes/{id}/revisions", h.Notes.ListRevisions)
	mux.HandleFunc("GET /api/notes/{id}/revisions/{revisionId}", h.Notes.GetRevision)
	mux.HandleFunc("POST /api/notes/{id}/revisions/{revisionId}/restore", h.Notes.RestoreRevision)

	return mux
}
