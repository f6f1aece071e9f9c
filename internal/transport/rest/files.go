package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wosa-backend/internal/domain"
	"github.com/heartmarshall/wosa-backend/internal/service/ingest"
)

// ingestService defines the minimal interface needed by FileHandler.
type ingestService interface {
	UploadDocument(ctx context.Context, input ingest.UploadInput) (*domain.UploadedFile, *domain.Document, error)
	ProcessDocument(ctx context.Context, fileID int64, records []domain.TopicRecord) (*domain.ProcessingResult, error)
	GetFile(ctx context.Context, id int64) (*domain.UploadedFile, error)
	ListFiles(ctx context.Context, page domain.Page) ([]domain.UploadedFile, error)
}

// FileHandler serves WOSA document upload, processing and file listing.
type FileHandler struct {
	svc      ingestService
	maxBytes int64
	log      *slog.Logger
}

// NewFileHandler creates a FileHandler. maxBytes bounds one uploaded document.
func NewFileHandler(svc ingestService, maxBytes int64, logger *slog.Logger) *FileHandler {
	return &FileHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "files")}
}

// Upload handles POST /wosa/upload (multipart field "file").
// Query: user_id, process=true to process the document immediately.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	process, err := queryBool(r, "process")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	raw, filename, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	file, doc, err := h.svc.UploadDocument(r.Context(), ingest.UploadInput{
		Filename:   filename,
		UploaderID: optionalQuery(r, "user_id"),
		Raw:        raw,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if !process {
		writeJSON(w, http.StatusCreated, toFileResponse(file))
		return
	}

	result, err := h.svc.ProcessDocument(r.Context(), file.ID, doc.Topics)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if updated, err := h.svc.GetFile(r.Context(), file.ID); err == nil {
		file = updated
	}

	processing := toProcessingResponse(result)
	writeJSON(w, http.StatusCreated, uploadResponse{File: toFileResponse(file), Processing: &processing})
}

func (h *FileHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	// The multipart envelope adds a little on top of the document itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+64<<10)

	part, header, err := r.FormFile("file")
	if err != nil {
		var maxBytes *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytes):
			handleError(h.log, w, r, err)
		case errors.Is(err, http.ErrMissingFile):
			handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		default:
			writeError(w, http.StatusBadRequest, "invalid multipart form")
		}
		return nil, "", false
	}
	defer part.Close()

	raw, err := io.ReadAll(io.LimitReader(part, h.maxBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return nil, "", false
	}
	if int64(len(raw)) > h.maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", h.maxBytes))
		return nil, "", false
	}
	return raw, header.Filename, true
}

// Process handles POST /wosa/process/{file_id}. The body is the WOSA document
// to apply, since uploaded bytes are not retained. An unknown file is
// reported before the body is parsed.
func (h *FileHandler) Process(w http.ResponseWriter, r *http.Request) {
	fileID, ok := pathID(w, r, "file_id")
	if !ok {
		return
	}
	if _, err := h.svc.GetFile(r.Context(), fileID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := ingest.ParseDocument(raw)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ProcessDocument(r.Context(), fileID, doc.Topics)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProcessingResponse(result))
}

// List handles GET /wosa/files?skip&limit.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	files, err := h.svc.ListFiles(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(files, func(f domain.UploadedFile) fileResponse { return toFileResponse(&f) }))
}

// Get handles GET /wosa/files/{id}.
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	file, err := h.svc.GetFile(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFileResponse(file))
}
