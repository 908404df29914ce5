package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/chatrelay/media-gateway-go/internal/port"
	"github.com/chatrelay/media-gateway-go/internal/usecase/upload"
)

// Multipart forms are parsed fully in memory up to this cap; the usecase
// enforces the real file size limit.
const maxMultipartMemory = 32 * 1024 * 1024

type uploadResponse struct {
	Success bool `json:"success"`
	port.IngestUploadOutput
}

// UploadMediaHandler answers POST /media/upload with a multipart form
// carrying `file`, `clientId` and `messageType`.
func UploadMediaHandler(svc port.UploadIngestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart form", err)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "file is required", err)
			return
		}
		defer func() { _ = file.Close() }()

		body, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not read uploaded file", err)
			return
		}

		mimeType := header.Header.Get("Content-Type")
		in := port.IngestUploadInput{
			TenantID: r.FormValue("clientId"),
			Category: r.FormValue("messageType"),
			FileName: header.Filename,
			MimeType: mimeType,
			Body:     body,
		}

		out, err := svc.IngestUpload(r.Context(), in)
		if err != nil {
			if upload.IsValidationError(err) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not store upload", err)
			return
		}

		RespondJSON(w, http.StatusOK, uploadResponse{Success: true, IngestUploadOutput: out})
		log.Printf("✅  Ingested upload %q for tenant %q", out.FilePath, in.TenantID)
	}
}

// QueryUploadsHandler answers GET /media/upload. With a filePath query param
// it is an existence probe for one upload; without one it lists the tenant's
// uploads.
func QueryUploadsHandler(svc port.UploadLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("clientId")
		if tenantID == "" {
			WriteError(w, http.StatusBadRequest, "clientId is required", nil)
			return
		}

		if filePath := r.URL.Query().Get("filePath"); filePath != "" {
			info, err := svc.StatUpload(r.Context(), port.RemoveUploadInput{TenantID: tenantID, FilePath: filePath})
			if err != nil {
				respondUploadErr(w, err)
				return
			}
			RespondJSON(w, http.StatusOK, struct {
				Success bool `json:"success"`
				port.UploadInfo
			}{Success: true, UploadInfo: info})
			return
		}

		files, err := svc.ListUploads(r.Context(), tenantID)
		if err != nil {
			respondUploadErr(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, struct {
			Success bool              `json:"success"`
			Files   []port.UploadInfo `json:"files"`
		}{Success: true, Files: files})
	}
}

// DeleteUploadHandler answers DELETE /media/upload?clientId&filePath. A key
// outside the caller's tenant namespace is a 403.
func DeleteUploadHandler(svc port.UploadRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("clientId")
		filePath := r.URL.Query().Get("filePath")
		if tenantID == "" || filePath == "" {
			WriteError(w, http.StatusBadRequest, "clientId and filePath are required", nil)
			return
		}

		if err := svc.RemoveUpload(r.Context(), port.RemoveUploadInput{TenantID: tenantID, FilePath: filePath}); err != nil {
			respondUploadErr(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, struct {
			Success bool `json:"success"`
		}{Success: true})
		log.Printf("✅  Deleted upload %q for tenant %q", filePath, tenantID)
	}
}

func respondUploadErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, upload.ErrNotOwned):
		WriteError(w, http.StatusForbidden, "file does not belong to this client", nil)
	case errors.Is(err, upload.ErrNotFound):
		WriteError(w, http.StatusNotFound, "file not found", nil)
	default:
		WriteError(w, http.StatusInternalServerError, "Storage operation failed", err)
	}
}
