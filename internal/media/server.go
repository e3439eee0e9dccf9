package media

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"profnet/internal/dbmongo"
	apperrors "profnet/pkg/errors"
)

// HTTPServer serves message attachments over HTTP: upload, download, health.
type HTTPServer struct {
	storage *dbmongo.AttachmentStorage
}

func NewHTTPServer(mongoClient *dbmongo.MongoClient) *HTTPServer {
	return &HTTPServer{
		storage: dbmongo.NewAttachmentStorage(mongoClient),
	}
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router := mux.NewRouter()

	router.HandleFunc("/attachments/{fileId}", s.serveFile).Methods("GET")
	router.HandleFunc("/attachments", s.uploadFile).Methods("POST")
	router.HandleFunc("/health", s.health).Methods("GET")

	router.ServeHTTP(w, r)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fileId := vars["fileId"]

	fileReader, attachment, err := s.storage.DownloadFile(r.Context(), fileId)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttachmentAbsent) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		log.Printf("Error fetching attachment %s: %v", fileId, err)
		http.Error(w, "download failed", http.StatusInternalServerError)
		return
	}

	contentType := s.getContentType(attachment.Filename)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", attachment.Size))

	_, err = io.Copy(w, fileReader)
	if err != nil {
		log.Printf("Error streaming file: %v", err)
	}
}

func (s *HTTPServer) uploadFile(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	uploaderID := r.FormValue("uploader_id")
	if uploaderID == "" {
		http.Error(w, "uploader_id required", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	attachment, err := s.storage.UploadFile(r.Context(), header.Filename, mimeType, uploaderID, file)
	if err != nil {
		log.Printf("Error storing attachment: %v", err)
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(attachment)
}

func (s *HTTPServer) getContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Attachment server is healthy"))
}
