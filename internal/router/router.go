package router

import (
	"net/http"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/handlers"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/middleware"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/services"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/utils"
	"github.com/BerylCAtieno/document-summarizer-widget/internal/web"

	"github.com/gorilla/mux"
)

func NewRouter(uploadService services.UploadService, logger *utils.Logger, maxFileSize int64) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	uploadHandler := handlers.NewUploadHandler(uploadService, logger, maxFileSize)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	// Widget contract
	api.HandleFunc("/upload", uploadHandler.Upload).Methods(http.MethodPost, http.MethodOptions)

	// Audit log
	api.HandleFunc("/uploads", uploadHandler.ListUploads).Methods(http.MethodGet)
	api.HandleFunc("/uploads/{id}/file", uploadHandler.DownloadFile).Methods(http.MethodGet)

	web.RegisterRoutes(r)

	return r
}
