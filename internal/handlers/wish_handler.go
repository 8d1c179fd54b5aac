package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"wishwall/internal/config"
	"wishwall/internal/models"
	"wishwall/internal/repository"
	"wishwall/internal/services"
	"wishwall/internal/storage"
)

const maxUploadMemory = 32 << 20 // 32 MiB

// WishHandler handles HTTP requests related to wishes.
type WishHandler struct {
	Service *services.WishService
	Store   *storage.Store
	Config  *config.Config
}

// NewWishHandler creates a new instance of WishHandler.
func NewWishHandler(service *services.WishService, store *storage.Store, cfg *config.Config) *WishHandler {
	return &WishHandler{
		Service: service,
		Store:   store,
		Config:  cfg,
	}
}

// wishResponse is a created wish plus its shareable link.
type wishResponse struct {
	Link string `json:"link"`
	*models.Wish
}

// CreateWishHandler handles creation of a new wish from a multipart form.
func (h *WishHandler) CreateWishHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	message := strings.TrimSpace(r.FormValue("message"))
	sender := strings.TrimSpace(r.FormValue("sender"))

	// Fast-fail presence check; the model schema is the real boundary.
	if name == "" || message == "" || sender == "" {
		respondError(w, http.StatusBadRequest, "name, message and sender are required")
		return
	}

	imageHeaders := r.MultipartForm.File["images"]
	if len(imageHeaders) > models.MaxWishImages {
		respondError(w, http.StatusBadRequest, "a wish can have at most 3 images")
		return
	}
	videoHeaders := r.MultipartForm.File["video"]
	if len(videoHeaders) > 1 {
		respondError(w, http.StatusBadRequest, "a wish can have at most 1 video")
		return
	}

	images := []string{}
	for _, header := range imageHeaders {
		fileName, err := h.Store.Save(header)
		if err != nil {
			log.WithError(err).Error("Failed to save uploaded image")
			respondError(w, http.StatusInternalServerError, "Failed to save uploaded image")
			return
		}
		images = append(images, h.uploadURL(r, fileName))
	}

	var video *string
	if len(videoHeaders) == 1 {
		fileName, err := h.Store.Save(videoHeaders[0])
		if err != nil {
			log.WithError(err).Error("Failed to save uploaded video")
			respondError(w, http.StatusInternalServerError, "Failed to save uploaded video")
			return
		}
		url := h.uploadURL(r, fileName)
		video = &url
	}

	wish := &models.Wish{
		Name:    name,
		Message: message,
		Sender:  sender,
		Images:  images,
		Video:   video,
	}

	created, err := h.Service.CreateWish(r.Context(), wish)
	if err != nil {
		// Files already written stay on disk; orphans are accepted.
		log.WithError(err).Error("Failed to create wish")
		if errors.Is(err, models.ErrMissingFields) || errors.Is(err, models.ErrTooManyImages) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create wish")
		return
	}

	link := strings.TrimSuffix(h.Config.FrontendURL, "/") + "/" + created.ID.Hex()
	respondJSON(w, http.StatusOK, wishResponse{Link: link, Wish: created})
}

// GetWishHandler retrieves a specific wish by ID.
func (h *WishHandler) GetWishHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	wish, err := h.Service.GetWishByID(r.Context(), id)
	if err != nil {
		h.respondWishError(w, id, err)
		return
	}

	respondJSON(w, http.StatusOK, wish)
}

// GetWishesHandler returns all wishes, most recent first.
func (h *WishHandler) GetWishesHandler(w http.ResponseWriter, r *http.Request) {
	wishes, err := h.Service.GetAllWishes(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch wishes")
		respondError(w, http.StatusInternalServerError, "Failed to fetch wishes")
		return
	}

	respondJSON(w, http.StatusOK, wishes)
}

// StreamVideoHandler streams a wish's video file. Range requests are not
// supported; the whole file is sent with a 200.
func (h *WishHandler) StreamVideoHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	path, err := h.Service.GetWishVideoPath(r.Context(), id)
	if err != nil {
		h.respondWishError(w, id, err)
		return
	}

	file, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("Failed to open video file")
		respondError(w, http.StatusNotFound, "Video file not found")
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "video/mp4")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		// Client went away mid-stream; nothing left to send.
		log.WithError(err).Debug("Video stream aborted")
	}
}

func (h *WishHandler) respondWishError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "Invalid wish ID")
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "Wish not found")
	case errors.Is(err, services.ErrNoVideo):
		respondError(w, http.StatusNotFound, "Wish has no video")
	case errors.Is(err, services.ErrFileMissing):
		respondError(w, http.StatusNotFound, "Video file not found")
	default:
		log.WithError(err).WithField("wish_id", id).Error("Wish lookup failed")
		respondError(w, http.StatusInternalServerError, "Failed to fetch wish")
	}
}

func (h *WishHandler) uploadURL(r *http.Request, fileName string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/uploads/" + fileName
}
