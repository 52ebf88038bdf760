package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"blogpub/internal/session"
)

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	pubs, err := h.PublicationService.Feed(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, pubs, http.StatusOK)
}

func (h *Handlers) GetMyPublications(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	pubs, err := h.PublicationService.Mine(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, pubs, http.StatusOK)
}

func (h *Handlers) GetPublication(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	publicationID := mux.Vars(r)["id"]

	pub, err := h.PublicationService.Get(r.Context(), sess, publicationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, pub, http.StatusOK)
}

func (h *Handlers) SearchPublications(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	term := r.URL.Query().Get("q")

	pubs, err := h.PublicationService.Search(r.Context(), sess, term)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, pubs, http.StatusOK)
}

func (h *Handlers) CreatePublication(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	title, content, image, ok := h.parsePublicationForm(w, r)
	if !ok {
		return
	}

	pub, err := h.PublicationService.Create(r.Context(), sess, title, content, image)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, pub, http.StatusCreated)
}

func (h *Handlers) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	publicationID := mux.Vars(r)["id"]

	title, content, image, ok := h.parsePublicationForm(w, r)
	if !ok {
		return
	}

	pub, err := h.PublicationService.Update(r.Context(), sess, publicationID, title, content, image)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, pub, http.StatusOK)
}

func (h *Handlers) DeletePublication(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	publicationID := mux.Vars(r)["id"]

	if err := h.PublicationService.Delete(r.Context(), sess, publicationID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPublicationImage serves the stored image bytes. The content type is
// sniffed from the payload since a blob column carries no filename.
func (h *Handlers) GetPublicationImage(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	publicationID := mux.Vars(r)["id"]

	pub, err := h.PublicationService.Get(r.Context(), sess, publicationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !pub.HasImage() {
		WriteError(w, "publication has no image", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(pub.Image))
	w.WriteHeader(http.StatusOK)
	w.Write(pub.Image)
}

// parsePublicationForm reads the multipart form shared by create and
// update. A missing image part yields a nil slice, which downstream means
// "leave the stored image alone"; an uploaded file is buffered whole, the
// way the reference held uploads in memory. Returns ok=false after having
// written an error response.
func (h *Handlers) parsePublicationForm(w http.ResponseWriter, r *http.Request) (title, content string, image []byte, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return "", "", nil, false
	}

	title = r.FormValue("title")
	content = r.FormValue("content")

	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return title, content, nil, true
		}
		WriteError(w, "invalid image upload", http.StatusBadRequest)
		return "", "", nil, false
	}
	defer file.Close()

	image, err = io.ReadAll(file)
	if err != nil {
		WriteError(w, "reading image upload failed", http.StatusBadRequest)
		return "", "", nil, false
	}

	return title, content, image, true
}
