package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/asifr/shikkhok/internal/solver"
	"github.com/asifr/shikkhok/internal/store"
)

// maxUploadBytes bounds image and audio uploads.
const maxUploadBytes = 20 << 20

const historyLimit = 50

// Defaults applied when an upload arrives without classification params.
const (
	defaultSubject    = "General"
	defaultClassLevel = "Class 9-10"
	defaultLanguage   = "english"
)

type questionRequest struct {
	Text       string `json:"text"`
	Subject    string `json:"subject"`
	ClassLevel string `json:"class_level"`
	Language   string `json:"language"`
}

// SolveQuestion solves a question submitted as text.
func (h *Handler) SolveQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" || req.Subject == "" || req.ClassLevel == "" {
		writeDetail(w, http.StatusBadRequest, "text, subject and class_level are required")
		return
	}
	if req.Language == "" {
		req.Language = defaultLanguage
	}

	res := h.pipeline.FromText(r.Context(), solver.Input{
		Text:       req.Text,
		Subject:    req.Subject,
		ClassLevel: req.ClassLevel,
		Language:   req.Language,
	})

	h.saveIfOwned(r, res)
	writeJSON(w, http.StatusOK, res)
}

// SolveFromImage recognizes the uploaded image and solves the question in it.
func (h *Handler) SolveFromImage(w http.ResponseWriter, r *http.Request) {
	payload, subject, classLevel, language, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	res := h.pipeline.FromImage(r.Context(), payload, subject, classLevel, language)

	h.saveIfOwned(r, res)
	writeJSON(w, http.StatusOK, res)
}

// SolveFromAudio transcribes the uploaded audio and solves the question in it.
func (h *Handler) SolveFromAudio(w http.ResponseWriter, r *http.Request) {
	payload, subject, classLevel, language, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	res := h.pipeline.FromAudio(r.Context(), payload, subject, classLevel, language)

	h.saveIfOwned(r, res)
	writeJSON(w, http.StatusOK, res)
}

// readUpload pulls the "file" part and the classification params out of a
// multipart request, applying defaults for anything omitted.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (payload []byte, subject, classLevel, language string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeDetail(w, http.StatusBadRequest, "expected a multipart form with a file field")
		return nil, "", "", "", false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "file field is required")
		return nil, "", "", "", false
	}
	defer file.Close()

	payload, err = io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "could not read uploaded file")
		return nil, "", "", "", false
	}

	subject = r.FormValue("subject")
	if subject == "" {
		subject = defaultSubject
	}
	classLevel = r.FormValue("class_level")
	if classLevel == "" {
		classLevel = defaultClassLevel
	}
	language = r.FormValue("language")
	if language == "" {
		language = defaultLanguage
	}

	return payload, subject, classLevel, language, true
}

// saveIfOwned records a successful solution for the authenticated caller.
// Anonymous requests and failed solves leave no history.
func (h *Handler) saveIfOwned(r *http.Request, res solver.Result) {
	if res.Failed() {
		return
	}
	user, ok := userFrom(r.Context())
	if !ok {
		return
	}

	q := store.Question{
		Text:       res.Question,
		Answer:     res.Answer,
		Language:   res.Language,
		Subject:    res.Subject,
		ClassLevel: res.ClassLevel,
		OwnerID:    user.ID,
	}
	if err := h.questions.Save(r.Context(), &q); err != nil {
		// History is best effort; the caller already has the answer.
		h.log.Error("save question", zap.Error(err), zap.Int64("owner_id", user.ID))
	}
}

type historyItem struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Answer     string    `json:"answer"`
	Subject    string    `json:"subject"`
	ClassLevel string    `json:"class_level"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"created_at"`
}

// History lists the caller's solved questions, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())

	questions, err := h.questions.ListByOwner(r.Context(), user.ID, historyLimit)
	if err != nil {
		h.log.Error("list history", zap.Error(err), zap.Int64("owner_id", user.ID))
		writeDetail(w, http.StatusInternalServerError, "could not load history")
		return
	}

	items := make([]historyItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, historyItem{
			ID:         q.ID,
			Text:       q.Text,
			Answer:     q.Answer,
			Subject:    q.Subject,
			ClassLevel: q.ClassLevel,
			Language:   q.Language,
			CreatedAt:  q.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"questions": items})
}
