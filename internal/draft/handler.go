package draft

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/kiku/internal/config"
)

const generationFailedMessage = "生成に失敗しました"

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GenerateDraft(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debugf("draft mode=%s", resp.Mode)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ExportText(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	text, err := h.service.ExportText(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.Text(w, http.StatusOK, text)
}

func (h *Handler) ListUnheardContexts(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, AllUnheardContexts)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (GenerateRequest, bool) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("invalid request body")
		config.Error(w, http.StatusInternalServerError, generationFailedMessage)
		return req, false
	}
	return req, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	if errors.Is(err, ErrUnknownContext) {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log.WithError(err).Error("failed to generate draft")
	config.Error(w, http.StatusInternalServerError, generationFailedMessage)
}
