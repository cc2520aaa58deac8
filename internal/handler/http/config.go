package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/service"
)

// maxDocumentSize caps PUT bodies at 1 MiB. Site documents are a few
// kilobytes in practice.
const maxDocumentSize = 1 << 20

// getConfig returns the stored document, or an empty JSON object when
// nothing has been stored yet. Responses are uncacheable so editors always
// see the latest save.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	document, err := h.service.Get(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Msg("error reading stored config")
		http.Error(w, "error reading stored config", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

// putConfig replaces the stored document wholesale.
func (h *Handler) putConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.putConfig").Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	if err = h.service.Put(r.Context(), body); err != nil {
		if errors.Is(err, service.ErrInvalidDocument) {
			log.Err(err).Str("func", "*Handler.putConfig").Msg("invalid JSON was passed")
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.putConfig").Msg("error storing config")
		http.Error(w, "error storing config", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
