package http

import (
	"embed"
	"net/http"
)

//go:embed web/index.html web/preload.js
var webFS embed.FS

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.serveEmbedded(w, r, "web/index.html", "text/html; charset=utf-8")
}

func (h *Handler) preload(w http.ResponseWriter, r *http.Request) {
	h.serveEmbedded(w, r, "web/preload.js", "text/javascript; charset=utf-8")
}

func (h *Handler) serveEmbedded(w http.ResponseWriter, r *http.Request, name, contentType string) {
	content, err := webFS.ReadFile(name)
	if err != nil {
		h.logger.Err(err).Str("file", name).Msg("embedded UI document missing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(content)
}
