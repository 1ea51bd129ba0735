package web

import (
	"net/http"
	"strconv"
	"strings"
)

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	boxes, err := s.service.ListBoxes(r.Context())
	if err != nil {
		s.writeError(w, err, "list boxes")
		return
	}

	data := map[string]any{"Boxes": boxes, "Title": "Printable QR Sheet"}
	if err := s.renderPage(w, "pages/labels.html", data); err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

// handleQRImage serves /qr/{id}.png. style=qr renders a bare QR square
// (size query sets the pixel width); anything else renders the 2x1 label.
func (s *Server) handleQRImage(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	boxID, ok := strings.CutSuffix(file, ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var (
		img []byte
		err error
	)
	if r.URL.Query().Get("style") == "qr" {
		size := 200
		if v, convErr := strconv.Atoi(r.URL.Query().Get("size")); convErr == nil && v > 0 {
			size = v
		}
		img, err = s.service.QRPNG(r.Context(), boxID, size)
	} else {
		img, err = s.service.LabelPNG(r.Context(), boxID)
	}
	if err != nil {
		s.writeError(w, err, "render qr image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(img); err != nil {
		s.logger.Error("write qr image failed", "error", err)
	}
}
