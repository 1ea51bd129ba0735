package web

import (
	"io"
	"net/http"
)

// maxImportSize bounds uploaded documents; far above any realistic inventory.
const maxImportSize = 10 * 1024 * 1024 // 10 MB

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.service.Export(r.Context())
	if err != nil {
		s.writeError(w, err, "export document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="boxes.json"`)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("write export failed", "error", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	if !s.authorized(w, r) {
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "JSON file required", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Error("close upload failed", "error", err)
		}
	}()

	payload, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		s.logger.Error("read import failed", "error", err)
		return
	}

	if err := s.service.Import(r.Context(), payload); err != nil {
		s.writeError(w, err, "import document")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
