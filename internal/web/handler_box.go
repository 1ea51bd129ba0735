package web

import (
	"net/http"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	boxes, err := s.service.ListBoxes(r.Context())
	if err != nil {
		s.writeError(w, err, "list boxes")
		return
	}

	if err := s.renderPage(w, "pages/index.html", map[string]any{"Boxes": boxes}); err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

func (s *Server) handleCreateBox(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}

	smart := r.FormValue("smart") == "1"
	box, err := s.service.CreateBox(r.Context(),
		r.FormValue("name"),
		r.FormValue("location"),
		r.FormValue("items"),
		smart,
	)
	if err != nil {
		s.writeError(w, err, "create box")
		return
	}

	s.logger.Debug("box form accepted", "box_id", box.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleBoxPublic(w http.ResponseWriter, r *http.Request) {
	box, err := s.service.GetBox(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err, "get box")
		return
	}

	data := map[string]any{"Box": box, "Title": box.Name}
	if err := s.renderPage(w, "pages/box_public.html", data); err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

func (s *Server) handleBoxAdmin(w http.ResponseWriter, r *http.Request) {
	box, err := s.service.GetBox(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err, "get box")
		return
	}

	data := map[string]any{"Box": box, "Title": "Edit: " + box.Name}
	if err := s.renderPage(w, "pages/box_admin.html", data); err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

func (s *Server) handleUpdateBox(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}

	id := r.PathValue("id")
	if _, err := s.service.UpdateBox(r.Context(), id, r.FormValue("name"), r.FormValue("location")); err != nil {
		s.writeError(w, err, "update box")
		return
	}

	http.Redirect(w, r, "/boxes/"+id, http.StatusSeeOther)
}

func (s *Server) handleDeleteBox(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}

	if err := s.service.DeleteBox(r.Context(), r.PathValue("id"), r.FormValue("confirm")); err != nil {
		s.writeError(w, err, "delete box")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
