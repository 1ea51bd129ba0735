package web

import (
	"net/http"
	"strconv"
)

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}

	boxID := r.PathValue("id")
	qty, err := formQty(r)
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	if _, err := s.service.AddItem(r.Context(), boxID, r.FormValue("name"), qty); err != nil {
		s.writeError(w, err, "add item")
		return
	}

	http.Redirect(w, r, "/boxes/"+boxID, http.StatusSeeOther)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}

	boxID := r.PathValue("id")
	idx, err := strconv.Atoi(r.PathValue("idx"))
	if err != nil {
		http.Error(w, "invalid item index", http.StatusBadRequest)
		return
	}
	qty, err := formQty(r)
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	if _, err := s.service.UpdateItem(r.Context(), boxID, idx, r.FormValue("name"), qty); err != nil {
		s.writeError(w, err, "update item")
		return
	}

	http.Redirect(w, r, "/boxes/"+boxID, http.StatusSeeOther)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}

	boxID := r.PathValue("id")
	idx, err := strconv.Atoi(r.PathValue("idx"))
	if err != nil {
		http.Error(w, "invalid item index", http.StatusBadRequest)
		return
	}

	if _, err := s.service.DeleteItem(r.Context(), boxID, idx); err != nil {
		s.writeError(w, err, "delete item")
		return
	}

	http.Redirect(w, r, "/boxes/"+boxID, http.StatusSeeOther)
}

// formQty reads the "qty" form field; an absent field defaults to 1, matching
// the add-item form's default.
func formQty(r *http.Request) (int, error) {
	raw := r.FormValue("qty")
	if raw == "" {
		return 1, nil
	}
	return strconv.Atoi(raw)
}
