package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RodneySerpa/cadastro-pf-excel/internal/registry"
	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

// excelContentType is the MIME type for xlsx downloads.
const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in types.PersonInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := s.store.Create(in)
	if err != nil {
		var verrs types.ValidationErrors
		if errors.As(err, &verrs) {
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verrs.Messages()})
			return
		}
		s.internalError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	seq, err := s.store.Query(filterFromQuery(r))
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	people := []types.PersonSummary{}
	for p := range seq {
		people = append(people, p.Summary())
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"people": people,
		"count":  len(people),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			respondError(w, http.StatusNotFound, "record not found")
			return
		}
		s.internalError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in types.PersonInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.store.Update(id, in); err != nil {
		var verrs types.ValidationErrors
		switch {
		case errors.Is(err, types.ErrNotFound):
			respondError(w, http.StatusNotFound, "record not found")
		case errors.As(err, &verrs):
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verrs.Messages()})
		default:
			s.internalError(w, r, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	sess := s.session(w, r)
	err := s.store.Delete(sess, id)
	switch {
	case errors.Is(err, types.ErrConfirmRequired):
		respondJSON(w, http.StatusConflict, map[string]any{
			"status": "confirm_required",
			"id":     id,
		})
	case errors.Is(err, types.ErrNotFound):
		respondError(w, http.StatusNotFound, "record not found")
	case err != nil:
		s.internalError(w, r, err)
	default:
		respondJSON(w, http.StatusOK, map[string]any{
			"status": "deleted",
			"id":     id,
		})
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	b, err := s.store.Export(filterFromQuery(r))
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	filename := "cadastros_filtrados_" + time.Now().Format("20060102_1504") + ".xlsx"
	w.Header().Set("Content-Type", excelContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(b)
}

// filterFromQuery maps the name/city/state query parameters onto a
// registry filter.
func filterFromQuery(r *http.Request) registry.Filter {
	q := r.URL.Query()
	return registry.Filter{
		NameContains: q.Get("name"),
		CityContains: q.Get("city"),
		StateEquals:  q.Get("state"),
	}
}

// pathID parses the {id} path parameter, writing a 404 for anything that
// cannot name a record.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusNotFound, "record not found")
		return 0, false
	}
	return id, true
}
