package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	catalogerrors "cantina/contexts/catalog/drink-service/domain/errors"
	catalogtransport "cantina/contexts/catalog/drink-service/transport/http"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListDrinksHandler(r.Context())
	if err != nil {
		s.logger.Error("catalog list failed",
			"event", "catalog_list_failed",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, statusMessage(http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListItemsDetail(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListDrinksDetailHandler(r.Context())
	if err != nil {
		s.logger.Error("catalog detail list failed",
			"event", "catalog_list_failed",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, statusMessage(http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req catalogtransport.CreateDrinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, statusMessage(http.StatusBadRequest))
		return
	}

	resp, err := s.catalog.Handler.CreateDrinkHandler(r.Context(), req)
	if err != nil {
		s.writeCatalogMutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, statusMessage(http.StatusNotFound))
		return
	}

	var req catalogtransport.UpdateDrinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, statusMessage(http.StatusBadRequest))
		return
	}

	resp, err := s.catalog.Handler.UpdateDrinkHandler(r.Context(), id, req)
	if err != nil {
		s.writeCatalogMutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, statusMessage(http.StatusNotFound))
		return
	}

	resp, err := s.catalog.Handler.DeleteDrinkHandler(r.Context(), id)
	if err != nil {
		s.writeCatalogMutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeCatalogMutationError maps catalog failures to the envelope. Anything
// that is not a missing id collapses to 400, including storage errors; the
// client sees a correctable request, the log keeps the real cause.
func (s *Server) writeCatalogMutationError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalogerrors.ErrDrinkNotFound) {
		writeError(w, http.StatusNotFound, statusMessage(http.StatusNotFound))
		return
	}

	s.logger.Warn("catalog mutation failed",
		"event", "catalog_mutation_failed",
		"error", err.Error(),
	)
	writeError(w, http.StatusBadRequest, statusMessage(http.StatusBadRequest))
}
