package subscription

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/storekit/pkg/inventory"
)

// Routes mounts the storefront subscription API on a chi router:
//
//	GET    /subscriptions                 list all records
//	POST   /subscriptions                 upsert a record
//	PUT    /subscriptions/{id}/interval   update the delivery interval
//	DELETE /subscriptions/{id}            cancel a subscription
//	POST   /inventory/check               batch availability check
//
// Unknown ids on update and cancel answer 204, mirroring the registry's
// silent no-op semantics; only structurally invalid input is an error.
func Routes(reg *Registry, checker inventory.Checker) chi.Router {
	r := chi.NewRouter()

	r.Get("/subscriptions", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, reg.List())
	})

	r.Post("/subscriptions", func(w http.ResponseWriter, req *http.Request) {
		var rec Record
		if err := json.NewDecoder(req.Body).Decode(&rec); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid subscription payload")
			return
		}

		if err := reg.Upsert(req.Context(), rec); err != nil {
			if errors.Is(err, ErrMissingID) {
				respondError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		// Echo the stored state, not the request: the registry may have
		// normalized the interval or retained prior fields on re-upsert.
		stored := rec
		for _, r := range reg.List() {
			if r.ID == rec.ID {
				stored = r
				break
			}
		}
		respondJSON(w, http.StatusCreated, stored)
	})

	r.Put("/subscriptions/{id}/interval", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Interval string `json:"interval"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid interval payload")
			return
		}

		if err := reg.UpdateInterval(req.Context(), chi.URLParam(req, "id"), body.Interval); err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Delete("/subscriptions/{id}", func(w http.ResponseWriter, req *http.Request) {
		if err := reg.Cancel(req.Context(), chi.URLParam(req, "id")); err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Post("/inventory/check", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			IDs []string `json:"ids"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid inventory payload")
			return
		}

		stocks, err := checker.Check(req.Context(), body.IDs)
		if err != nil {
			respondError(w, http.StatusBadGateway, err.Error())
			return
		}
		if stocks == nil {
			stocks = []inventory.Stock{}
		}
		respondJSON(w, http.StatusOK, stocks)
	})

	return r
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
