package breeds

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// "/breed/all/" lleva slash final; sin él, "all" caería en {breedID}.
	r.Get("/breed/all/", listBreedsHandler(svc))
	r.Get("/breed/{breedID}", getBreedHandler(svc))
	r.Post("/breed/create", createBreedHandler(svc))
}

type breedRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type breedResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type breedListResponse struct {
	Breed []breedResponse `json:"breed"`
}

func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "breedID"), 10, 64)
		if err != nil {
			http.Error(w, "breed not found", http.StatusNotFound)
			return
		}

		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "breed not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toBreedResponse(b))
	}
}

func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBreedResponse(b))
		}

		writeJSON(w, http.StatusOK, breedListResponse{Breed: out})
	}
}

func createBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req breedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), req.Name, req.Description)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toBreedResponse(b))
	}
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
