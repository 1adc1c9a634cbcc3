package kittens

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"kitty-catalog/internal/domain/breeds"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes necesita el service de breeds para el GET por id, que
// devuelve el gatito junto con su raza (dos lookups, sin object graph).
func RegisterRoutes(r chi.Router, svc *Service, breedsSvc *breeds.Service) {
	r.Post("/kitty/create/", createKittyHandler(svc))
	r.Get("/kitty/all/", listKittensHandler(svc))
	r.Get("/kitty/{kittyID}", getKittyHandler(svc, breedsSvc))
	r.Put("/kitty/update/{kittyID}", updateKittyHandler(svc))
	r.Delete("/kitty/soft_removal/{kittyID}", softRemovalHandler(svc))
}

type createKittyRequest struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Age         int     `json:"age"` // meses cumplidos
	Description *string `json:"description"`
	BreedID     int64   `json:"breed_id"`
}

type updateKittyRequest struct {
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	Age         *int    `json:"age"`
	Description *string `json:"description"`
	BreedID     *int64  `json:"breed_id"`
}

type kittyResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Color       string     `json:"color"`
	Age         int        `json:"age"`
	Description *string    `json:"description"`
	BreedID     int64      `json:"breed_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

type kittyWithBreedResponse struct {
	Kitty kittyResponse `json:"kitty"`
	Breed breedResponse `json:"breed"`
}

type breedResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type kittyListResponse struct {
	Kittens []kittyResponse `json:"kittens"`
}

func createKittyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createKittyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		k, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Color:       req.Color,
			Age:         req.Age,
			Description: req.Description,
			BreedID:     req.BreedID,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrInvalidBreed):
				http.Error(w, "invalid breed reference", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toKittyResponse(k))
	}
}

func getKittyHandler(svc *Service, breedsSvc *breeds.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := kittyID(w, r)
		if !ok {
			return
		}

		k, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "kitten not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		b, err := breedsSvc.GetByID(r.Context(), k.BreedID)
		if err != nil {
			// La FK garantiza que la raza existe; llegar acá es un error real.
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, kittyWithBreedResponse{
			Kitty: toKittyResponse(k),
			Breed: breedResponse{
				ID:          b.ID,
				Name:        b.Name,
				Description: b.Description,
			},
		})
	}
}

func listKittensHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var breedID *int64
		if raw := r.URL.Query().Get("breed_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "breed_id must be an integer", http.StatusBadRequest)
				return
			}
			breedID = &id
		}

		items, err := svc.List(r.Context(), breedID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]kittyResponse, 0, len(items))
		for _, k := range items {
			out = append(out, toKittyResponse(k))
		}

		writeJSON(w, http.StatusOK, kittyListResponse{Kittens: out})
	}
}

func updateKittyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := kittyID(w, r)
		if !ok {
			return
		}

		var req updateKittyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		k, err := svc.Update(r.Context(), id, UpdateInput{
			Name:        req.Name,
			Color:       req.Color,
			Age:         req.Age,
			Description: req.Description,
			BreedID:     req.BreedID,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "kitten not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidBreed):
				http.Error(w, "invalid breed reference", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toKittyResponse(k))
	}
}

func softRemovalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := kittyID(w, r)
		if !ok {
			return
		}

		k, err := svc.SoftDelete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "kitten not found", http.StatusNotFound)
			case errors.Is(err, ErrAlreadyDeleted):
				http.Error(w, "kitten already deleted", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, fmt.Sprintf("Kitten %d - %s deleted", k.ID, k.Name))
	}
}

func kittyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "kittyID"), 10, 64)
	if err != nil {
		http.Error(w, "kitten not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func toKittyResponse(k Kitty) kittyResponse {
	return kittyResponse{
		ID:          k.ID,
		Name:        k.Name,
		Color:       k.Color,
		Age:         k.Age,
		Description: k.Description,
		BreedID:     k.BreedID,
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
		DeletedAt:   k.DeletedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
