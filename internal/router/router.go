package router

import (
	"database/sql"
	"net/http"

	mem "kitty-catalog/internal/adapters/storage/memory"
	pg "kitty-catalog/internal/adapters/storage/postgres"
	"kitty-catalog/internal/domain/breeds"
	"kitty-catalog/internal/domain/kittens"
	"kitty-catalog/internal/domain/users"
	"kitty-catalog/internal/middleware"
	"kitty-catalog/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Options struct {
	Tokens auth.TokenService

	// Opcional: si viene, usa Postgres. Si no, in-memory (modo dev).
	DB *sql.DB

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		userRepo   users.Repository
		breedRepo  breeds.Repository
		kittenRepo kittens.Repository
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		breedRepo = pg.NewBreedsRepo(opts.DB)
		kittenRepo = pg.NewKittensRepo(opts.DB)
	} else {
		memBreeds := mem.NewBreedsRepo()
		userRepo = mem.NewUsersRepo()
		breedRepo = memBreeds
		kittenRepo = mem.NewKittensRepo(memBreeds)
	}

	usersSvc := users.NewService(userRepo, opts.Tokens)
	breedsSvc := breeds.NewService(breedRepo)
	kittensSvc := kittens.NewService(kittenRepo)

	// Registro, login y refresh quedan fuera del grupo autenticado;
	// en refresh el token mismo es la credencial.
	users.RegisterPublicRoutes(r, usersSvc)

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Authenticate(opts.Tokens))

		users.RegisterProtectedRoutes(pr, usersSvc)
		breeds.RegisterRoutes(pr, breedsSvc)
		kittens.RegisterRoutes(pr, kittensSvc, breedsSvc)
	})

	return r
}
