package router

import (
	"database/sql"
	"net/http"

	_ "dog-registry/docs"
	mem "dog-registry/internal/adapters/storage/memory"
	pg "dog-registry/internal/adapters/storage/postgres"
	"dog-registry/internal/domain/dogs"
	"dog-registry/internal/middleware"
	"dog-registry/internal/platform/flash"
	"dog-registry/internal/platform/logger"
	"dog-registry/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// DogRepo tiene prioridad sobre DB (tests con stores que fallan).
	DogRepo dogs.Repository

	// Metrics opcional; si es nil se crea un registry nuevo.
	Metrics *metrics.Metrics

	SecureCookies bool
	// FlashKey firma las cookies flash; vacío => clave aleatoria.
	FlashKey []byte
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var dogRepo dogs.Repository
	switch {
	case opts.DogRepo != nil:
		dogRepo = opts.DogRepo
	case opts.DB != nil:
		dogRepo = pg.NewDogsRepo(opts.DB)
	default:
		dogRepo = mem.NewDogRepo()
	}

	dogsSvc := dogs.NewService(dogRepo, log.With(map[string]any{"component": "dogs"}), m)
	fl := flash.New(flash.Options{Secure: opts.SecureCookies, HashKey: opts.FlashKey})

	dogs.RegisterRoutes(r, dogsSvc, fl)

	// la raíz lleva al formulario de alta
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, dogs.CreateFormPath, http.StatusFound)
	})

	return r
}
