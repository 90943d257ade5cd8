package dogs

import (
	"context"
	"time"

	"dog-registry/internal/platform/logger"

	"github.com/google/uuid"
)

const (
	// CreateFormPath es la ruta del formulario de alta; destino de todos los redirects.
	CreateFormPath = "/dogs/create"

	MsgDogCreated = "Dog created successfully"

	// FieldGeneral agrupa errores que no pertenecen a un campo concreto.
	FieldGeneral = "error"
	// MsgCreationFailed es lo único que ve el usuario cuando falla el storage.
	MsgCreationFailed = "The dog could not be created. Please try again."

	logCreationFailedPrefix = "Error during dog creation: "
)

// Recorder recibe los contadores de alta. Puede ser nil.
type Recorder interface {
	Created()
	CreationFailed()
	ValidationFailed()
}

type nopRecorder struct{}

func (nopRecorder) Created()          {}
func (nopRecorder) CreationFailed()   {}
func (nopRecorder) ValidationFailed() {}

type Service struct {
	repo    Repository
	log     logger.Logger
	metrics Recorder
	now     func() time.Time
	newID   func() string
}

func NewService(repo Repository, log logger.Logger, metrics Recorder) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		repo:    repo,
		log:     log,
		metrics: metrics,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create persiste un perro ya validado. No hay deduplicación:
// dos llamadas iguales crean dos registros.
func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	now := s.now().UTC()
	d := Dog{
		ID:               s.newID(),
		Name:             in.Name,
		BirthDate:        in.BirthDate,
		IsBirthDateExact: in.IsBirthDateExact,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// Handle ejecuta el flujo completo de alta: validar, persistir y armar la respuesta.
// Nunca devuelve el texto del error de storage en el Outcome; solo va al log.
func (s *Service) Handle(ctx context.Context, in Input) Outcome {
	valid, errs := Validate(in)
	if len(errs) > 0 {
		s.metrics.ValidationFailed()
		return invalidOutcome(errs)
	}

	d, err := s.Create(ctx, valid)
	if err != nil {
		// sin name/birth_date en los fields: solo el mensaje del error
		s.log.Error(logCreationFailedPrefix+err.Error(), nil)
		s.metrics.CreationFailed()
		return failedOutcome()
	}

	s.metrics.Created()
	return createdOutcome(d)
}
