package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-registry/internal/domain/dogs"
)

var (
	ErrNotFound = errors.New("not found")
)

// dogRepo conserva el orden de inserción; First devuelve el primero creado.
type dogRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]dogs.Dog
}

func NewDogRepo() dogs.Repository {
	return &dogRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *dogRepo) All(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *dogRepo) First(ctx context.Context) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return dogs.Dog{}, ErrNotFound
	}
	return r.byID[r.order[0]], nil
}

func (r *dogRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order), nil
}
