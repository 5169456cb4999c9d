// Package employeetest provides an in-memory employee.Store for tests.
package employeetest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/deppfellow/employee-service/internal/model/employee"
)

// MemoryStore keeps employees in a map and enforces unique emails
// case-insensitively, like the SQL schemas.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]employee.Employee

	// Saves counts Save calls.
	Saves int
	// Err, when set, is returned by every method.
	Err error
}

var _ employee.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: map[int64]employee.Employee{}}
}

func (s *MemoryStore) Insert(_ context.Context, e employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return employee.Employee{}, s.Err
	}
	if err := s.checkUnique(e); err != nil {
		return employee.Employee{}, err
	}

	s.nextID++
	e.ID = s.nextID
	s.rows[e.ID] = e
	return e, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return employee.Employee{}, s.Err
	}
	e, ok := s.rows[id]
	if !ok {
		return employee.Employee{}, fmt.Errorf("find employee %d: %w", id, employee.ErrRecordNotFound)
	}
	return e, nil
}

func (s *MemoryStore) FindByIDAndActive(ctx context.Context, id int64) (employee.Employee, error) {
	e, err := s.FindByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !e.Active {
		return employee.Employee{}, fmt.Errorf("find active employee %d: %w", id, employee.ErrRecordNotFound)
	}
	return e, nil
}

func (s *MemoryStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}
	_, ok := s.rows[id]
	return ok, nil
}

func (s *MemoryStore) Save(_ context.Context, e employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Saves++
	if s.Err != nil {
		return employee.Employee{}, s.Err
	}
	current, ok := s.rows[e.ID]
	if !ok {
		return employee.Employee{}, fmt.Errorf("save employee %d: %w", e.ID, employee.ErrRecordNotFound)
	}
	if err := s.checkUnique(e); err != nil {
		return employee.Employee{}, err
	}

	e.CreatedAt = current.CreatedAt
	s.rows[e.ID] = e
	return e, nil
}

func (s *MemoryStore) FindAllActive(_ context.Context) ([]employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]employee.Employee, 0, len(s.rows))
	for _, e := range s.rows {
		if e.Active {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns the stored record regardless of status, for assertions.
func (s *MemoryStore) Get(id int64) (employee.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.rows[id]
	return e, ok
}

func (s *MemoryStore) checkUnique(e employee.Employee) error {
	if e.Email == "" {
		return nil
	}
	for id, other := range s.rows {
		if id != e.ID && strings.EqualFold(other.Email, e.Email) {
			return fmt.Errorf("email %q: %w", e.Email, employee.ErrDuplicateKey)
		}
	}
	return nil
}
