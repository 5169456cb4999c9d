package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/rs/zerolog"
)

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// WelcomeNotifier schedules the welcome email for a created employee.
type WelcomeNotifier interface {
	EnqueueWelcome(ctx context.Context, employeeID int64, to, name string) error
}

type EmployeeOption func(*EmployeeService)

func WithClock(c Clock) EmployeeOption {
	return func(s *EmployeeService) { s.clock = c }
}

func WithNotifier(n WelcomeNotifier) EmployeeOption {
	return func(s *EmployeeService) { s.notifier = n }
}

func WithMapper(m employee.Mapper[employee.EmployeeDTO, employee.Employee]) EmployeeOption {
	return func(s *EmployeeService) { s.mapper = m }
}

// EmployeeService implements the employee use cases on top of a Store.
type EmployeeService struct {
	store    employee.Store
	mapper   employee.Mapper[employee.EmployeeDTO, employee.Employee]
	clock    Clock
	notifier WelcomeNotifier
}

func NewEmployeeService(store employee.Store, opts ...EmployeeOption) *EmployeeService {
	s := &EmployeeService{
		store:  store,
		mapper: employee.EmployeeMapper{},
		clock:  realClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new active employee. Any id in dto is ignored.
func (s *EmployeeService) Create(ctx context.Context, dto employee.EmployeeDTO) (employee.EmployeeDTO, error) {
	e := s.mapper.ToEntity(dto)
	e.ID = 0
	e.Active = true
	// Postgres keeps microseconds.
	e.CreatedAt = s.clock.Now().UTC().Truncate(time.Microsecond)

	created, err := s.store.Insert(ctx, e)
	if err != nil {
		return employee.EmployeeDTO{}, fmt.Errorf("create employee: %w", err)
	}

	logRecord(ctx, "employee created", created)
	s.notifyCreated(ctx, created)

	return s.mapper.ToDTO(created), nil
}

// Retrieve returns an active employee.
func (s *EmployeeService) Retrieve(ctx context.Context, id int64) (employee.EmployeeDTO, error) {
	e, err := s.store.FindByIDAndActive(ctx, id)
	if err != nil {
		return employee.EmployeeDTO{}, notFoundOr(id, "retrieve employee", err)
	}
	return s.mapper.ToDTO(e), nil
}

// Update replaces every field of an existing employee, active or not, with
// dto. The stored id is always the path id.
func (s *EmployeeService) Update(ctx context.Context, id int64, dto employee.EmployeeDTO) (employee.EmployeeDTO, error) {
	e := s.mapper.ToEntity(dto)

	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return employee.EmployeeDTO{}, fmt.Errorf("update employee: %w", err)
	}
	if !exists {
		return employee.EmployeeDTO{}, employee.NewNotFoundError(id)
	}

	e.ID = id
	saved, err := s.store.Save(ctx, e)
	if err != nil {
		return employee.EmployeeDTO{}, notFoundOr(id, "update employee", err)
	}

	logRecord(ctx, "employee updated", saved)
	return s.mapper.ToDTO(saved), nil
}

// Delete marks an active employee inactive.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	e, err := s.store.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(id, "delete employee", err)
	}
	if !e.Active {
		return employee.NewAlreadyDeletedError(id)
	}

	e.Active = false
	saved, err := s.store.Save(ctx, e)
	if err != nil {
		return notFoundOr(id, "delete employee", err)
	}

	logRecord(ctx, "employee deleted", saved)
	return nil
}

// List returns all active employees ordered by id, never nil.
func (s *EmployeeService) List(ctx context.Context) ([]employee.EmployeeDTO, error) {
	all, err := s.store.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employee.ToDTOs(s.mapper, all), nil
}

func (s *EmployeeService) notifyCreated(ctx context.Context, e employee.Employee) {
	if s.notifier == nil || e.Email == "" {
		return
	}
	if err := s.notifier.EnqueueWelcome(ctx, e.ID, e.Email, e.Name); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("employee_id", e.ID).Msg("failed to schedule welcome email")
	}
}

func notFoundOr(id int64, op string, err error) error {
	if errors.Is(err, employee.ErrRecordNotFound) {
		return employee.NewNotFoundError(id)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func logRecord(ctx context.Context, msg string, e employee.Employee) {
	zerolog.Ctx(ctx).Debug().
		Int64("employee_id", e.ID).
		Str("name", e.Name).
		Str("email", e.Email).
		Str("position", e.Position).
		Str("phone", e.Phone).
		Bool("active", e.Active).
		Time("created_at", e.CreatedAt).
		Msg(msg)
}
