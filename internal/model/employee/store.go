package employee

import "context"

// Store is the persistence contract for employees.
//
// Absence is reported as ErrRecordNotFound and uniqueness violations as
// ErrDuplicateKey, both possibly wrapped.
type Store interface {
	// Insert stores a new record and returns it with the assigned ID.
	Insert(ctx context.Context, e Employee) (Employee, error)
	// FindByID returns the record regardless of status.
	FindByID(ctx context.Context, id int64) (Employee, error)
	// FindByIDAndActive returns the record only when it is active.
	FindByIDAndActive(ctx context.Context, id int64) (Employee, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// Save overwrites every field except CreatedAt of an existing record.
	Save(ctx context.Context, e Employee) (Employee, error)
	// FindAllActive returns active records ordered by ID.
	FindAllActive(ctx context.Context) ([]Employee, error)
}
