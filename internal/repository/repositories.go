// Package repository handles all interactions with the database.
//
// It contains the SQL for each store and picks the implementation that
// matches the configured driver.
package repository

import (
	"github.com/deppfellow/employee-service/internal/config"
	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/repository/sqlite"
	"github.com/deppfellow/employee-service/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Employee employee.Store
}

// NewRepositories builds the stores on top of the server's open database.
func NewRepositories(s *server.Server) *Repositories {
	if s.DB.Driver == config.DriverSQLite {
		return &Repositories{
			Employee: sqlite.NewEmployeeRepository(s.DB.SQL),
		}
	}

	return &Repositories{
		Employee: NewEmployeeRepository(s.DB.Pool),
	}
}
