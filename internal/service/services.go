package service

import (
	"github.com/deppfellow/employee-service/internal/lib/job"
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/deppfellow/employee-service/internal/server"
)

type Services struct {
	Employee *EmployeeService
	Job      *job.JobService
}

// NewService wires the services. The welcome notifier is only attached
// when the job service is running.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	opts := []EmployeeOption{}
	if s.Job != nil {
		opts = append(opts, WithNotifier(s.Job))
	}

	return &Services{
		Employee: NewEmployeeService(repos.Employee, opts...),
		Job:      s.Job,
	}, nil
}
