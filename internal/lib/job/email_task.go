package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome greets a newly created employee by email.
	TaskWelcome = "employee:welcome"
)

// WelcomeEmailPayload is stored in Redis as the task payload.
type WelcomeEmailPayload struct {
	EmployeeID int64  `json:"employee_id"`
	To         string `json:"to"`
	Name       string `json:"name"`
}

// NewWelcomeEmailTask builds the welcome task: 3 retries on the default
// queue, 30s per attempt.
func NewWelcomeEmailTask(employeeID int64, to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		EmployeeID: employeeID,
		To:         to,
		Name:       name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
