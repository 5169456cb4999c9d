package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type fakeMailer struct {
	to, name string
	calls    int
	err      error
}

func (f *fakeMailer) SendWelcomeEmail(to, name string) error {
	f.calls++
	f.to, f.name = to, name
	return f.err
}

type fakeEnqueuer struct {
	tasks  []*asynq.Task
	err    error
	closed bool
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default", Type: task.Type()}, nil
}

func (f *fakeEnqueuer) Close() error {
	f.closed = true
	return nil
}

func newTestService(mailer Mailer, client enqueuer) *JobService {
	logger := zerolog.Nop()
	return &JobService{client: client, mailer: mailer, logger: &logger}
}

func TestEnqueueWelcome(t *testing.T) {
	t.Parallel()

	client := &fakeEnqueuer{}
	svc := newTestService(&fakeMailer{}, client)

	if err := svc.EnqueueWelcome(context.Background(), 5, "alice@example.com", "Alice"); err != nil {
		t.Fatalf("EnqueueWelcome: %v", err)
	}
	if len(client.tasks) != 1 || client.tasks[0].Type() != TaskWelcome {
		t.Fatalf("unexpected tasks: %+v", client.tasks)
	}

	var p WelcomeEmailPayload
	if err := json.Unmarshal(client.tasks[0].Payload(), &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.EmployeeID != 5 || p.To != "alice@example.com" || p.Name != "Alice" {
		t.Fatalf("unexpected payload: %+v", p)
	}

	svc.Stop()
	if !client.closed {
		t.Fatal("Stop should close the client")
	}
}

func TestEnqueueWelcomeError(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeMailer{}, &fakeEnqueuer{err: errors.New("redis down")})

	if err := svc.EnqueueWelcome(context.Background(), 5, "alice@example.com", "Alice"); err == nil {
		t.Fatal("expected enqueue error")
	}
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	svc := newTestService(mailer, &fakeEnqueuer{})

	task, err := NewWelcomeEmailTask(5, "alice@example.com", "Alice")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Mux().ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}
	if mailer.calls != 1 || mailer.to != "alice@example.com" || mailer.name != "Alice" {
		t.Fatalf("unexpected mail: %+v", mailer)
	}
}

func TestHandleWelcomeEmailTaskFailures(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{err: errors.New("provider down")}
	svc := newTestService(mailer, &fakeEnqueuer{})

	task, _ := NewWelcomeEmailTask(5, "alice@example.com", "Alice")
	if err := svc.Mux().ProcessTask(context.Background(), task); err == nil {
		t.Fatal("send failure should be returned so the task is retried")
	}

	bad := asynq.NewTask(TaskWelcome, []byte("{"))
	err := svc.Mux().ProcessTask(context.Background(), bad)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("malformed payload should skip retries, got %v", err)
	}
}
