package services

import (
	"github.com/DenizAltinisik/internship-management/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskService struct {
	tasks domain.TaskRepository
}

func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks}
}

// Create is the quick-add path: the new task always starts at todo, whatever
// the client sent. The repository validates the project and owner references.
func (s *TaskService) Create(caller domain.Caller, header, details, projectId, owner string) (domain.Task, error) {
	if !domain.Allowed(caller, domain.OpTaskWrite, "") {
		return domain.Task{}, domain.ErrForbidden()
	}
	if header == "" || details == "" {
		return domain.Task{}, domain.ErrMissingFields()
	}

	projID, err := primitive.ObjectIDFromHex(projectId)
	if err != nil {
		return domain.Task{}, domain.ErrProjectNotFound()
	}

	task := domain.Task{
		Header:    header,
		Details:   details,
		Status:    domain.TODO,
		ProjectId: projID,
		Owner:     owner,
	}

	return s.tasks.Insert(task)
}

// ListVisible returns every task for an admin and only owned tasks for an
// intern, in insertion order.
func (s *TaskService) ListVisible(caller domain.Caller) (domain.Tasks, error) {
	if caller.IsAdmin() {
		return s.tasks.GetAll()
	}
	return s.tasks.GetAllByOwner(caller.Email)
}

// ListByProject returns the project's tasks, filtered by the same visibility
// rule as ListVisible.
func (s *TaskService) ListByProject(caller domain.Caller, projectId string) (domain.Tasks, error) {
	tasks, err := s.tasks.GetAllByProject(projectId)
	if err != nil {
		return nil, err
	}
	if caller.IsAdmin() {
		return tasks, nil
	}

	visible := make(domain.Tasks, 0)
	for _, task := range tasks {
		if domain.Allowed(caller, domain.OpTaskRead, task.Owner) {
			visible = append(visible, task)
		}
	}
	return visible, nil
}

func (s *TaskService) Get(caller domain.Caller, id string) (*domain.Task, error) {
	task, err := s.tasks.GetById(id)
	if err != nil {
		return nil, err
	}
	if !domain.Allowed(caller, domain.OpTaskRead, task.Owner) {
		return nil, domain.ErrForbidden()
	}
	return task, nil
}

// MoveForward applies todo->test or test->done. A task already at done stays
// there; the move is a silent no-op.
func (s *TaskService) MoveForward(caller domain.Caller, id string) (*domain.Task, error) {
	return s.move(caller, id, func(status domain.Status) domain.Status {
		return status.Next()
	})
}

// MoveBackward applies done->test or test->todo. A task already at todo stays
// there; the move is a silent no-op.
func (s *TaskService) MoveBackward(caller domain.Caller, id string) (*domain.Task, error) {
	return s.move(caller, id, func(status domain.Status) domain.Status {
		return status.Prev()
	})
}

// MoveTo serves the board's drag-and-drop call, which carries a target status
// instead of a direction. The target must be the current status or one step
// away from it; anything else is rejected so the pipeline cannot be skipped.
func (s *TaskService) MoveTo(caller domain.Caller, id string, target domain.Status) (*domain.Task, error) {
	if !target.Valid() {
		return nil, domain.ErrInvalidStatus()
	}

	task, err := s.tasks.GetById(id)
	if err != nil {
		return nil, err
	}
	if !domain.Allowed(caller, domain.OpTaskMove, task.Owner) {
		return nil, domain.ErrForbidden()
	}

	switch target {
	case task.Status:
		return task, nil
	case task.Status.Next():
		return s.MoveForward(caller, id)
	case task.Status.Prev():
		return s.MoveBackward(caller, id)
	default:
		return nil, domain.ErrInvalidStatus()
	}
}

func (s *TaskService) move(caller domain.Caller, id string, step func(domain.Status) domain.Status) (*domain.Task, error) {
	task, err := s.tasks.GetById(id)
	if err != nil {
		return nil, err
	}
	if !domain.Allowed(caller, domain.OpTaskMove, task.Owner) {
		return nil, domain.ErrForbidden()
	}

	next := step(task.Status)
	if next == task.Status {
		return task, nil
	}

	task.Status = next
	if err := s.tasks.Update(*task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update is the admin escape hatch: it may replace header, details, owner and
// set any valid status directly, skipping the one-step rule.
func (s *TaskService) Update(caller domain.Caller, id, header, details, owner, statusString string) (*domain.Task, error) {
	if !domain.Allowed(caller, domain.OpTaskWrite, "") {
		return nil, domain.ErrForbidden()
	}

	task, err := s.tasks.GetById(id)
	if err != nil {
		return nil, err
	}

	if header != "" {
		task.Header = header
	}
	if details != "" {
		task.Details = details
	}
	if owner != "" {
		task.Owner = owner
	}
	if statusString != "" {
		status, err := domain.StatusFromString(statusString)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}

	if err := s.tasks.Update(*task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(caller domain.Caller, id string) error {
	if !domain.Allowed(caller, domain.OpTaskWrite, "") {
		return domain.ErrForbidden()
	}
	return s.tasks.Delete(id)
}
