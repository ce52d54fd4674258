package domain

import (
	"encoding/json"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Header    string             `bson:"header" json:"header"`
	Details   string             `bson:"details" json:"details"`
	Status    Status             `bson:"status" json:"status"`
	ProjectId primitive.ObjectID `bson:"project_id" json:"project_id"`
	Owner     string             `bson:"owner" json:"owner"`
}

type Tasks []*Task

func (t *Tasks) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(t)
}

func (t *Task) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(t)
}

func (t *Task) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(t)
}

type TaskRepository interface {
	// Insert validates that the referenced project and owner exist and
	// inserts the task in the same transactional boundary.
	Insert(task Task) (Task, error)
	GetAll() (Tasks, error)
	GetAllByOwner(email string) (Tasks, error)
	GetAllByProject(projectId string) (Tasks, error)
	GetById(id string) (*Task, error)
	Update(task Task) error
	Delete(id string) error
}

// Status is the kanban lifecycle state of a task or project.
// Board moves travel one step at a time along todo -> test -> done.
type Status string

const (
	TODO Status = "todo"
	TEST Status = "test"
	DONE Status = "done"
)

var forwardTransitions = map[Status]Status{
	TODO: TEST,
	TEST: DONE,
}

var backwardTransitions = map[Status]Status{
	DONE: TEST,
	TEST: TODO,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	return s == TODO || s == TEST || s == DONE
}

// Next returns the status one step forward. done has no forward step and
// maps to itself.
func (s Status) Next() Status {
	if next, ok := forwardTransitions[s]; ok {
		return next
	}
	return s
}

// Prev returns the status one step backward. todo has no backward step and
// maps to itself.
func (s Status) Prev() Status {
	if prev, ok := backwardTransitions[s]; ok {
		return prev
	}
	return s
}

func StatusFromString(s string) (Status, error) {
	switch s {
	case "todo":
		return TODO, nil
	case "test":
		return TEST, nil
	case "done":
		return DONE, nil
	default:
		return "", ErrInvalidStatus()
	}
}
