package domain

import (
	"encoding/json"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"project_name" json:"project_name"`
	Description string             `bson:"description" json:"description"`
	Status      Status             `bson:"status" json:"status"`
}

type Projects []*Project

func (p *Projects) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(p)
}

func (p *Project) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(p)
}

func (p *Project) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(p)
}

func (p *Project) Equals(other *Project) bool {
	return p.Id == other.Id
}

type ProjectRepository interface {
	GetAll() (Projects, error)
	GetById(id string) (*Project, error)
	Insert(project Project) (Project, error)
	Update(project Project) error
	// Delete removes the project and every task referencing it in the same
	// transactional boundary.
	Delete(id string) error
}
