package services

import (
	"github.com/DenizAltinisik/internship-management/domain"
)

type ProjectService struct {
	projects domain.ProjectRepository
}

func NewProjectService(projects domain.ProjectRepository) *ProjectService {
	return &ProjectService{projects}
}

func (s *ProjectService) Create(caller domain.Caller, name, description, statusString string) (domain.Project, error) {
	if !domain.Allowed(caller, domain.OpProjectWrite, "") {
		return domain.Project{}, domain.ErrForbidden()
	}
	if name == "" {
		return domain.Project{}, domain.ErrMissingFields()
	}

	// Admins may start a project in any of the three states.
	status := domain.TODO
	if statusString != "" {
		var err error
		status, err = domain.StatusFromString(statusString)
		if err != nil {
			return domain.Project{}, err
		}
	}

	project := domain.Project{
		Name:        name,
		Description: description,
		Status:      status,
	}

	return s.projects.Insert(project)
}

func (s *ProjectService) GetAll(caller domain.Caller) (domain.Projects, error) {
	if !domain.Allowed(caller, domain.OpProjectRead, "") {
		return nil, domain.ErrForbidden()
	}
	return s.projects.GetAll()
}

func (s *ProjectService) Update(caller domain.Caller, id, name, description, statusString string) (*domain.Project, error) {
	if !domain.Allowed(caller, domain.OpProjectWrite, "") {
		return nil, domain.ErrForbidden()
	}

	project, err := s.projects.GetById(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		project.Name = name
	}
	project.Description = description

	if statusString != "" {
		status, err := domain.StatusFromString(statusString)
		if err != nil {
			return nil, err
		}
		project.Status = status
	}

	if err := s.projects.Update(*project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project; the repository cascades to its tasks.
func (s *ProjectService) Delete(caller domain.Caller, id string) error {
	if !domain.Allowed(caller, domain.OpProjectWrite, "") {
		return domain.ErrForbidden()
	}
	return s.projects.Delete(id)
}
