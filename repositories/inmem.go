package repositories

import (
	"sync"

	"github.com/DenizAltinisik/internship-management/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemStore keeps the three collections behind one lock so that cascade
// deletes and referential checks cover the same span a database transaction
// would. It backs the tests and storeless local runs. The Users, Projects and
// Tasks views expose it through the domain repository interfaces.
type InMemStore struct {
	mu sync.RWMutex

	users        map[string]domain.User
	userOrder    []string
	projects     map[string]domain.Project
	projectOrder []string
	tasks        map[string]domain.Task
	taskOrder    []string
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		users:    make(map[string]domain.User),
		projects: make(map[string]domain.Project),
		tasks:    make(map[string]domain.Task),
	}
}

func (s *InMemStore) Users() domain.UserRepository {
	return inMemUsers{s}
}

func (s *InMemStore) Projects() domain.ProjectRepository {
	return inMemProjects{s}
}

func (s *InMemStore) Tasks() domain.TaskRepository {
	return inMemTasks{s}
}

type inMemUsers struct{ s *InMemStore }

func (r inMemUsers) Insert(user domain.User) (domain.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return domain.User{}, domain.ErrEmailTaken()
	}
	s.users[user.Email] = user
	s.userOrder = append(s.userOrder, user.Email)
	return user, nil
}

func (r inMemUsers) GetByEmail(email string) (*domain.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound()
	}
	return &user, nil
}

func (r inMemUsers) GetAll() (domain.Users, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(domain.Users, 0, len(s.userOrder))
	for _, email := range s.userOrder {
		user := s.users[email]
		users = append(users, &user)
	}
	return users, nil
}

func (r inMemUsers) GetAllByRole(role domain.Role) (domain.Users, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(domain.Users, 0)
	for _, email := range s.userOrder {
		user := s.users[email]
		if user.Role == role {
			users = append(users, &user)
		}
	}
	return users, nil
}

func (r inMemUsers) Update(user domain.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; !ok {
		return domain.ErrUserNotFound()
	}
	s.users[user.Email] = user
	return nil
}

type inMemProjects struct{ s *InMemStore }

func (r inMemProjects) GetAll() (domain.Projects, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make(domain.Projects, 0, len(s.projectOrder))
	for _, id := range s.projectOrder {
		project := s.projects[id]
		projects = append(projects, &project)
	}
	return projects, nil
}

func (r inMemProjects) GetById(id string) (*domain.Project, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound()
	}
	return &project, nil
}

func (r inMemProjects) Insert(project domain.Project) (domain.Project, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if project.Id.IsZero() {
		project.Id = primitive.NewObjectID()
	}
	id := project.Id.Hex()
	s.projects[id] = project
	s.projectOrder = append(s.projectOrder, id)
	return project, nil
}

func (r inMemProjects) Update(project domain.Project) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	id := project.Id.Hex()
	if _, ok := s.projects[id]; !ok {
		return domain.ErrProjectNotFound()
	}
	s.projects[id] = project
	return nil
}

// Delete removes the project and cascades to its tasks under the same write
// lock, so no task is ever visible with a dangling project reference.
func (r inMemProjects) Delete(id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return domain.ErrProjectNotFound()
	}
	delete(s.projects, id)
	s.projectOrder = removeString(s.projectOrder, id)

	kept := s.taskOrder[:0]
	for _, taskId := range s.taskOrder {
		task := s.tasks[taskId]
		if task.ProjectId.Hex() == id {
			delete(s.tasks, taskId)
			continue
		}
		kept = append(kept, taskId)
	}
	s.taskOrder = kept
	return nil
}

type inMemTasks struct{ s *InMemStore }

func (r inMemTasks) Insert(task domain.Task) (domain.Task, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[task.ProjectId.Hex()]; !ok {
		return domain.Task{}, domain.ErrProjectNotFound()
	}
	if _, ok := s.users[task.Owner]; !ok {
		return domain.Task{}, domain.ErrUserNotFound()
	}

	if task.Id.IsZero() {
		task.Id = primitive.NewObjectID()
	}
	id := task.Id.Hex()
	s.tasks[id] = task
	s.taskOrder = append(s.taskOrder, id)
	return task, nil
}

func (r inMemTasks) GetAll() (domain.Tasks, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make(domain.Tasks, 0, len(s.taskOrder))
	for _, id := range s.taskOrder {
		task := s.tasks[id]
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

func (r inMemTasks) GetAllByOwner(email string) (domain.Tasks, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make(domain.Tasks, 0)
	for _, id := range s.taskOrder {
		task := s.tasks[id]
		if task.Owner == email {
			tasks = append(tasks, &task)
		}
	}
	return tasks, nil
}

func (r inMemTasks) GetAllByProject(projectId string) (domain.Tasks, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make(domain.Tasks, 0)
	for _, id := range s.taskOrder {
		task := s.tasks[id]
		if task.ProjectId.Hex() == projectId {
			tasks = append(tasks, &task)
		}
	}
	return tasks, nil
}

func (r inMemTasks) GetById(id string) (*domain.Task, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound()
	}
	return &task, nil
}

func (r inMemTasks) Update(task domain.Task) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	id := task.Id.Hex()
	if _, ok := s.tasks[id]; !ok {
		return domain.ErrTaskNotFound()
	}
	s.tasks[id] = task
	return nil
}

func (r inMemTasks) Delete(id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return domain.ErrTaskNotFound()
	}
	delete(s.tasks, id)
	s.taskOrder = removeString(s.taskOrder, id)
	return nil
}

func removeString(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
