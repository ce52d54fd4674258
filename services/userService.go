package services

import (
	"github.com/DenizAltinisik/internship-management/domain"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users}
}

func (s *UserService) GetProfile(caller domain.Caller) (*domain.User, error) {
	return s.users.GetByEmail(caller.Email)
}

// UpdateProfile replaces the caller's own profile fields. Email, password and
// role are not touched by this path.
func (s *UserService) UpdateProfile(caller domain.Caller, fields domain.User) (*domain.User, error) {
	if !domain.Allowed(caller, domain.OpUserWrite, caller.Email) {
		return nil, domain.ErrForbidden()
	}

	user, err := s.users.GetByEmail(caller.Email)
	if err != nil {
		return nil, err
	}

	user.Name = fields.Name
	user.Surname = fields.Surname
	user.Phone = fields.Phone
	user.School = fields.School
	user.Department = fields.Department
	user.Gender = fields.Gender
	user.Birthdate = fields.Birthdate
	if fields.ProfilePicture != "" {
		user.ProfilePicture = fields.ProfilePicture
	}

	if err := s.users.Update(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetInterns lists users available for task assignment. Admin only.
func (s *UserService) GetInterns(caller domain.Caller) (domain.Users, error) {
	if !domain.Allowed(caller, domain.OpUserList, "") {
		return nil, domain.ErrForbidden()
	}
	return s.users.GetAllByRole(domain.INTERN)
}

// GetUserNames maps every user's email to a display name for board listings.
func (s *UserService) GetUserNames() (map[string]string, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for _, user := range users {
		names[user.Email] = user.DisplayName()
	}
	return names, nil
}
