package domain

import (
	"encoding/json"
	"io"
)

type User struct {
	Email          string `bson:"email" json:"email"`
	Password       string `bson:"password" json:"-"`
	Role           Role   `bson:"role" json:"role"`
	Name           string `bson:"name" json:"name"`
	Surname        string `bson:"surname" json:"surname"`
	Phone          string `bson:"phone,omitempty" json:"phone"`
	School         string `bson:"school,omitempty" json:"school"`
	Department     string `bson:"department,omitempty" json:"department"`
	Gender         string `bson:"gender,omitempty" json:"gender"`
	Birthdate      string `bson:"birthdate,omitempty" json:"birthdate"`
	ProfilePicture string `bson:"profile_picture,omitempty" json:"profile_picture"`
}

type Users []*User

func (u *Users) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(u)
}

func (u *User) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(u)
}

func (u *User) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(u)
}

// DisplayName is what task listings show next to an owner email.
func (u User) DisplayName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

type UserRepository interface {
	Insert(user User) (User, error)
	GetByEmail(email string) (*User, error)
	GetAll() (Users, error)
	GetAllByRole(role Role) (Users, error)
	Update(user User) error
}

type Role string

const (
	ADMIN  Role = "admin"
	INTERN Role = "intern"
)

func (r Role) String() string {
	return string(r)
}

func RoleFromString(s string) (Role, error) {
	switch s {
	case "admin":
		return ADMIN, nil
	case "intern":
		return INTERN, nil
	default:
		return "", ErrInvalidRole()
	}
}
