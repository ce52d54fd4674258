package handlers

import (
	"net/http"

	"github.com/DenizAltinisik/internship-management/domain"
	"github.com/DenizAltinisik/internship-management/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)

	user, err := h.users.GetProfile(caller)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(user, http.StatusOK, w)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)

	req := &struct {
		Name           string `json:"name"`
		Surname        string `json:"surname"`
		Phone          string `json:"phone"`
		School         string `json:"school"`
		Department     string `json:"department"`
		Gender         string `json:"gender"`
		Birthdate      string `json:"birthdate"`
		ProfilePicture string `json:"profile_picture"`
	}{}
	err := readReq(req, r, w)
	if err != nil {
		return
	}

	fields := domain.User{
		Name:           req.Name,
		Surname:        req.Surname,
		Phone:          req.Phone,
		School:         req.School,
		Department:     req.Department,
		Gender:         req.Gender,
		Birthdate:      req.Birthdate,
		ProfilePicture: req.ProfilePicture,
	}

	user, err := h.users.UpdateProfile(caller, fields)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(user, http.StatusOK, w)
}

func (h *UserHandler) GetInterns(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)

	interns, err := h.users.GetInterns(caller)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(interns, http.StatusOK, w)
}

func (h *UserHandler) GetUserNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.users.GetUserNames()
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(names, http.StatusOK, w)
}
