package handlers

import (
	"net/http"

	"github.com/DenizAltinisik/internship-management/services"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)

	req := &struct {
		Name        string `json:"project_name"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}{}
	err := readReq(req, r, w)
	if err != nil {
		return
	}

	project, err := h.projects.Create(caller, req.Name, req.Description, req.Status)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(project, http.StatusCreated, w)
}

func (h *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)

	projects, err := h.projects.GetAll(caller)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(projects, http.StatusOK, w)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)
	id := mux.Vars(r)["id"]

	req := &struct {
		Name        string `json:"project_name"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}{}
	err := readReq(req, r, w)
	if err != nil {
		return
	}

	project, err := h.projects.Update(caller, id, req.Name, req.Description, req.Status)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(project, http.StatusOK, w)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)
	id := mux.Vars(r)["id"]

	if err := h.projects.Delete(caller, id); err != nil {
		writeErrorResp(err, w)
		return
	}

	resp := struct {
		Message string `json:"message"`
	}{
		Message: "Project deleted successfully",
	}
	writeResp(resp, http.StatusOK, w)
}
