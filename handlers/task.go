package handlers

import (
	"net/http"

	"github.com/DenizAltinisik/internship-management/domain"
	"github.com/DenizAltinisik/internship-management/services"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)

	req := &struct {
		Header    string `json:"header"`
		Details   string `json:"details"`
		ProjectId string `json:"project_id"`
		Owner     string `json:"owner"`
	}{}
	err := readReq(req, r, w)
	if err != nil {
		return
	}

	task, err := h.tasks.Create(caller, req.Header, req.Details, req.ProjectId, req.Owner)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(task, http.StatusCreated, w)
}

func (h *TaskHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)

	tasks, err := h.tasks.ListVisible(caller)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(tasks, http.StatusOK, w)
}

func (h *TaskHandler) GetById(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)
	id := mux.Vars(r)["id"]

	task, err := h.tasks.Get(caller, id)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(task, http.StatusOK, w)
}

func (h *TaskHandler) GetByProject(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)
	projectId := mux.Vars(r)["projectId"]

	tasks, err := h.tasks.ListByProject(caller, projectId)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(tasks, http.StatusOK, w)
}

// UpdateStatus serves the board's drag-and-drop move. The payload carries the
// target column; the service only accepts a single-step move.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)

	req := &struct {
		TaskId string `json:"task_id"`
		Status string `json:"status"`
	}{}
	err := readReq(req, r, w)
	if err != nil {
		return
	}

	status, err := domain.StatusFromString(req.Status)
	if err != nil {
		writeErrorResp(err, w)
		return
	}

	task, err := h.tasks.MoveTo(caller, req.TaskId, status)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(task, http.StatusOK, w)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)
	id := mux.Vars(r)["id"]

	req := &struct {
		Header  string `json:"header"`
		Details string `json:"details"`
		Status  string `json:"status"`
		Owner   string `json:"owner"`
	}{}
	err := readReq(req, r, w)
	if err != nil {
		return
	}

	task, err := h.tasks.Update(caller, id, req.Header, req.Details, req.Owner, req.Status)
	if err != nil {
		writeErrorResp(err, w)
		return
	}
	writeResp(task, http.StatusOK, w)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r)
	id := mux.Vars(r)["id"]

	if err := h.tasks.Delete(caller, id); err != nil {
		writeErrorResp(err, w)
		return
	}

	resp := struct {
		Message string `json:"message"`
	}{
		Message: "Task deleted successfully",
	}
	writeResp(resp, http.StatusOK, w)
}
