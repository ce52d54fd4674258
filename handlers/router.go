package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter assembles the HTTP surface. /register and /login are open;
// everything else sits behind the bearer middleware, with the admin-only
// routes additionally wrapped by MiddlewareAdmin.
func NewRouter(authHandler *AuthHandler, userHandler *UserHandler, projectHandler *ProjectHandler, taskHandler *TaskHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", authHandler.LogIn).Methods(http.MethodPost)

	authRouter := router.PathPrefix("/").Subrouter()
	authRouter.Use(authHandler.MiddlewareAuth)

	authRouter.HandleFunc("/profile", userHandler.GetProfile).Methods(http.MethodGet)
	authRouter.HandleFunc("/profile", userHandler.UpdateProfile).Methods(http.MethodPut)
	authRouter.HandleFunc("/get_user_names", userHandler.GetUserNames).Methods(http.MethodGet)

	authRouter.HandleFunc("/tasks", taskHandler.GetAll).Methods(http.MethodGet)
	authRouter.HandleFunc("/get_task/{id}", taskHandler.GetById).Methods(http.MethodGet)
	authRouter.HandleFunc("/get_project_tasks/{projectId}", taskHandler.GetByProject).Methods(http.MethodGet)
	authRouter.HandleFunc("/update_task_status", taskHandler.UpdateStatus).Methods(http.MethodPut)

	authRouter.HandleFunc("/get_projects", projectHandler.GetAll).Methods(http.MethodGet)

	adminRouter := authRouter.PathPrefix("/").Subrouter()
	adminRouter.Use(authHandler.MiddlewareAdmin)

	adminRouter.HandleFunc("/addTask", taskHandler.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/update_task/{id}", taskHandler.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/delete_task/{id}", taskHandler.Delete).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/add_project", projectHandler.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/update_project/{id}", projectHandler.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/delete_project/{id}", projectHandler.Delete).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/interns", userHandler.GetInterns).Methods(http.MethodGet)

	return router
}
