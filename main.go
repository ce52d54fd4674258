package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/DenizAltinisik/internship-management/config"
	"github.com/DenizAltinisik/internship-management/domain"
	"github.com/DenizAltinisik/internship-management/handlers"
	"github.com/DenizAltinisik/internship-management/repositories"
	"github.com/DenizAltinisik/internship-management/services"

	gorillaHandlers "github.com/gorilla/handlers"
)

func main() {
	// Set up a timeout context for store initialization
	timeoutContext, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.GetConfig()
	if cfg.JwtSecret == "" {
		log.Fatalln("JWT_SECRET must be set")
	}

	var userRepository domain.UserRepository
	var projectRepository domain.ProjectRepository
	var taskRepository domain.TaskRepository

	if cfg.MongoDbUri == "" {
		// No database configured; keep everything in memory. Useful for
		// local runs, nothing survives a restart.
		log.Println("MONGO_DB_URI not set, using in-memory store")
		store := repositories.NewInMemStore()
		userRepository = store.Users()
		projectRepository = store.Projects()
		taskRepository = store.Tasks()
	} else {
		userLogger := log.New(os.Stdout, "[user-store] ", log.LstdFlags)
		projectLogger := log.New(os.Stdout, "[project-store] ", log.LstdFlags)
		taskLogger := log.New(os.Stdout, "[task-store] ", log.LstdFlags)

		userRepo, err := repositories.NewUserRepo(timeoutContext, cfg.MongoDbUri, userLogger)
		handleErr(err)
		defer userRepo.Disconnect(context.Background())
		userRepo.Ping()
		userRepository = userRepo

		projectRepo, err := repositories.NewProjectRepo(timeoutContext, cfg.MongoDbUri, projectLogger)
		handleErr(err)
		defer projectRepo.Disconnect(context.Background())
		projectRepository = projectRepo

		taskRepo, err := repositories.NewTaskRepo(timeoutContext, cfg.MongoDbUri, taskLogger)
		handleErr(err)
		defer taskRepo.Disconnect(context.Background())
		taskRepository = taskRepo
	}

	authService := services.NewAuthService(userRepository, []byte(cfg.JwtSecret), cfg.TokenTTL)
	userService := services.NewUserService(userRepository)
	projectService := services.NewProjectService(projectRepository)
	taskService := services.NewTaskService(taskRepository)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	router := handlers.NewRouter(authHandler, userHandler, projectHandler, taskHandler)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "PATCH"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.AllowCredentials(),
	)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      cors(router),
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		log.Println("Server listening on", cfg.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, os.Kill)

	// Wait for shutdown signal
	sig := <-sigCh
	log.Println("Received terminate, graceful shutdown", sig)

	// Shutdown the server gracefully
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Cannot gracefully shutdown:", err)
	}
	log.Println("Server stopped")
}

// handleErr is a helper function for error handling
func handleErr(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}
