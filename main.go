package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studio-portal/backend/planner-service/handlers"
	"studio-portal/backend/planner-service/logging"
	"studio-portal/backend/planner-service/middleware"
	"studio-portal/backend/planner-service/repositories"
	"studio-portal/backend/planner-service/services"
	"studio-portal/backend/planner-service/store"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Planner Service...")
	err := godotenv.Load(".env")
	if err != nil {
		logging.Logger.Fatalf("Event ID: ENV_LOAD_ERROR, Description: Error loading .env file: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	db := client.Database(mongoDBName)

	storeBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "DocumentStoreCB",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	taskRepo := repositories.NewMongoTaskRepository(db.Collection("tasks"), storeBreaker)
	ideaRepo := repositories.NewMongoIdeaRepository(db.Collection("ideas"), storeBreaker)
	rosterRepo := repositories.NewMongoRosterRepository(db.Collection("artists"), storeBreaker)

	mirror := store.NewMirror()

	taskService := services.NewTaskService(taskRepo, ideaRepo, mirror)
	ideaService := services.NewIdeaService(ideaRepo, mirror)
	rosterService := services.NewRosterService(rosterRepo, mirror)

	taskHandler := handlers.NewTaskHandler(taskService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	viewHandler := handlers.NewViewHandler(taskService)

	r := mux.NewRouter()

	r.HandleFunc("/api/tasks", taskHandler.GetTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks", taskHandler.SaveProjectTask).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/social", taskHandler.SaveSocialTask).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/{taskID}/phases/{phaseID}/progress", taskHandler.UpdateProgress).Methods(http.MethodPatch)
	r.HandleFunc("/api/tasks/{taskID}/brief", taskHandler.GetBrief).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/{taskID}", taskHandler.DeleteTask).Methods(http.MethodDelete)

	r.HandleFunc("/api/ideas", ideaHandler.GetIdeas).Methods(http.MethodGet)
	r.HandleFunc("/api/ideas", ideaHandler.SaveIdea).Methods(http.MethodPost)
	r.HandleFunc("/api/ideas/{ideaID}/move", ideaHandler.MoveIdea).Methods(http.MethodPatch)
	r.HandleFunc("/api/ideas/{ideaID}/promote", ideaHandler.PromoteIdea).Methods(http.MethodPost)
	r.HandleFunc("/api/ideas/{ideaID}", ideaHandler.DeleteIdea).Methods(http.MethodDelete)

	r.HandleFunc("/api/artists", rosterHandler.GetRoster).Methods(http.MethodGet)
	r.HandleFunc("/api/artists", rosterHandler.AddResource).Methods(http.MethodPost)

	r.HandleFunc("/api/timeline", viewHandler.GetTimeline).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard", viewHandler.GetDashboard).Methods(http.MethodGet)
	r.HandleFunc("/api/social-board", viewHandler.GetSocialBoard).Methods(http.MethodGet)
	r.HandleFunc("/api/strategy", viewHandler.GetStrategy).Methods(http.MethodGet)

	corsRouter := enableCORS(middleware.JWTAuthMiddleware(r))

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
