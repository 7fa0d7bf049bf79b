package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/job-coordination-api/internal/authz"
	"github.com/yukikurage/job-coordination-api/internal/middleware"
	"github.com/yukikurage/job-coordination-api/internal/models"
	"github.com/yukikurage/job-coordination-api/internal/reference"
	"github.com/yukikurage/job-coordination-api/internal/repository"
	"github.com/yukikurage/job-coordination-api/internal/services"
	"github.com/yukikurage/job-coordination-api/internal/token"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	jobService  *services.JobService
}

// setupTestEnv builds an in-memory database and a router wired exactly like
// the server: materials Sand/Gravel, equipment Truck-01.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	refData := reference.NewData([]string{"Sand", "Gravel"}, []string{"Truck-01"})
	tokens := token.NewService("test-secret", "job-coordination-api", time.Hour)

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	jobService := services.NewJobService(jobRepo, userRepo, refData)
	referenceService := services.NewReferenceService(refData, userRepo)

	authHandler := NewAuthHandler(authService)
	jobHandler := NewJobHandler(jobService)
	referenceHandler := NewReferenceHandler(referenceService)

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	jobs := api.Group("/jobs")
	jobs.Use(middleware.RequireAuth(tokens))
	jobs.POST("", middleware.RequireCapability(authz.OpCreateJob), jobHandler.Create)
	jobs.GET("", middleware.RequireCapability(authz.OpListAllJobs), jobHandler.ListAll)
	jobs.GET("/mine", middleware.RequireCapability(authz.OpListAssignedJobs), jobHandler.ListMine)
	jobs.GET("/:id", middleware.RequireCapability(authz.OpGetJob), jobHandler.GetByID)
	jobs.PATCH("/:id/status", middleware.RequireCapability(authz.OpUpdateJobStatus), jobHandler.UpdateStatus)

	ref := api.Group("/reference")
	ref.Use(middleware.RequireAuth(tokens), middleware.RequireCapability(authz.OpReadReferenceData))
	ref.GET("/materials", referenceHandler.Materials)
	ref.GET("/equipment", referenceHandler.Equipment)

	users := api.Group("/users")
	users.Use(middleware.RequireAuth(tokens), middleware.RequireCapability(authz.OpListAvailableUsers))
	users.GET("/available", referenceHandler.AvailableUsers)

	return testEnv{
		db:          db,
		router:      r,
		authService: authService,
		jobService:  jobService,
	}
}

// registerUser creates a user through the service and returns its token.
func (e testEnv) registerUser(t *testing.T, username, fullName string, role models.Role) string {
	t.Helper()

	result, err := e.authService.Register(services.RegisterInput{
		Username: username,
		FullName: fullName,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)
	return result.Token
}

// doJSON performs a request against the router with an optional bearer
// token and JSON body.
func (e testEnv) doJSON(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func validJobPayload() map[string]string {
	return map[string]string{
		"title":                  "Haul",
		"materialType":           "Sand",
		"quantity":               "5 tons",
		"destinationAddress":     "12 Quarry Road",
		"contactPerson":          "Pat Doe",
		"contactPhone":           "555-0101",
		"assignedDriverUsername": "driver1",
		"assignedCrewUsername":   "crew1",
		"assignedEquipment":      "Truck-01",
	}
}
