package routes

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "civic_pulse/docs" // swag-generated swagger spec
	"civic_pulse/internal/adapter/http/handlers"
	"civic_pulse/internal/adapter/persistence/repository"
	"civic_pulse/internal/infrastructure/classifier"
	"civic_pulse/internal/infrastructure/database"
	"civic_pulse/internal/infrastructure/storage"
	"civic_pulse/internal/usecase"
	"civic_pulse/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// maxJSONBodyBytes bounds JSON submissions: base64 photos inflate payloads,
// the original deployment allowed 20 MB.
const maxJSONBodyBytes = 20 << 20

// Run wires dependencies and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		// Local DynamoDB only; the AWS table is provisioned out of band.
		table := getenvDefault("COMPLAINTS_TABLE", "complaints")
		if err := database.EnsureComplaintsTable(context.Background(), ddb, table); err != nil {
			log.Fatalf("Failed to ensure complaints table: %v", err)
		}
	}

	complaintRepo := repository.NewComplaintDynamoRepository(ddb)

	photoStore, err := storage.NewLocalPhotoStore(getenvDefault("UPLOADS_DIR", "uploads"))
	if err != nil {
		log.Fatalf("Failed to initialize photo store: %v", err)
	}

	var classifierGateway interfaces.IClassifierGateway
	gateway, err := classifier.NewHTTPClassifierGateway(os.Getenv("CLASSIFIER_URL"))
	if err != nil {
		// Submissions still succeed: the risk fallback covers a missing classifier.
		log.Printf("Classifier gateway not configured: %v", err)
	} else {
		classifierGateway = gateway
	}

	complaintUseCase := usecase.NewComplaintUseCase(
		complaintRepo,
		photoStore,
		classifierGateway,
		retainRejectedPhotos(),
	)
	complaintHandler := handlers.NewComplaintHandler(complaintUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addComplaintRoutes(api, complaintHandler)

	// Stored photos are public static files.
	router.Static("/uploads", photoStore.BaseDir())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBodyBytes)
		c.Next()
	})
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// retainRejectedPhotos decides whether photos of classifier-rejected
// submissions stay on disk. Default keeps them (audit trail).
func retainRejectedPhotos() bool {
	switch getenvDefault("PHOTO_RETAIN_REJECTED", "true") {
	case "0", "false", "no", "off":
		return false
	}
	return true
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
