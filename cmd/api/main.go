package main

import (
	_ "civic_pulse/docs"
	"civic_pulse/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Civic Complaint Service API
// @version         1.0
// @description     Citizen complaint submission and triage (photo upload + image classification) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
