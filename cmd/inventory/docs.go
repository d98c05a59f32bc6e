package main

// @title Inventory Service API
// @version 1.0
// @description Categories, units and items with paginated search and upsert
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/inventory-service
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/inventory-service/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Categories
// @tag.description Category management endpoints

// @tag.name Units
// @tag.description Unit of measure endpoints

// @tag.name Items
// @tag.description Item management endpoints

// @tag.name Health
// @tag.description Health check endpoints
