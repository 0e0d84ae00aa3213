package main

import (
	_ "github.com/cietz/laranjinhao/docs"
	"github.com/cietz/laranjinhao/internal/adapter/http/routes"
	"github.com/cietz/laranjinhao/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Laranjinhao PIX API
// @version         1.0
// @description     PIX payment proxy normalizing multiple gateways behind a single contract.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg := config.Load()
	routes.Run(cfg)
}
