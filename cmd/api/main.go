package main

import (
	"os"

	_ "console_comercial/docs"
	"console_comercial/internal/adapter/http/routes"
	"console_comercial/internal/infrastructure/config"
	"console_comercial/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Console Comercial API
// @version         1.0
// @description     Funil comercial, propostas e ciclo de vida de contratos com assinatura digital.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()
	logging.Configure(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	routes.Run(cfg)
}
