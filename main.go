package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/campus-events/gateway/cmd/app"
)

// @contact.name   API Support
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Cookie
// @description Signed session cookie issued by POST /auth/login
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
