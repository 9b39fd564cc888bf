package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/allotjaments/viatgers-api/cmd/app"
)

// @contact.name   Suport API
// @contact.email  suport@allotjaments.cat
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token emès pel Hub d'identitat
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
