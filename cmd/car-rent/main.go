package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/YOUNSSBOSS/car-rent/app"
	"github.com/YOUNSSBOSS/car-rent/config"
)

// @title        car-rent API
// @version      1.0
// @description  Car rental booking service.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file loaded ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("run ", err)
	}
}
