package main

import (
	"Garage/Config"
	"Garage/FiberConfig"
	"Garage/Models"
	"Garage/middleware"
)

func main() {
	cfg := Config.Load()
	middleware.SecretKey = cfg.JWTSecret

	Models.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	FiberConfig.FiberConfig(Models.DB, cfg)
}
