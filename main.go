package main

import "github.com/DhavalSuthar-24/eplradar/cmd"

//go:generate swag init --parseInternal -g main.go

// @title EPLRadar API
// @version 1.0
// @description Premier League clubs, players, fixtures, predictions and news.
// @host localhost:8088
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cmd.Execute()
}
