package main

import (
	"github.com/taskforge/go-tasks/app"
	_ "github.com/taskforge/go-tasks/docs"
)

//	@title			Task Manager API
//	@version		1.0
//	@description	REST API for per-user task management with JWT authentication.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
