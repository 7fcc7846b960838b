package main

import "jobport/internal/app"

// @title           JobPort API
// @version         1.0
// @description     Job board backend: accounts, email verification, campaigns and postings.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
