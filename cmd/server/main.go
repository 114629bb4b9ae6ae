package main

import "clientdesk/internal/app"

// @title ClientDesk API
// @version 1.0
// @description CRM backend for small service businesses: leads, deals, tasks and a dashboard.
// @BasePath /
func main() {
	app.Run()
}
