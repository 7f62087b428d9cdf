package main

import "github.com/killallgit/podfeed-api/cmd"

// @title           Podfeed API
// @version         1.0.0
// @description     Podcast metadata and episodes read from RSS feeds, with date range and limit filters
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podfeed-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
