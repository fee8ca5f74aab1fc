package main

import "github.com/killallgit/nzwalks-api/cmd"

// @title           NZ Walks Regions API
// @version         1.0.0
// @description     CRUD management of New Zealand walking regions
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/nzwalks-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
