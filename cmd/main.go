package main

import (
	"github.com/corray333/grubdash/internal/app"
	"github.com/corray333/grubdash/internal/config"
)

//	@title		GrubDash API
//	@version	1.0
//	@BasePath	/
func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
