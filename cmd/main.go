package main

import (
	"estante/ui"
	"estante/utils"
)

func main() {
	utils.Main()
	ui.RunApp()
}
