package main

import (
	"os"

	"freelance-marketplace-client/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
