// cmd/marks/main.go
package main

import (
	"marks/internal/app"
	"marks/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
