// cmd/genesmith/main.go
package main

import (
	"genesmith/internal/app"
	"genesmith/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
