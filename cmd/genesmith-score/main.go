// cmd/genesmith-score/main.go
package main

import (
	"genesmith/internal/appshell"
	"genesmith/internal/scoreapp"
)

func main() { appshell.Main(scoreapp.RunContext) }
