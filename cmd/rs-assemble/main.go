// cmd/rs-assemble/main.go
package main

import (
	"readsanalyzer/internal/appshell"
	"readsanalyzer/internal/assembleapp"
)

func main() { appshell.Main(assembleapp.RunContext) }
