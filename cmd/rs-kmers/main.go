// cmd/rs-kmers/main.go
package main

import (
	"readsanalyzer/internal/appshell"
	"readsanalyzer/internal/kmerapp"
)

func main() { appshell.Main(kmerapp.RunContext) }
