/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"embed"

	"tally/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
