package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"docdraft/cmd/docdraft/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
