package main

import (
	"github.com/joho/godotenv"

	"exomind/cmd/exom/cmd"
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	cmd.Execute()
}
