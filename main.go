package main

import (
	"pdf_toolkit/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for server settings; a missing file is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
