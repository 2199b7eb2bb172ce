package main

import (
	"mysql2pg/cmd"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// load the .env file if it exists
	godotenv.Load()

	cmd.Execute()
}
