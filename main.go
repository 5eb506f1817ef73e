package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/eduproject/catalog/api"
	"github.com/eduproject/catalog/config"
	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/models"
	"github.com/eduproject/catalog/schema"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}
	c := config.New()

	fmt.Printf("DB_TYPE: %s\n", config.GetString(c, "DB_TYPE", ""))
	rowStore, db, err := database.Connect(c)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// If migrating, create the tables and exit
	if config.GetBool(c, "MIGRATE", false) {
		if db == nil {
			fmt.Println("MIGRATE needs a Postgres database")
			os.Exit(1)
		}
		if err := models.Migrate(db); err != nil {
			fmt.Printf("Error migrating database: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		if db == nil {
			fmt.Println("GENERATE_COLUMN_REPORT needs a Postgres database")
			os.Exit(1)
		}
		fmt.Println("Generating column mismatch report...")
		models.GenerateColumnMismatchReport(db, schema.ExpectedColumns(), os.Stdout)
		return
	}

	naming := schema.ParseNaming(config.GetString(c, "SCHEMA_WRITE_NAMING", "primary"))
	currentDB := database.New(rowStore, naming)

	if config.GetBool(c, "SEED", false) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := currentDB.Seed(ctx)
		cancel()
		if err != nil {
			fmt.Printf("Error seeding database: %v\n", err)
			os.Exit(1)
		}
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, c)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
