package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"swipenight/backend/internal/models"
	"swipenight/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: mark-paid, block, unblock, sweep-expired")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "mark-paid":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin mark-paid <event_id>")
			os.Exit(1)
		}
		eventID := os.Args[2]
		if err := storageSvc.MarkEventPaid(eventID, time.Now().UTC()); err != nil {
			log.Fatalf("Error marking event paid: %v", err)
		}
		fmt.Printf("Event %s has been marked as paid.\n", eventID)
	case "block":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin block <event_id> <user_id>")
			os.Exit(1)
		}
		if err := storageSvc.SetMemberStatus(os.Args[2], os.Args[3], models.StatusBlocked); err != nil {
			log.Fatalf("Error blocking member: %v", err)
		}
		fmt.Printf("User %s has been blocked in event %s.\n", os.Args[3], os.Args[2])
	case "unblock":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin unblock <event_id> <user_id>")
			os.Exit(1)
		}
		if err := storageSvc.SetMemberStatus(os.Args[2], os.Args[3], models.StatusJoined); err != nil {
			log.Fatalf("Error unblocking member: %v", err)
		}
		fmt.Printf("User %s has been unblocked in event %s.\n", os.Args[3], os.Args[2])
	case "sweep-expired":
		removed, err := storageSvc.DeleteExpiredMatches(time.Now().UTC())
		if err != nil {
			log.Fatalf("Error sweeping expired matches: %v", err)
		}
		fmt.Printf("Removed %d expired matches.\n", removed)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
