package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/kubikrubik/kubreminder/internal/config"
	"github.com/kubikrubik/kubreminder/internal/domain/service"
	"github.com/kubikrubik/kubreminder/internal/handlers"
	"github.com/kubikrubik/kubreminder/internal/scheduler"
	"github.com/kubikrubik/kubreminder/internal/storage"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.SlackBotToken == "" {
		log.Fatal("SLACK_BOT_TOKEN is required")
	}
	if cfg.PrimaryChannelID == "" {
		log.Fatal("PRIMARY_CHANNEL_ID is required")
	}

	store := storage.New(cfg.LessonsPath)
	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(store, slackClient, cfg)

	sched := scheduler.New(services.Reminders, cfg)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	handler := handlers.New(services.Lessons, cfg)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("KubReminder starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
