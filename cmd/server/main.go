// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tanach-study/email-automation/internal/config"
	"github.com/tanach-study/email-automation/internal/db"
	"github.com/tanach-study/email-automation/internal/handler"
	"github.com/tanach-study/email-automation/internal/queue"
	"github.com/tanach-study/email-automation/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for the server")
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to DB: ", err)
	}
	defer conn.Close()
	log.Println("✅ Connected to database")

	q, err := queue.NewAMQPQueue(cfg.AMQPURL)
	if err != nil {
		log.Fatal("failed to connect to RabbitMQ: ", err)
	}
	defer q.Close()

	runRepo := &repository.NewsletterRunRepository{DB: conn}

	newsletterHandler := &handler.NewsletterHandler{
		Repo:  runRepo,
		Queue: q,
	}

	r := chi.NewRouter()

	// Newsletter routes
	r.Post("/newsletters/send", newsletterHandler.SendNewsletter)
	r.Get("/newsletters", newsletterHandler.ListNewsletters)
	r.Get("/newsletters/{id}", newsletterHandler.GetNewsletter)

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
