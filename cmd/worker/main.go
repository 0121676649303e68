// cmd/worker/main.go
package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/tanach-study/email-automation/internal/config"
	"github.com/tanach-study/email-automation/internal/db"
	"github.com/tanach-study/email-automation/internal/model"
	"github.com/tanach-study/email-automation/internal/pipeline"
	"github.com/tanach-study/email-automation/internal/program"
	"github.com/tanach-study/email-automation/internal/queue"
	"github.com/tanach-study/email-automation/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for the worker")
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to DB: ", err)
	}
	defer conn.Close()

	runRepo := &repository.NewsletterRunRepository{DB: conn}

	q, err := queue.NewAMQPQueue(cfg.AMQPURL)
	if err != nil {
		log.Fatal("failed to connect to RabbitMQ: ", err)
	}
	defer q.Close()

	p := pipeline.New(cfg, runRepo)

	err = q.Consume(queue.SendNewslettersQueue, func(body []byte) error {
		var job queue.SendJob
		if err := json.Unmarshal(body, &job); err != nil {
			log.Println("Invalid job:", err)
			return nil // drop, no retry
		}
		return processJob(p, runRepo, job)
	})
	if err != nil {
		log.Fatal("failed to start consumer: ", err)
	}

	log.Println("Worker running, waiting for messages...")

	forever := make(chan bool)
	<-forever
}

// processJob runs the full pipeline for one queued send job. A returned
// error triggers the queue's redelivery, which re-executes the whole run;
// malformed jobs are marked failed and never retried.
func processJob(p *pipeline.Pipeline, repo *repository.NewsletterRunRepository, job queue.SendJob) error {
	prog, err := program.Resolve(job.Program)
	if err != nil {
		markJobFailed(repo, job.RunID, err)
		return nil
	}

	date, err := time.Parse("2006-01-02", job.Date)
	if err != nil {
		markJobFailed(repo, job.RunID, err)
		return nil
	}

	rc, err := model.NewRunContext(prog, date, job.ListIDs, job.SenderName, job.SenderEmail, job.ReplyTo)
	if err != nil {
		markJobFailed(repo, job.RunID, err)
		return nil
	}

	var run *model.NewsletterRun
	if job.RunID != 0 {
		run, err = repo.GetByID(job.RunID)
		if err != nil {
			log.Println("⚠️ failed to fetch run record:", err)
			run = nil
		}
	}

	res, err := p.RunRecorded(context.Background(), rc, run)
	if err != nil {
		log.Println("❌ newsletter run failed:", err)
		return err
	}

	log.Printf("✅ campaign %s (%q) scheduled for %s", res.CampaignID, res.Subject, res.ScheduledFor)
	return nil
}

func markJobFailed(repo *repository.NewsletterRunRepository, runID int, cause error) {
	log.Println("⚠️ dropping invalid job:", cause)
	if runID == 0 {
		return
	}
	run, err := repo.GetByID(runID)
	if err != nil {
		log.Println("⚠️ failed to fetch run record:", err)
		return
	}
	run.Status = "failed"
	run.LastError = cause.Error()
	if err := repo.Update(run); err != nil {
		log.Println("⚠️ failed to update run record:", err)
	}
}
