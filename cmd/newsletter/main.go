// cmd/newsletter/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tanach-study/email-automation/internal/config"
	"github.com/tanach-study/email-automation/internal/db"
	"github.com/tanach-study/email-automation/internal/model"
	"github.com/tanach-study/email-automation/internal/pipeline"
	"github.com/tanach-study/email-automation/internal/program"
	"github.com/tanach-study/email-automation/internal/repository"
)

type listFlags []string

func (l *listFlags) String() string { return strings.Join(*l, ",") }

func (l *listFlags) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var (
		programID   = flag.String("program", "", "study program to send ("+strings.Join(program.IDs(), ", ")+")")
		dateStr     = flag.String("date", "", "schedule date, YYYY-MM-DD")
		senderName  = flag.String("sender-name", "", "sender display name")
		senderEmail = flag.String("sender-email", "", "sender email address")
		replyTo     = flag.String("reply-to", "", "reply-to email (defaults to sender email)")
		lists       listFlags
	)
	flag.Var(&lists, "list", "contact list id to send to (repeatable)")
	flag.Parse()

	if *programID == "" || *dateStr == "" {
		fmt.Fprintln(os.Stderr, "both -program and -date are required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	prog, err := program.Resolve(*programID)
	if err != nil {
		log.Fatal(err)
	}

	date, err := time.Parse("2006-01-02", *dateStr)
	if err != nil {
		log.Fatalf("invalid -date %q, expected YYYY-MM-DD", *dateStr)
	}

	rc, err := model.NewRunContext(prog, date, lists, *senderName, *senderEmail, *replyTo)
	if err != nil {
		log.Fatal(err)
	}

	// Run history is optional for the CLI; a missing DATABASE_URL just
	// skips recording.
	var recorder pipeline.Recorder
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Println("⚠️ run history disabled:", err)
		} else {
			defer conn.Close()
			recorder = &repository.NewsletterRunRepository{DB: conn}
		}
	}

	p := pipeline.New(cfg, recorder)

	res, err := p.Run(context.Background(), rc)
	if err != nil {
		log.Fatal("❌ newsletter run failed: ", err)
	}

	log.Printf("✅ campaign %s (%q) scheduled for %s", res.CampaignID, res.Subject, res.ScheduledFor)
}
