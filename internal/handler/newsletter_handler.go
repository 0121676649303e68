// internal/handler/newsletter_handler.go
package handler

import (
    "encoding/json"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/tanach-study/email-automation/internal/errors"
    "github.com/tanach-study/email-automation/internal/model"
    "github.com/tanach-study/email-automation/internal/program"
    "github.com/tanach-study/email-automation/internal/queue"
    "github.com/tanach-study/email-automation/internal/repository"
)

// NewsletterHandler holds the dependencies for newsletter HTTP handlers.
type NewsletterHandler struct {
    Repo  repository.NewsletterRunRepositoryInterface
    Queue queue.Queue
}

// SendNewsletter validates a send request, records a pending run, and
// enqueues the job for the worker. The pipeline itself never runs inside
// the request cycle.
func (h *NewsletterHandler) SendNewsletter(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Program     string   `json:"program"`
        Date        string   `json:"date"`
        ListIDs     []string `json:"list_ids"`
        SenderName  string   `json:"sender_name"`
        SenderEmail string   `json:"sender_email"`
        ReplyTo     string   `json:"reply_to"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    prog, err := program.Resolve(body.Program)
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    date, err := time.Parse("2006-01-02", body.Date)
    if err != nil {
        http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
        return
    }

    // Same validation the CLI applies before a run starts.
    if _, err := model.NewRunContext(prog, date, body.ListIDs, body.SenderName, body.SenderEmail, body.ReplyTo); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    run := &model.NewsletterRun{
        Program:      prog.ID,
        ScheduleDate: date,
        Status:       "pending",
    }
    if err := h.Repo.Create(run); err != nil {
        http.Error(w, "failed to record run: "+err.Error(), http.StatusInternalServerError)
        return
    }

    job := queue.SendJob{
        RunID:       run.ID,
        Program:     body.Program,
        Date:        body.Date,
        ListIDs:     body.ListIDs,
        SenderName:  body.SenderName,
        SenderEmail: body.SenderEmail,
        ReplyTo:     body.ReplyTo,
    }
    jobBytes, err := json.Marshal(job)
    if err != nil {
        log.Println("⚠️ failed to encode send job:", err)
        http.Error(w, "failed to encode send job", http.StatusInternalServerError)
        return
    }

    if err := h.Queue.Publish(queue.SendNewslettersQueue, jobBytes); err != nil {
        log.Println("⚠️ failed to enqueue send job:", err)
        http.Error(w, "failed to enqueue send job", http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "run_id": run.ID,
        "status": "queued",
    })
}

// ListNewsletters returns a paginated list of recorded runs.
func (h *NewsletterHandler) ListNewsletters(w http.ResponseWriter, r *http.Request) {
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))
    pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    prog := r.URL.Query().Get("program")
    status := r.URL.Query().Get("status")

    runs, total, err := h.Repo.List(offset, pageSize, prog, status)
    if err != nil {
        http.Error(w, "failed to fetch runs: "+err.Error(), http.StatusInternalServerError)
        return
    }

    totalPages := (total + pageSize - 1) / pageSize

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "data": runs,
        "pagination": map[string]int{
            "page":        page,
            "page_size":   pageSize,
            "total_count": total,
            "total_pages": totalPages,
        },
    })
}

// GetNewsletter returns one recorded run by id.
func (h *NewsletterHandler) GetNewsletter(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid run id", http.StatusBadRequest)
        return
    }

    run, err := h.Repo.GetByID(id)
    if err != nil {
        if _, ok := err.(*appErrors.ErrRunNotFound); ok {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch run: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(run)
}
