package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/tanach-study/email-automation/internal/errors"
	"github.com/tanach-study/email-automation/internal/handler"
	"github.com/tanach-study/email-automation/internal/model"
	"github.com/tanach-study/email-automation/internal/queue"
)

// MockRunRepo keeps runs in memory.
type MockRunRepo struct {
	runs   map[int]*model.NewsletterRun
	nextID int
}

func NewMockRunRepo() *MockRunRepo {
	return &MockRunRepo{runs: map[int]*model.NewsletterRun{}, nextID: 1}
}

func (m *MockRunRepo) Create(run *model.NewsletterRun) error {
	run.ID = m.nextID
	m.nextID++
	run.CreatedAt = time.Now()
	m.runs[run.ID] = run
	return nil
}

func (m *MockRunRepo) Update(run *model.NewsletterRun) error {
	m.runs[run.ID] = run
	return nil
}

func (m *MockRunRepo) GetByID(id int) (*model.NewsletterRun, error) {
	run, ok := m.runs[id]
	if !ok {
		return nil, appErrors.NewRunNotFound(id)
	}
	return run, nil
}

func (m *MockRunRepo) List(offset, limit int, program, status string) ([]*model.NewsletterRun, int, error) {
	all := []*model.NewsletterRun{}
	for _, run := range m.runs {
		all = append(all, run)
	}
	return all, len(all), nil
}

func validSendBody() map[string]interface{} {
	return map[string]interface{}{
		"program":      "tanach",
		"date":         "2024-03-14",
		"list_ids":     []string{"111"},
		"sender_name":  "Tanach Study",
		"sender_email": "news@tanachstudy.org",
	}
}

func TestSendNewsletterQueuesJob(t *testing.T) {
	repo := NewMockRunRepo()
	q := queue.NewInMemoryQueue()

	jobCh := make(chan queue.SendJob, 1)
	q.Consume(queue.SendNewslettersQueue, func(body []byte) error {
		var job queue.SendJob
		if err := json.Unmarshal(body, &job); err != nil {
			t.Error("invalid job body:", err)
			return nil
		}
		jobCh <- job
		return nil
	})

	h := &handler.NewsletterHandler{Repo: repo, Queue: q}

	b, _ := json.Marshal(validSendBody())
	req := httptest.NewRequest("POST", "/newsletters/send", bytes.NewReader(b))
	w := httptest.NewRecorder()

	h.SendNewsletter(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		RunID  int    `json:"run_id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Status != "queued" {
		t.Errorf("expected status queued, got %q", res.Status)
	}

	select {
	case job := <-jobCh:
		if job.Program != "tanach" || job.Date != "2024-03-14" {
			t.Errorf("unexpected job: %+v", job)
		}
		if job.RunID != res.RunID {
			t.Errorf("job run id %d should match response %d", job.RunID, res.RunID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("job never reached the queue")
	}

	run, err := repo.GetByID(res.RunID)
	if err != nil {
		t.Fatalf("expected run recorded: %v", err)
	}
	if run.Status != "pending" {
		t.Errorf("expected pending run, got %q", run.Status)
	}
}

func TestSendNewsletterRejectsUnknownProgram(t *testing.T) {
	h := &handler.NewsletterHandler{Repo: NewMockRunRepo(), Queue: queue.NewInMemoryQueue()}

	body := validSendBody()
	body["program"] = "daf-yomi"
	b, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	h.SendNewsletter(w, httptest.NewRequest("POST", "/newsletters/send", bytes.NewReader(b)))

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Result().StatusCode)
	}
}

func TestSendNewsletterRejectsEmptyLists(t *testing.T) {
	h := &handler.NewsletterHandler{Repo: NewMockRunRepo(), Queue: queue.NewInMemoryQueue()}

	body := validSendBody()
	body["list_ids"] = []string{}
	b, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	h.SendNewsletter(w, httptest.NewRequest("POST", "/newsletters/send", bytes.NewReader(b)))

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Result().StatusCode)
	}
}

func TestGetNewsletter(t *testing.T) {
	repo := NewMockRunRepo()
	repo.Create(&model.NewsletterRun{Program: "tanach", Status: "scheduled"})

	h := &handler.NewsletterHandler{Repo: repo, Queue: queue.NewInMemoryQueue()}

	r := chi.NewRouter()
	r.Get("/newsletters/{id}", h.GetNewsletter)

	// Found
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/newsletters/1", nil))
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Result().StatusCode)
	}

	var run model.NewsletterRun
	if err := json.NewDecoder(w.Result().Body).Decode(&run); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if run.Program != "tanach" {
		t.Errorf("expected tanach run, got %q", run.Program)
	}

	// Missing
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/newsletters/99", nil))
	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Result().StatusCode)
	}
}

func TestListNewslettersPagination(t *testing.T) {
	repo := NewMockRunRepo()
	repo.Create(&model.NewsletterRun{Program: "tanach", Status: "scheduled"})
	repo.Create(&model.NewsletterRun{Program: "mishna", Status: "failed"})

	h := &handler.NewsletterHandler{Repo: repo, Queue: queue.NewInMemoryQueue()}

	w := httptest.NewRecorder()
	h.ListNewsletters(w, httptest.NewRequest("GET", "/newsletters?page=1&page_size=10", nil))

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Result().StatusCode)
	}

	var res struct {
		Data       []model.NewsletterRun `json:"data"`
		Pagination struct {
			Page       int `json:"page"`
			PageSize   int `json:"page_size"`
			TotalCount int `json:"total_count"`
			TotalPages int `json:"total_pages"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(res.Data) != 2 {
		t.Errorf("expected 2 runs, got %d", len(res.Data))
	}
	if res.Pagination.TotalCount != 2 || res.Pagination.TotalPages != 1 {
		t.Errorf("unexpected pagination: %+v", res.Pagination)
	}
}
