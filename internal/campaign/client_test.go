package campaign_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tanach-study/email-automation/internal/campaign"
	appErrors "github.com/tanach-study/email-automation/internal/errors"
	"github.com/tanach-study/email-automation/internal/model"
)

func TestCreateReturnsCampaignID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/emailmarketing/campaigns" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "key123" {
			t.Errorf("missing api_key query param")
		}
		if r.Header.Get("Authorization") != "Bearer token456" {
			t.Errorf("missing bearer token")
		}
		w.Write([]byte(`{"id": "1100395600287", "status": "DRAFT"}`))
	}))
	defer srv.Close()

	c := campaign.NewClient(srv.URL, "key123", "token456", 5*time.Second)

	id, err := c.Create(context.Background(), model.CampaignRequest{Name: "EMAIL 1 test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "1100395600287" {
		t.Errorf("expected campaign id 1100395600287, got %s", id)
	}
}

func TestCreateSurfacesSinkErrorVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`[{"error_key": "query.param.invalid", "error_message": "subject must not be blank"}]`))
	}))
	defer srv.Close()

	c := campaign.NewClient(srv.URL, "key123", "token456", 5*time.Second)

	_, err := c.Create(context.Background(), model.CampaignRequest{})
	if err == nil {
		t.Fatal("expected rejection error")
	}

	rejected, ok := err.(*appErrors.ErrCampaignRejected)
	if !ok {
		t.Fatalf("expected ErrCampaignRejected, got %T: %v", err, err)
	}
	if rejected.Key != "query.param.invalid" {
		t.Errorf("expected error key passed through, got %q", rejected.Key)
	}
	if rejected.Message != "subject must not be blank" {
		t.Errorf("expected sink message verbatim, got %q", rejected.Message)
	}
}

func TestCreateFailsOnNonArrayErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid token"}`))
	}))
	defer srv.Close()

	c := campaign.NewClient(srv.URL, "key123", "expired", 5*time.Second)

	_, err := c.Create(context.Background(), model.CampaignRequest{Name: "EMAIL 1 test"})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestScheduleSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/emailmarketing/campaigns/1100395600287/schedules" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id": "1", "scheduled_date": "2024-03-14T00:00:00Z"}`))
	}))
	defer srv.Close()

	c := campaign.NewClient(srv.URL, "key123", "token456", 5*time.Second)

	err := c.Schedule(context.Background(), "1100395600287", model.ScheduleRequest{ScheduledDate: "2024-03-14T00:00:00Z"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScheduleWrapsSinkRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`[{"error_key": "campaign.not.draft", "error_message": "campaign already scheduled"}]`))
	}))
	defer srv.Close()

	c := campaign.NewClient(srv.URL, "key123", "token456", 5*time.Second)

	err := c.Schedule(context.Background(), "42", model.ScheduleRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*appErrors.ErrCampaignSchedule); !ok {
		t.Fatalf("expected ErrCampaignSchedule, got %T", err)
	}
}

func TestScheduleFailsOnNonArrayErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid token"}`))
	}))
	defer srv.Close()

	c := campaign.NewClient(srv.URL, "key123", "expired", 5*time.Second)

	err := c.Schedule(context.Background(), "42", model.ScheduleRequest{ScheduledDate: "2024-03-14T00:00:00Z"})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	sched, ok := err.(*appErrors.ErrCampaignSchedule)
	if !ok {
		t.Fatalf("expected ErrCampaignSchedule, got %T: %v", err, err)
	}
	if !strings.Contains(sched.Error(), "401") {
		t.Errorf("expected status in error, got %v", sched)
	}
}

func TestClientHonorsConfiguredTimeout(t *testing.T) {
	c := campaign.NewClient("http://sink.example.com", "key123", "token456", 7*time.Second)
	if c.HTTPClient.Timeout != 7*time.Second {
		t.Errorf("expected 7s timeout, got %v", c.HTTPClient.Timeout)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"id": "1100395600287"}`))
	}))
	defer srv.Close()

	slow := campaign.NewClient(srv.URL, "key123", "token456", 20*time.Millisecond)
	if _, err := slow.Create(context.Background(), model.CampaignRequest{}); err == nil {
		t.Error("expected timeout error from slow sink")
	}
}
