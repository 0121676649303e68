package repository

import (
    "database/sql"
    "fmt"
    "time"

    appErrors "github.com/tanach-study/email-automation/internal/errors"
    "github.com/tanach-study/email-automation/internal/model"
)

type NewsletterRunRepositoryInterface interface {
    Create(run *model.NewsletterRun) error
    Update(run *model.NewsletterRun) error
    GetByID(id int) (*model.NewsletterRun, error)
    List(offset, limit int, program, status string) ([]*model.NewsletterRun, int, error)
}

type NewsletterRunRepository struct {
    DB *sql.DB
}

func (r *NewsletterRunRepository) Create(run *model.NewsletterRun) error {
    run.CreatedAt = time.Now()
    if run.Status == "" {
        run.Status = "pending"
    }
    query := `
        INSERT INTO newsletter_runs (program, schedule_date, campaign_id, campaign_name, subject, status, last_error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
    return r.DB.QueryRow(query, run.Program, run.ScheduleDate, run.CampaignID, run.CampaignName,
        run.Subject, run.Status, run.LastError, run.CreatedAt).Scan(&run.ID)
}

func (r *NewsletterRunRepository) Update(run *model.NewsletterRun) error {
    query := `
        UPDATE newsletter_runs
        SET campaign_id=$1, campaign_name=$2, subject=$3, status=$4, last_error=$5, updated_at=NOW()
        WHERE id=$6
    `
    _, err := r.DB.Exec(query, run.CampaignID, run.CampaignName, run.Subject, run.Status, run.LastError, run.ID)
    return err
}

func (r *NewsletterRunRepository) GetByID(id int) (*model.NewsletterRun, error) {
    query := `
        SELECT id, program, schedule_date, campaign_id, campaign_name, subject, status, last_error, created_at, updated_at
        FROM newsletter_runs WHERE id=$1
    `
    var run model.NewsletterRun
    err := r.DB.QueryRow(query, id).Scan(&run.ID, &run.Program, &run.ScheduleDate, &run.CampaignID,
        &run.CampaignName, &run.Subject, &run.Status, &run.LastError, &run.CreatedAt, &run.UpdatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewRunNotFound(id)
        }
        return nil, err
    }
    return &run, nil
}

func (r *NewsletterRunRepository) List(offset, limit int, program, status string) ([]*model.NewsletterRun, int, error) {
    runs := []*model.NewsletterRun{}
    query := `SELECT id, program, schedule_date, campaign_id, campaign_name, subject, status, last_error, created_at, updated_at FROM newsletter_runs WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if program != "" {
        query += fmt.Sprintf(" AND program=$%d", argPos)
        args = append(args, program)
        argPos++
    }
    if status != "" {
        query += fmt.Sprintf(" AND status=$%d", argPos)
        args = append(args, status)
        argPos++
    }

    query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        run := &model.NewsletterRun{}
        if err := rows.Scan(&run.ID, &run.Program, &run.ScheduleDate, &run.CampaignID, &run.CampaignName,
            &run.Subject, &run.Status, &run.LastError, &run.CreatedAt, &run.UpdatedAt); err != nil {
            return nil, 0, err
        }
        runs = append(runs, run)
    }

    countQuery := `SELECT COUNT(*) FROM newsletter_runs WHERE 1=1`
    countArgs := []interface{}{}
    countPos := 1
    if program != "" {
        countQuery += fmt.Sprintf(" AND program=$%d", countPos)
        countArgs = append(countArgs, program)
        countPos++
    }
    if status != "" {
        countQuery += fmt.Sprintf(" AND status=$%d", countPos)
        countArgs = append(countArgs, status)
    }

    var total int
    if err := r.DB.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return runs, total, nil
}

var _ NewsletterRunRepositoryInterface = (*NewsletterRunRepository)(nil)
