package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Revanth0912/Job-Select-AI/internal/models"
	"github.com/Revanth0912/Job-Select-AI/internal/repositories"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendInterviewInvitation(_ context.Context, recipient, _, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, recipient)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *fakeMailer) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Candidate{}, &models.JobMatch{}))

	candidateRepo := repositories.NewCandidateRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	mailer := &fakeMailer{}

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/dashboard", NewDashboardHandler(matchRepo).HandleDashboard)
	api.Get("/scores/:candidateID/:jobTitle", NewScoreHandler(candidateRepo, matchRepo).HandleGetScores)
	api.Post("/matches/status", NewStatusHandler(matchRepo).HandleUpdateStatus)
	api.Post("/emails/interview", NewEmailHandler(mailer).HandleSendInterviewEmail)

	return app, db, mailer
}

func seedMatch(t *testing.T, db *gorm.DB, email string, matches []models.JobMatch) *models.Candidate {
	t.Helper()

	candidate, err := repositories.NewCandidateRepository(db).UpsertByEmail(&models.Candidate{
		Name:       "Jane Doe",
		Email:      email,
		Skills:     "aws,ci/cd,docker",
		ResumePath: "/resumes/" + email + ".txt",
	})
	require.NoError(t, err)
	require.NoError(t, repositories.NewMatchRepository(db).ReplaceForCandidate(candidate.ID, matches))
	return candidate
}

func TestDashboardListsBestMatches(t *testing.T) {
	app, db, _ := newTestApp(t)
	seedMatch(t, db, "jane@example.com", []models.JobMatch{
		{JobTitle: "DevOps Engineer", BaseScore: 30, WeightedScore: 5.2, Status: models.StatusPending, LastUpdated: time.Now()},
		{JobTitle: "Cloud Architect", BaseScore: 10, WeightedScore: 1.8, Status: models.StatusPending, LastUpdated: time.Now()},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload models.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	require.Len(t, payload.Matches, 1)
	assert.Equal(t, "DevOps Engineer", payload.Matches[0].JobTitle)
	assert.Equal(t, "jane@example.com", payload.Matches[0].Email)
	assert.ElementsMatch(t, []string{"Cloud Architect", "DevOps Engineer"}, payload.JobTitles)
	assert.Equal(t, "all", payload.SelectedJob)
}

func TestDashboardMinScoreFilter(t *testing.T) {
	app, db, _ := newTestApp(t)
	seedMatch(t, db, "jane@example.com", []models.JobMatch{
		{JobTitle: "DevOps Engineer", BaseScore: 30, WeightedScore: 5.2, Status: models.StatusPending, LastUpdated: time.Now()},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/dashboard?min_score=50", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload models.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Empty(t, payload.Matches)
	assert.Equal(t, 50.0, payload.MinScore)
}

func TestScoreDetail(t *testing.T) {
	app, db, _ := newTestApp(t)
	candidate := seedMatch(t, db, "jane@example.com", []models.JobMatch{
		{
			JobTitle:      "DevOps Engineer",
			BaseScore:     30,
			WeightedScore: 5.2,
			MatchedSkills: "aws,docker,ci/cd",
			MissingSkills: "kubernetes,terraform,ansible,linux,bash scripting,monitoring,cloud computing",
			Status:        models.StatusPending,
			LastUpdated:   time.Now(),
		},
	})

	path := fmt.Sprintf("/api/v1/scores/%d/%s", candidate.ID, url.PathEscape("DevOps Engineer"))
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload models.ScoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 30.0, payload.BaseScore)
	assert.Equal(t, []string{"aws", "docker", "ci/cd"}, payload.MatchedSkills)
	assert.Len(t, payload.MissingSkills, 7)
}

func TestScoreDetailUnknownCandidate(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/scores/42/Unknown%20Role", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Candidate not found", payload["error"])
}

func TestScoreDetailUnknownRole(t *testing.T) {
	app, db, _ := newTestApp(t)
	candidate := seedMatch(t, db, "jane@example.com", []models.JobMatch{
		{JobTitle: "DevOps Engineer", BaseScore: 30, WeightedScore: 5.2, Status: models.StatusPending, LastUpdated: time.Now()},
	})

	path := fmt.Sprintf("/api/v1/scores/%d/Unknown%%20Role", candidate.ID)
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Match not found", payload["error"])
}

func TestUpdateStatusEndpoint(t *testing.T) {
	app, db, _ := newTestApp(t)
	candidate := seedMatch(t, db, "jane@example.com", []models.JobMatch{
		{JobTitle: "DevOps Engineer", BaseScore: 30, WeightedScore: 5.2, Status: models.StatusPending, LastUpdated: time.Now()},
	})

	matchRepo := repositories.NewMatchRepository(db)
	match, err := matchRepo.FindByCandidateAndTitle(candidate.ID, "DevOps Engineer")
	require.NoError(t, err)

	form := url.Values{}
	form.Set("match_id", fmt.Sprint(match.ID))
	form.Set("status", models.StatusInterviewing)
	req := httptest.NewRequest("POST", "/api/v1/matches/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated, err := matchRepo.FindByID(match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInterviewing, updated.Status)
}

func TestUpdateStatusUnknownMatchReportsNotice(t *testing.T) {
	app, _, _ := newTestApp(t)

	form := url.Values{}
	form.Set("match_id", "99999")
	form.Set("status", models.StatusReviewed)
	req := httptest.NewRequest("POST", "/api/v1/matches/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestSendInterviewEmail(t *testing.T) {
	app, _, mailer := newTestApp(t)

	form := url.Values{}
	form.Set("candidate_email", "jane@example.com")
	form.Set("candidate_name", "Jane Doe")
	form.Set("job_title", "DevOps Engineer")
	form.Set("interview_date", "2026-09-15")
	form.Set("interview_time", "10:00")
	req := httptest.NewRequest("POST", "/api/v1/emails/interview", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"jane@example.com"}, mailer.sent)
}

func TestSendInterviewEmailFailureIsReported(t *testing.T) {
	app, _, mailer := newTestApp(t)
	mailer.err = fmt.Errorf("smtp unreachable")

	form := url.Values{}
	form.Set("candidate_email", "jane@example.com")
	form.Set("job_title", "DevOps Engineer")
	req := httptest.NewRequest("POST", "/api/v1/emails/interview", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestSendInterviewEmailMissingRecipient(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/emails/interview", strings.NewReader("job_title=DevOps"))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
