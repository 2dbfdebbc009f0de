package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anjiri1684/tuition_tracker/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// withLocation swaps the process location for one test. Attendance days
// are keyed on server-local midnight, so some tests pin the server to a
// specific zone.
func withLocation(t *testing.T, loc *time.Location) {
	t.Helper()
	old := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = old })
}

// setupTestDB opens a private in-memory SQLite database migrated with
// the full schema. TranslateError is on, same as production, so the
// duplicate-key paths behave identically.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.User{}, &models.Student{}, &models.Attendance{}, &models.Payment{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// setupTestApp wires every resource route the way cmd/api does, minus
// the JWT middleware, which is not under test here.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	app := fiber.New()

	sh := NewStudentHandler(db)
	app.Post("/api/students", sh.CreateStudent)
	app.Get("/api/students", sh.ListStudents)
	app.Get("/api/students/:id", sh.GetStudent)
	app.Put("/api/students/:id", sh.UpdateStudent)
	app.Delete("/api/students/:id", sh.DeleteStudent)

	ah := NewAttendanceHandler(db)
	app.Post("/api/attendance", ah.MarkAttendance)
	app.Get("/api/attendance", ah.ListAttendance)
	app.Get("/api/attendance/today/summary", ah.TodaySummary)
	app.Get("/api/attendance/:studentId", ah.GetStudentAttendance)

	ph := NewPaymentHandler(db)
	app.Post("/api/payments", ph.RecordPayment)
	app.Get("/api/payments", ph.ListPayments)
	app.Get("/api/payments/summary/monthly", ph.MonthlySummary)
	app.Get("/api/payments/student/:studentId", ph.GetStudentPayments)
	app.Put("/api/payments/:id", ph.UpdatePayment)
	app.Delete("/api/payments/:id", ph.DeletePayment)

	dh := NewDashboardHandler(db)
	app.Get("/api/dashboard/stats", dh.GetStats)

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createStudent(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/api/students", fiber.Map{
		"name":    name,
		"email":   email,
		"phone":   "0712000000",
		"address": "Nairobi",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create student %s: got status %d", email, resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &body)
	return body.ID
}
