package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"ems/internal/app/server"
	"ems/internal/platform/config"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func testConfig(dbURL string) config.Config {
	return config.Config{
		Addr:               ":0",
		DatabaseURL:        dbURL,
		Environment:        "test",
		CompanyName:        "CRZ Academic Review Pvt Ltd",
		PortalURL:          "http://localhost:3000",
		RestDays:           []time.Weekday{time.Sunday},
		EmailFrom:          "no-reply@test.local",
		EmailEnabled:       false,
		RunMigrations:      true,
		MaxConcurrentSlips: 2,
		SlipRenderTimeout:  10 * time.Second,
		AllowedOrigins:     []string{"*"},
	}
}

func startApp(t *testing.T) (*server.App, *httptest.Server) {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	app, err := server.New(context.Background(), testConfig(dbURL))
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	t.Cleanup(app.Close)

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return app, ts
}

func doJSON(t *testing.T, client *http.Client, method, url string, payload any) (int, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", "test-admin")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response from %s %s: %v", method, url, err)
	}
	return resp.StatusCode, env
}

func createEmployee(t *testing.T, client *http.Client, baseURL, email string) string {
	t.Helper()
	status, env := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/employees", map[string]any{
		"name":   "Journey Employee",
		"email":  email,
		"salary": 50000,
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating employee, got %d (%+v)", status, env.Error)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode employee: %v", err)
	}
	return created.ID
}

func TestEmployeeAttendancePayrollJourney(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()

	email := fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, email)

	// Duplicate email must conflict.
	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees", map[string]any{
		"name": "Dup", "email": email, "salary": 1,
	})
	if status != http.StatusConflict || env.Error == nil || env.Error.Code != "duplicate_email" {
		t.Fatalf("expected duplicate_email conflict, got %d %+v", status, env.Error)
	}

	// Clock in, then again: conflict.
	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/clock-in", map[string]any{"employeeId": employeeID})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 on clock-in, got %d", status)
	}
	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/clock-in", map[string]any{"employeeId": employeeID})
	if status != http.StatusConflict || env.Error.Code != "already_clocked_in" {
		t.Fatalf("expected already_clocked_in, got %d %+v", status, env.Error)
	}

	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/clock-out", map[string]any{"employeeId": employeeID})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on clock-out, got %d", status)
	}

	// Reconciled month always covers every calendar day.
	now := time.Now()
	status, env = doJSON(t, client, http.MethodGet,
		fmt.Sprintf("%s/api/v1/employees/%s/attendance?month=%d&year=%d", ts.URL, employeeID, now.Month(), now.Year()), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on attendance, got %d", status)
	}
	var rows []struct {
		Day    int    `json:"day"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	wantDays := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if len(rows) != wantDays {
		t.Fatalf("expected %d reconciled rows, got %d", wantDays, len(rows))
	}
	if rows[now.Day()-1].Status != "present" {
		t.Fatalf("expected today present after clocking in, got %q", rows[now.Day()-1].Status)
	}

	// Issue payroll, then verify the duplicate is refused.
	payPayload := map[string]any{
		"employeeId":  employeeID,
		"month":       1,
		"year":        2026,
		"basicSalary": 50000,
		"allowances":  5000,
		"deductions":  2000,
	}
	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/payroll/pay", payPayload)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 issuing payroll, got %d (%+v)", status, env.Error)
	}
	var record struct {
		NetSalary float64 `json:"netSalary"`
		PaidBy    string  `json:"paidBy"`
	}
	if err := json.Unmarshal(env.Data, &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.NetSalary != 53000 {
		t.Fatalf("expected net 53000, got %v", record.NetSalary)
	}
	if record.PaidBy != "test-admin" {
		t.Fatalf("expected actor recorded as payer, got %q", record.PaidBy)
	}

	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/payroll/pay", payPayload)
	if status != http.StatusConflict || env.Error.Code != "duplicate_issuance" {
		t.Fatalf("expected duplicate_issuance, got %d %+v", status, env.Error)
	}

	// Slip download is raw PDF, not an envelope.
	resp, err := client.Get(fmt.Sprintf("%s/api/v1/payroll/%s/1/2026/slip", ts.URL, employeeID))
	if err != nil {
		t.Fatalf("slip request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for slip, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read slip: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected PDF magic, got %q", pdf[:min(len(pdf), 8)])
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/payroll/history/"+employeeID, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for history, got %d", status)
	}
	var history []json.RawMessage
	if err := json.Unmarshal(env.Data, &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected exactly one history record, got %d", len(history))
	}
}

func TestConcurrentPayrollIssuanceStoresExactlyOneRecord(t *testing.T) {
	app, ts := startApp(t)
	client := ts.Client()

	email := fmt.Sprintf("concurrent-%d@example.com", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, email)

	payload, _ := json.Marshal(map[string]any{
		"employeeId":  employeeID,
		"month":       2,
		"year":        2026,
		"basicSalary": 40000,
	})

	const attempts = 8
	statuses := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Post(ts.URL+"/api/v1/payroll/pay", "application/json", bytes.NewReader(payload))
			if err != nil {
				return
			}
			defer resp.Body.Close()
			_, _ = io.Copy(io.Discard, resp.Body)
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	var created, conflicted int
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one successful issuance, got %d (statuses %v)", created, statuses)
	}
	if created+conflicted != attempts {
		t.Fatalf("unexpected statuses: %v", statuses)
	}

	var stored int
	err := app.DB.QueryRow(context.Background(),
		"SELECT COUNT(1) FROM payrolls WHERE employee_id = $1 AND month = 2 AND year = 2026", employeeID).Scan(&stored)
	if err != nil {
		t.Fatalf("count payrolls: %v", err)
	}
	if stored != 1 {
		t.Fatalf("expected exactly one stored record, got %d", stored)
	}
}

func TestTaskAndLeaveJourney(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()

	emailA := fmt.Sprintf("task-a-%d@example.com", time.Now().UnixNano())
	emailB := fmt.Sprintf("task-b-%d@example.com", time.Now().UnixNano())
	employeeA := createEmployee(t, client, ts.URL, emailA)
	employeeB := createEmployee(t, client, ts.URL, emailB)

	// Fan-out: valid assignees get tasks, the unknown one is reported failed.
	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/tasks", map[string]any{
		"title":      "Prepare review report",
		"assignedTo": []string{employeeA, employeeB, "00000000-0000-0000-0000-000000000000"},
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 assigning tasks, got %d (%+v)", status, env.Error)
	}
	var assignment struct {
		Created []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"created"`
		Failed []string `json:"failed"`
	}
	if err := json.Unmarshal(env.Data, &assignment); err != nil {
		t.Fatalf("decode assignment: %v", err)
	}
	if len(assignment.Created) != 2 || len(assignment.Failed) != 1 {
		t.Fatalf("expected 2 created and 1 failed, got %+v", assignment)
	}

	status, env = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/tasks/"+assignment.Created[0].ID+"/status",
		map[string]any{"status": "completed"})
	if status != http.StatusOK {
		t.Fatalf("expected 200 updating task, got %d (%+v)", status, env.Error)
	}

	status, env = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/tasks/"+assignment.Created[0].ID+"/status",
		map[string]any{"status": "done"})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid task status, got %d", status)
	}

	// Leave request and decision.
	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leaves", map[string]any{
		"employeeId": employeeA,
		"leaveType":  "casual",
		"startDate":  "2026-09-01",
		"endDate":    "2026-09-03",
		"reason":     "family event",
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 requesting leave, got %d (%+v)", status, env.Error)
	}
	var request struct {
		ID   string `json:"id"`
		Days int    `json:"days"`
	}
	if err := json.Unmarshal(env.Data, &request); err != nil {
		t.Fatalf("decode leave: %v", err)
	}
	if request.Days != 3 {
		t.Fatalf("expected 3 inclusive days, got %d", request.Days)
	}

	status, env = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/leaves/"+request.ID+"/decision",
		map[string]any{"decision": "approved"})
	if status != http.StatusOK {
		t.Fatalf("expected 200 deciding leave, got %d (%+v)", status, env.Error)
	}
	var decided struct {
		Status    string `json:"status"`
		DecidedBy string `json:"decidedBy"`
	}
	if err := json.Unmarshal(env.Data, &decided); err != nil {
		t.Fatalf("decode decision: %v", err)
	}
	if decided.Status != "approved" || decided.DecidedBy != "test-admin" {
		t.Fatalf("unexpected decision: %+v", decided)
	}

	// A second decision on the same request must conflict.
	status, env = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/leaves/"+request.ID+"/decision",
		map[string]any{"decision": "declined"})
	if status != http.StatusConflict || env.Error.Code != "already_decided" {
		t.Fatalf("expected already_decided, got %d %+v", status, env.Error)
	}
}

func TestMeetingJourney(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()

	email := fmt.Sprintf("meeting-%d@example.com", time.Now().UnixNano())
	employeeID := createEmployee(t, client, ts.URL, email)

	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/meetings", map[string]any{
		"title":        "Quarterly review",
		"description":  "Planning and retrospectives",
		"scheduledAt":  "2026-09-10T14:00:00Z",
		"participants": []string{employeeID},
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 scheduling meeting, got %d (%+v)", status, env.Error)
	}
	var created struct {
		ID        string `json:"id"`
		CreatedBy string `json:"createdBy"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode meeting: %v", err)
	}
	if created.CreatedBy != "test-admin" {
		t.Fatalf("expected actor recorded as organizer, got %q", created.CreatedBy)
	}

	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/meetings", map[string]any{
		"title": "No time set",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing scheduledAt, got %d", status)
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/meetings", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 listing meetings, got %d", status)
	}
	var meetings []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &meetings); err != nil {
		t.Fatalf("decode meetings: %v", err)
	}
	found := false
	for _, m := range meetings {
		if m.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected scheduled meeting in list")
	}
}

func TestHealthAndHolidays(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()

	resp, err := client.Get(ts.URL + "/healthz")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz failed: %v %v", err, resp)
	}
	resp.Body.Close()

	resp, err = client.Get(ts.URL + "/readyz")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz failed: %v %v", err, resp)
	}
	resp.Body.Close()

	status, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/holidays", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for holidays, got %d", status)
	}
	if !strings.HasPrefix(string(env.Data), "[") {
		t.Fatalf("expected holiday list, got %s", env.Data)
	}
}
