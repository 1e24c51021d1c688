package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"upfreelance/internal/app"
	"upfreelance/internal/config"
	"upfreelance/internal/pkg/jwt"
	"upfreelance/internal/storage/memory"
	"upfreelance/internal/validation"

	"github.com/gofiber/fiber/v3"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	schema, err := validation.NewRegistry()
	if err != nil {
		t.Fatalf("compile schemas: %v", err)
	}

	c := &app.Container{
		Config: config.Config{
			App: config.AppConfig{AppName: "upfreelance-test", Environment: "test", HTTPPort: "0"},
		},
		Logger: log.New(io.Discard, "", 0),
		Store:  memory.New(),
		JWT:    jwt.NewHMACService("test-access", "test-refresh", 15*time.Minute, 24*time.Hour),
		Schema: schema,
	}

	return app.New(c).Fiber
}

func doJSON(t *testing.T, a *fiber.App, method, path string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	out := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp, out
}

func registerAlice(t *testing.T, a *fiber.App) map[string]json.RawMessage {
	t.Helper()

	resp, body := doJSON(t, a, "POST", "/api/auth/register", map[string]any{
		"username":  "alice",
		"password":  "s3cret",
		"email":     "alice@example.com",
		"firstName": "Alice",
		"lastName":  "Doe",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d, body = %v", resp.StatusCode, body)
	}
	return body
}

func TestRegisterAndLogin(t *testing.T) {
	a := newTestApp(t)

	body := registerAlice(t, a)

	var usr map[string]json.RawMessage
	if err := json.Unmarshal(body["user"], &usr); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if string(usr["username"]) != `"alice"` {
		t.Errorf("username = %s", usr["username"])
	}
	if _, ok := usr["password"]; ok {
		t.Errorf("password leaked in register response")
	}
	if len(body["accessToken"]) == 0 || len(body["refreshToken"]) == 0 {
		t.Errorf("missing tokens in register response")
	}

	// Duplicate username is a 400 with the taken message.
	resp, dup := doJSON(t, a, "POST", "/api/auth/register", map[string]any{
		"username":  "alice",
		"password":  "other",
		"email":     "alice2@example.com",
		"firstName": "Alice",
		"lastName":  "Doe",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("duplicate register status = %d", resp.StatusCode)
	}
	if string(dup["message"]) != `"Username already exists"` {
		t.Errorf("duplicate message = %s", dup["message"])
	}

	resp, _ = doJSON(t, a, "POST", "/api/auth/login", map[string]any{
		"username": "alice", "password": "s3cret",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("login status = %d", resp.StatusCode)
	}

	resp, failed := doJSON(t, a, "POST", "/api/auth/login", map[string]any{
		"username": "alice", "password": "wrong",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("bad login status = %d", resp.StatusCode)
	}
	if string(failed["message"]) != `"Invalid credentials"` {
		t.Errorf("bad login message = %s", failed["message"])
	}
}

func TestRegisterValidation(t *testing.T) {
	a := newTestApp(t)

	resp, body := doJSON(t, a, "POST", "/api/auth/register", map[string]any{
		"username": "bob",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	msg := string(body["message"])
	for _, field := range []string{"password", "email", "firstName", "lastName"} {
		if !bytes.Contains([]byte(msg), []byte(field)) {
			t.Errorf("message %s does not name missing field %q", msg, field)
		}
	}
}

func TestMeRequiresToken(t *testing.T) {
	a := newTestApp(t)

	body := registerAlice(t, a)

	resp, _ := doJSON(t, a, "GET", "/api/me", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("unauthenticated /api/me status = %d", resp.StatusCode)
	}

	var token string
	if err := json.Unmarshal(body["accessToken"], &token); err != nil {
		t.Fatalf("decode token: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp2, err := a.Test(req)
	if err != nil {
		t.Fatalf("GET /api/me: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != fiber.StatusOK {
		t.Fatalf("authenticated /api/me status = %d", resp2.StatusCode)
	}
}

func TestSkillsPagination(t *testing.T) {
	a := newTestApp(t)

	for i := 1; i <= 8; i++ {
		resp, _ := doJSON(t, a, "POST", "/api/skills", map[string]any{
			"name": fmt.Sprintf("skill-%d", i),
		})
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("create skill %d status = %d", i, resp.StatusCode)
		}
	}

	resp, body := doJSON(t, a, "GET", "/api/skills?page=2&limit=3", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}

	var skills []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body["skills"], &skills); err != nil {
		t.Fatalf("decode skills: %v", err)
	}
	if len(skills) != 3 || skills[0].Name != "skill-4" {
		t.Errorf("page 2 = %+v", skills)
	}
	if string(body["total"]) != "8" {
		t.Errorf("total = %s", body["total"])
	}

	// A duplicate skill name is rejected.
	resp, dup := doJSON(t, a, "POST", "/api/skills", map[string]any{"name": "Skill-1"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("duplicate skill status = %d, body %v", resp.StatusCode, dup)
	}
}

func TestUserSkillLinks(t *testing.T) {
	a := newTestApp(t)

	registerAlice(t, a)

	resp, created := doJSON(t, a, "POST", "/api/skills", map[string]any{"name": "React"})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create skill status = %d", resp.StatusCode)
	}
	var sk struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(created["skill"], &sk); err != nil {
		t.Fatalf("decode skill: %v", err)
	}

	resp, msg := doJSON(t, a, "POST", "/api/users/1/skills", map[string]any{"skillId": sk.ID})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("add skill status = %d", resp.StatusCode)
	}
	if string(msg["message"]) != `"Skill added to user"` {
		t.Errorf("add skill message = %s", msg["message"])
	}

	// Missing skillId in the body.
	resp, msg = doJSON(t, a, "POST", "/api/users/1/skills", map[string]any{})
	if resp.StatusCode != fiber.StatusBadRequest || string(msg["message"]) != `"Skill ID is required"` {
		t.Errorf("missing skillId: status = %d message = %s", resp.StatusCode, msg["message"])
	}

	resp, listed := doJSON(t, a, "GET", "/api/users/1/skills", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list user skills status = %d", resp.StatusCode)
	}
	var skills []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(listed["skills"], &skills); err != nil {
		t.Fatalf("decode user skills: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "React" {
		t.Errorf("user skills = %+v", skills)
	}
}

func TestExperiencesSortedByStartDate(t *testing.T) {
	a := newTestApp(t)

	registerAlice(t, a)

	for _, start := range []string{"2022-06-01T00:00:00Z", "2023-01-01T00:00:00Z"} {
		resp, body := doJSON(t, a, "POST", "/api/users/1/experiences", map[string]any{
			"title":     "Engineer",
			"company":   "Acme",
			"startDate": start,
		})
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("create experience status = %d body = %v", resp.StatusCode, body)
		}
	}

	resp, body := doJSON(t, a, "GET", "/api/users/1/experiences", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var items []struct {
		StartDate time.Time `json:"startDate"`
	}
	if err := json.Unmarshal(body["experiences"], &items); err != nil {
		t.Fatalf("decode experiences: %v", err)
	}
	if len(items) != 2 || !items[0].StartDate.After(items[1].StartDate) {
		t.Errorf("experiences not sorted most recent first: %+v", items)
	}
}

func TestInvalidUserIDParam(t *testing.T) {
	a := newTestApp(t)

	resp, body := doJSON(t, a, "GET", "/api/users/abc", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if string(body["message"]) != `"Invalid user ID"` {
		t.Errorf("message = %s", body["message"])
	}

	resp, body = doJSON(t, a, "GET", "/api/users/999", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("missing user status = %d", resp.StatusCode)
	}
	if string(body["message"]) != `"User not found"` {
		t.Errorf("message = %s", body["message"])
	}
}

func TestGenerateProposal(t *testing.T) {
	a := newTestApp(t)

	resp, body := doJSON(t, a, "POST", "/api/generate-proposal", map[string]any{
		"jobDescription": "Build a React storefront",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d body = %v", resp.StatusCode, body)
	}
	if string(body["message"]) != `"Proposal generated successfully"` {
		t.Errorf("message = %s", body["message"])
	}
	var text string
	if err := json.Unmarshal(body["proposal"], &text); err != nil {
		t.Fatalf("decode proposal: %v", err)
	}
	if !bytes.HasPrefix([]byte(text), []byte("Dear Hiring Manager,")) {
		t.Errorf("proposal = %q", text)
	}

	resp, body = doJSON(t, a, "POST", "/api/generate-proposal", map[string]any{})
	if resp.StatusCode != fiber.StatusBadRequest || string(body["message"]) != `"Job description is required"` {
		t.Errorf("missing description: status = %d message = %s", resp.StatusCode, body["message"])
	}
}

func TestOCRUnconfigured(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/ocr/extract", nil)
	resp, err := a.Test(req)
	if err != nil {
		t.Fatalf("POST /api/ocr/extract: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)

	resp, body := doJSON(t, a, "GET", "/health", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if string(body["status"]) != `"ok"` {
		t.Errorf("status field = %s", body["status"])
	}
}
