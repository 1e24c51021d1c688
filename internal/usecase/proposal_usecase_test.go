package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"upfreelance/internal/domain/user"
	"upfreelance/internal/infrastructure/assist"
	"upfreelance/internal/storage/memory"
)

type stubAssist struct {
	proposal string
	err      error
	called   bool
}

func (s *stubAssist) GenerateProposal(ctx context.Context, in assist.GenerateRequest) (string, error) {
	s.called = true
	return s.proposal, s.err
}

func (s *stubAssist) ExtractText(ctx context.Context, filename string, file []byte) (assist.OCRResult, error) {
	return assist.OCRResult{}, errors.New("not implemented")
}

func newProposalUsecase(t *testing.T, client assist.Client) (*Proposal, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewProposalUsecase(store, store, client), store
}

func TestGenerateProposalRequiresDescription(t *testing.T) {
	u, _ := newProposalUsecase(t, nil)
	if _, err := u.GenerateProposal(context.Background(), GenerateInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateProposalTemplateFallback(t *testing.T) {
	u, _ := newProposalUsecase(t, nil)

	text, err := u.GenerateProposal(context.Background(), GenerateInput{
		JobDescription: "Build a React dashboard for analytics",
	})
	if err != nil {
		t.Fatalf("GenerateProposal: %v", err)
	}
	if !strings.HasPrefix(text, "Dear Hiring Manager,") {
		t.Errorf("template missing greeting:\n%s", text)
	}
	if !strings.Contains(text, "Build a React dashbo...") {
		t.Errorf("template missing truncated description:\n%s", text)
	}
	if !strings.Contains(text, "React development") {
		t.Errorf("React description should pick React focus:\n%s", text)
	}
}

func TestGenerateProposalTemplateMultibyteHeading(t *testing.T) {
	u, _ := newProposalUsecase(t, nil)

	// 25 runes, 3 bytes each; a byte-indexed cut would split a rune.
	desc := strings.Repeat("日本語の案件", 5)
	text, err := u.GenerateProposal(context.Background(), GenerateInput{JobDescription: desc})
	if err != nil {
		t.Fatalf("GenerateProposal: %v", err)
	}
	if !utf8.ValidString(text) {
		t.Fatalf("proposal contains invalid UTF-8:\n%s", text)
	}
	want := string([]rune(desc)[:20]) + "..."
	if !strings.Contains(text, want) {
		t.Errorf("heading not cut on rune boundary, want %q in:\n%s", want, text)
	}
}

func TestGenerateProposalTemplateNonReact(t *testing.T) {
	u, _ := newProposalUsecase(t, nil)

	text, err := u.GenerateProposal(context.Background(), GenerateInput{
		JobDescription: "Build a Django backend",
	})
	if err != nil {
		t.Fatalf("GenerateProposal: %v", err)
	}
	if !strings.Contains(text, "web development.") {
		t.Errorf("non-React description should pick the generic focus:\n%s", text)
	}
}

func TestGenerateProposalSignsWithUserName(t *testing.T) {
	u, store := newProposalUsecase(t, nil)

	created, err := store.CreateUser(context.Background(), user.Insert{
		Username: "alice", Password: "x", Email: "alice@example.com",
		FirstName: "Alice", LastName: "Doe",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	text, err := u.GenerateProposal(context.Background(), GenerateInput{
		JobDescription: "Build a landing page",
		UserID:         created.ID,
	})
	if err != nil {
		t.Fatalf("GenerateProposal: %v", err)
	}
	if !strings.HasSuffix(text, "Alice Doe") {
		t.Errorf("proposal should be signed with the user's name:\n%s", text)
	}
}

func TestGenerateProposalPrefersSidecar(t *testing.T) {
	stub := &stubAssist{proposal: "sidecar proposal"}
	u, _ := newProposalUsecase(t, stub)

	text, err := u.GenerateProposal(context.Background(), GenerateInput{JobDescription: "anything"})
	if err != nil {
		t.Fatalf("GenerateProposal: %v", err)
	}
	if !stub.called {
		t.Fatalf("sidecar was not called")
	}
	if text != "sidecar proposal" {
		t.Errorf("text = %q, want sidecar output", text)
	}
}

func TestGenerateProposalSidecarErrorFallsBack(t *testing.T) {
	stub := &stubAssist{err: errors.New("boom")}
	u, _ := newProposalUsecase(t, stub)

	text, err := u.GenerateProposal(context.Background(), GenerateInput{JobDescription: "anything"})
	if err != nil {
		t.Fatalf("GenerateProposal: %v", err)
	}
	if !strings.HasPrefix(text, "Dear Hiring Manager,") {
		t.Errorf("expected template fallback, got:\n%s", text)
	}
}
