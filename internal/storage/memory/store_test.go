package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"upfreelance/internal/domain/job"
	"upfreelance/internal/domain/profile"
	"upfreelance/internal/domain/proposal"
	"upfreelance/internal/domain/skill"
	"upfreelance/internal/domain/user"
)

func seedUser(t *testing.T, s *Store, username string) user.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), user.Insert{
		Username:  username,
		Password:  "hash",
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return u
}

func TestCreateUser_AssignsSequentialIDs(t *testing.T) {
	s := New()
	a := seedUser(t, s, "alice")
	b := seedUser(t, s, "bob")

	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be stamped")
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := New()
	seedUser(t, s, "alice")

	_, err := s.CreateUser(context.Background(), user.Insert{
		Username: "alice", Password: "x", Email: "other@example.com",
		FirstName: "A", LastName: "B",
	})
	if !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	_, err = s.CreateUser(context.Background(), user.Insert{
		Username: "carol", Password: "x", Email: "alice@example.com",
		FirstName: "A", LastName: "B",
	})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Uniqueness is case-insensitive: "Alice" is the same account name.
	_, err = s.CreateUser(context.Background(), user.Insert{
		Username: "Alice", Password: "x", Email: "upper@example.com",
		FirstName: "A", LastName: "B",
	})
	if !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken for case variant, got %v", err)
	}
	_, err = s.CreateUser(context.Background(), user.Insert{
		Username: "dave", Password: "x", Email: "ALICE@example.com",
		FirstName: "A", LastName: "B",
	})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken for case variant, got %v", err)
	}
}

func TestCreateUser_ConcurrentRegisterKeepsOne(t *testing.T) {
	s := New()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateUser(context.Background(), user.Insert{
				Username: "alice", Password: "x",
				Email:     fmt.Sprintf("a%d@example.com", i),
				FirstName: "A", LastName: "B",
			})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else if !errors.Is(err, user.ErrUsernameTaken) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one successful register, got %d", ok)
	}
}

func TestUpdateUser_PatchLeavesIDAndCreatedAt(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := created
	s := NewWithClock(func() time.Time { return clock })

	u := seedUser(t, s, "alice")
	clock = created.Add(time.Hour)

	title := "Backend Engineer"
	got, err := s.UpdateUser(context.Background(), u.ID, user.Patch{ProfessionalTitle: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("id changed on update")
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("createdAt changed on update")
	}
	if !got.UpdatedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("updatedAt not refreshed, got %v", got.UpdatedAt)
	}
	if got.ProfessionalTitle == nil || *got.ProfessionalTitle != title {
		t.Fatalf("patched field not applied")
	}
	if got.Username != "alice" {
		t.Fatalf("untouched field changed")
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	s := New()
	name := "x"
	_, err := s.UpdateUser(context.Background(), 99, user.Patch{FirstName: &name})
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateSkill_RejectsDuplicateName(t *testing.T) {
	s := New()
	if _, err := s.CreateSkill(context.Background(), "React"); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := s.CreateSkill(context.Background(), "react")
	if !errors.Is(err, skill.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestListSkills_Pagination(t *testing.T) {
	s := New()
	ctx := context.Background()
	for i := 0; i < 8; i++ {
		if _, err := s.CreateSkill(ctx, fmt.Sprintf("skill-%d", i)); err != nil {
			t.Fatalf("seed skill: %v", err)
		}
	}

	page, total, err := s.ListSkills(ctx, 2, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 8 {
		t.Fatalf("expected total=8, got %d", total)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(page))
	}
	for i, sk := range page {
		want := fmt.Sprintf("skill-%d", i+3)
		if sk.Name != want {
			t.Fatalf("page[%d]: expected %s, got %s", i, want, sk.Name)
		}
	}

	empty, total, err := s.ListSkills(ctx, 5, 3)
	if err != nil {
		t.Fatalf("out-of-range list: %v", err)
	}
	if len(empty) != 0 || total != 8 {
		t.Fatalf("out-of-range page should be empty with total=8, got %d/%d", len(empty), total)
	}
}

func TestAddUserSkill_Idempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "alice")
	sk, _ := s.CreateSkill(ctx, "Go")

	if err := s.AddUserSkill(ctx, u.ID, sk.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := s.AddUserSkill(ctx, u.ID, sk.ID); err != nil {
		t.Fatalf("second add: %v", err)
	}

	skills, err := s.ListUserSkills(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected exactly one link, got %d", len(skills))
	}
}

func TestRemoveUserSkill_Idempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "alice")
	sk, _ := s.CreateSkill(ctx, "Go")

	if err := s.AddUserSkill(ctx, u.ID, sk.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.RemoveUserSkill(ctx, u.ID, sk.ID); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if err := s.RemoveUserSkill(ctx, u.ID, sk.ID); err != nil {
		t.Fatalf("second remove: %v", err)
	}

	skills, err := s.ListUserSkills(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(skills) != 0 {
		t.Fatalf("expected no links left, got %d", len(skills))
	}
}

func TestAddUserSkill_MissingReferences(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "alice")
	sk, _ := s.CreateSkill(ctx, "Go")

	if err := s.AddUserSkill(ctx, 99, sk.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}
	if err := s.AddUserSkill(ctx, u.ID, 99); !errors.Is(err, skill.ErrNotFound) {
		t.Fatalf("expected skill.ErrNotFound, got %v", err)
	}
}

func TestListUserSkills_SkipsDanglingLinks(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "alice")
	goSkill, _ := s.CreateSkill(ctx, "Go")
	reactSkill, _ := s.CreateSkill(ctx, "React")
	_ = s.AddUserSkill(ctx, u.ID, goSkill.ID)
	_ = s.AddUserSkill(ctx, u.ID, reactSkill.ID)

	if err := s.DeleteSkill(ctx, goSkill.ID); err != nil {
		t.Fatalf("delete skill: %v", err)
	}

	skills, err := s.ListUserSkills(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "React" {
		t.Fatalf("expected dangling link skipped, got %+v", skills)
	}
}

func TestListUserExperiences_SortedByStartDateDesc(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "alice")

	older := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := s.CreateExperience(ctx, u.ID, profile.ExperienceInsert{
		Title: "Junior Dev", Company: "Acme", StartDate: older,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateExperience(ctx, u.ID, profile.ExperienceInsert{
		Title: "Senior Dev", Company: "Acme", StartDate: newer,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.ListUserExperiences(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 experiences, got %d", len(got))
	}
	if !got[0].StartDate.Equal(newer) {
		t.Fatalf("expected most recent first, got %v", got[0].StartDate)
	}
}

func TestListUserEducation_MissingEndYearSortsFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "alice")

	end := 2020
	if _, err := s.CreateEducation(ctx, u.ID, profile.EducationInsert{
		Degree: "BSc", Institution: "State", StartYear: 2016, EndYear: &end,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateEducation(ctx, u.ID, profile.EducationInsert{
		Degree: "MSc", Institution: "State", StartYear: 2023,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.ListUserEducation(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Degree != "MSc" {
		t.Fatalf("expected in-progress degree first, got %+v", got)
	}
}

func TestCreateJob_OptionalDefaults(t *testing.T) {
	posted := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return posted })

	j, err := s.CreateJob(context.Background(), job.Insert{
		Title: "React Developer", Description: "Build things", PayRate: "$30-40/hr",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if j.Duration != nil || j.Location != nil || j.CompanyName != nil || j.Skills != nil {
		t.Fatalf("expected optional fields to stay null, got %+v", j)
	}
	if !j.PostedDate.Equal(posted) {
		t.Fatalf("expected postedDate to default to creation instant, got %v", j.PostedDate)
	}
}

func TestListJobs_SortedByPostedDateDesc(t *testing.T) {
	s := New()
	ctx := context.Background()

	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if _, err := s.CreateJob(ctx, job.Insert{Title: "first", Description: "d", PayRate: "$1", PostedDate: &early}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateJob(ctx, job.Insert{Title: "second", Description: "d", PayRate: "$1", PostedDate: &late}); err != nil {
		t.Fatalf("create: %v", err)
	}

	jobs, err := s.ListJobs(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 2 || jobs[0].Title != "second" {
		t.Fatalf("expected newest job first, got %+v", jobs)
	}
}

func TestCreateProposal_ReferentialChecks(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "alice")
	j, _ := s.CreateJob(ctx, job.Insert{Title: "t", Description: "d", PayRate: "$1"})

	if _, err := s.CreateProposal(ctx, proposal.Insert{UserID: 99, JobID: j.ID, Content: "c"}); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}
	if _, err := s.CreateProposal(ctx, proposal.Insert{UserID: u.ID, JobID: 99, Content: "c"}); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job.ErrNotFound, got %v", err)
	}
	if _, err := s.CreateProposal(ctx, proposal.Insert{UserID: u.ID, JobID: j.ID, Content: "c"}); err != nil {
		t.Fatalf("valid create: %v", err)
	}
}

func TestDeleteProposal_NonexistentIsNoop(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "alice")
	j, _ := s.CreateJob(ctx, job.Insert{Title: "t", Description: "d", PayRate: "$1"})
	if _, err := s.CreateProposal(ctx, proposal.Insert{UserID: u.ID, JobID: j.ID, Content: "c"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.DeleteProposal(ctx, 42); err != nil {
		t.Fatalf("deleting nonexistent proposal should not error, got %v", err)
	}
	left, _ := s.ListUserProposals(ctx, u.ID)
	if len(left) != 1 {
		t.Fatalf("store changed by nonexistent delete, %d proposals left", len(left))
	}
}
