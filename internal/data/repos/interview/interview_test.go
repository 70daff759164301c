package interview

import (
	"testing"

	"github.com/yungbote/routinely-backend/internal/data/repos/testutil"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	interviewdomain "github.com/yungbote/routinely-backend/internal/domain/interview"
)

func TestInterviewRepoFilters(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := testutil.Ctx(tx)
	repo := NewInterviewRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, dbc.Ctx, tx, "jobs@example.com")
	applied := calendar.New(2024, 2, 1)

	created, err := repo.Create(dbc, []*types.Interview{
		{UserID: u.ID, CompanyName: "Acme", Role: "SWE", ApplicationDate: &applied},
		{UserID: u.ID, CompanyName: "Globex", Role: "SRE", Status: interviewdomain.StatusOffer, Priority: interviewdomain.PriorityHigh},
		{UserID: u.ID, CompanyName: "Initech", Role: "PM", Status: interviewdomain.StatusOffer, Priority: interviewdomain.PriorityLow},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created[0].Status != interviewdomain.StatusApplied || created[0].Priority != interviewdomain.PriorityMedium {
		t.Fatalf("Create: defaults not applied: %+v", created[0])
	}

	all, err := repo.ListByUserFiltered(dbc, u.ID, types.InterviewFilter{})
	if err != nil {
		t.Fatalf("ListByUserFiltered: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered: expected 3, got %d", len(all))
	}

	offers, err := repo.ListByUserFiltered(dbc, u.ID, types.InterviewFilter{Status: interviewdomain.StatusOffer})
	if err != nil {
		t.Fatalf("ListByUserFiltered status: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("status filter: expected 2, got %d", len(offers))
	}

	both, err := repo.ListByUserFiltered(dbc, u.ID, types.InterviewFilter{Status: interviewdomain.StatusOffer, Priority: interviewdomain.PriorityHigh})
	if err != nil {
		t.Fatalf("ListByUserFiltered both: %v", err)
	}
	if len(both) != 1 || both[0].CompanyName != "Globex" {
		t.Fatalf("combined filter: unexpected result %+v", both)
	}

	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ApplicationDate == nil || !got.ApplicationDate.Equal(applied) {
		t.Fatalf("GetByID: application date round trip got %v", got.ApplicationDate)
	}
	if got.FollowUpDate != nil {
		t.Fatalf("GetByID: follow up date should stay null")
	}
}
