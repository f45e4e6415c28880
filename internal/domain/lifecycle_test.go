package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestLifecycleTransition(t *testing.T) {
	owner := Actor{ID: 1, Role: RoleRequester}
	stranger := Actor{ID: 2, Role: RoleRequester}
	assignee := Actor{ID: 3, Role: RoleVolunteer}
	otherVolunteer := Actor{ID: 4, Role: RoleVolunteer}
	vid := assignee.ID

	awaiting := AidRequest{RequesterID: owner.ID, Status: StatusAwaitingVolunteer}
	inProgress := AidRequest{RequesterID: owner.ID, VolunteerID: &vid, Status: StatusInProgress}
	done := AidRequest{RequesterID: owner.ID, VolunteerID: &vid, Status: StatusDone}

	tests := []struct {
		name      string
		policy    Lifecycle
		actor     Actor
		req       AidRequest
		to        Status
		wantErr   error
		alsoWants error
	}{
		{"owner cancels awaiting", DefaultLifecycle(), owner, awaiting, StatusCancelled, nil, nil},
		{"owner cancels in progress", DefaultLifecycle(), owner, inProgress, StatusCancelled, ErrForbidden, ErrInvalidTransition},
		{"owner completes in progress", DefaultLifecycle(), owner, inProgress, StatusDone, nil, nil},
		{"owner self resolves", DefaultLifecycle(), owner, awaiting, StatusDone, nil, nil},
		{"self resolve disabled", Lifecycle{}, owner, awaiting, StatusDone, ErrForbidden, ErrInvalidTransition},
		{"stranger cancels", DefaultLifecycle(), stranger, awaiting, StatusCancelled, ErrForbidden, nil},
		{"assignee completes", DefaultLifecycle(), assignee, inProgress, StatusDone, nil, nil},
		{"assignee gives up", DefaultLifecycle(), assignee, inProgress, StatusCancelled, nil, nil},
		{"other volunteer completes", DefaultLifecycle(), otherVolunteer, inProgress, StatusDone, ErrForbidden, nil},
		{"volunteer on unassigned", DefaultLifecycle(), assignee, awaiting, StatusDone, ErrForbidden, nil},
		{"terminal stays terminal", DefaultLifecycle(), assignee, done, StatusCancelled, ErrForbidden, ErrInvalidTransition},
		{"back to awaiting", DefaultLifecycle(), owner, inProgress, StatusAwaitingVolunteer, ErrForbidden, ErrInvalidTransition},
		{"unknown status", DefaultLifecycle(), owner, awaiting, Status("Archived"), ErrValidation, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Transition(tc.actor, tc.req, tc.to)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
			if tc.alsoWants != nil && !errors.Is(err, tc.alsoWants) {
				t.Fatalf("got %v, want it to also wrap %v", err, tc.alsoWants)
			}
		})
	}
}

func TestLifecycleGuards(t *testing.T) {
	var l Lifecycle
	owner := Actor{ID: 1, Role: RoleRequester}
	volunteer := Actor{ID: 3, Role: RoleVolunteer}
	vid := volunteer.ID
	awaiting := AidRequest{RequesterID: owner.ID, Status: StatusAwaitingVolunteer}
	assigned := AidRequest{RequesterID: owner.ID, VolunteerID: &vid, Status: StatusInProgress}

	if err := l.CanEdit(owner, awaiting); err != nil {
		t.Fatalf("owner edit: %v", err)
	}
	if err := l.CanEdit(owner, assigned); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("edit after assignment: got %v", err)
	}
	if err := l.CanEdit(Actor{ID: 9, Role: RoleRequester}, awaiting); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign edit: got %v", err)
	}

	if err := l.CanAssign(volunteer, awaiting); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := l.CanAssign(owner, awaiting); !errors.Is(err, ErrForbidden) {
		t.Fatalf("requester assign: got %v", err)
	}
	if err := l.CanAssign(Actor{ID: 4, Role: RoleVolunteer}, assigned); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("double assign: got %v", err)
	}
	cancelled := AidRequest{RequesterID: owner.ID, Status: StatusCancelled}
	if err := l.CanAssign(volunteer, cancelled); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("assign cancelled: got %v", err)
	}

	if err := l.CanComment(volunteer, awaiting); err != nil {
		t.Fatalf("volunteer comment on open request: %v", err)
	}
	if err := l.CanComment(Actor{ID: 4, Role: RoleVolunteer}, assigned); !errors.Is(err, ErrForbidden) {
		t.Fatalf("outsider comment: got %v", err)
	}
	if err := l.CanComment(Actor{ID: 9, Role: RoleRequester}, awaiting); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign requester comment: got %v", err)
	}
}

func TestRequestInputValidate(t *testing.T) {
	city := "  kyiv "
	out, err := RequestInput{CategoryID: 1, Title: " Food ", Description: "bread", Region: "kyivska  oblast", City: &city}.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if out.Priority != PriorityMedium || out.Title != "Food" || out.Region != "Kyivska Oblast" || *out.City != "Kyiv" {
		t.Fatalf("unexpected fields: %+v", out)
	}

	neg := -1.0
	huge := 1e9
	longCity := strings.Repeat("c", 101)
	bad := []RequestInput{
		{Title: "x", Description: "y", Region: "r"},
		{CategoryID: 1, Description: "y", Region: "r"},
		{CategoryID: 1, Title: "x", Description: "y"},
		{CategoryID: 1, Title: "x", Description: "y", Region: "r", Budget: &neg},
		{CategoryID: 1, Title: "x", Description: "y", Region: "r", Priority: "Urgent"},
		{CategoryID: 1, Title: "x", Description: "y", Region: strings.Repeat("r", 101)},
		{CategoryID: 1, Title: "x", Description: "y", Region: "r", City: &longCity},
		{CategoryID: 1, Title: "x", Description: "y", Region: "r", Budget: &huge},
	}
	for i, in := range bad {
		if _, err := in.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d: got %v, want validation error", i, err)
		}
	}
}

func TestProfileUpdateValidate(t *testing.T) {
	ok := ProfileUpdate{Name: "Anna", Phone: strPtr("+380501112233")}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	bad := []ProfileUpdate{
		{},
		{Name: strings.Repeat("n", MaxNameLength+1)},
		{Name: "Anna", Phone: strPtr(strings.Repeat("1", MaxPhoneLength+1))},
		{Name: "Anna", Address: strPtr(strings.Repeat("a", MaxAddressLength+1))},
		{Name: "Anna", City: strPtr(strings.Repeat("c", MaxPlaceLength+1))},
	}
	for i, in := range bad {
		if err := in.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d: got %v, want validation error", i, err)
		}
	}
	// limits count characters, not bytes
	if err := (ProfileUpdate{Name: strings.Repeat("ї", MaxNameLength)}).Validate(); err != nil {
		t.Fatalf("cyrillic name at limit: %v", err)
	}
}

func strPtr(s string) *string { return &s }
