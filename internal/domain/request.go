package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the closed set of aid request lifecycle states.
type Status string

const (
	StatusAwaitingVolunteer Status = "AwaitingVolunteer"
	StatusInProgress        Status = "InProgress"
	StatusDone              Status = "Done"
	StatusCancelled         Status = "Cancelled"
)

// ParseStatus converts external input into a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.TrimSpace(s)); st {
	case StatusAwaitingVolunteer, StatusInProgress, StatusDone, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: status must be one of %s, %s, %s, %s", ErrValidation,
			StatusAwaitingVolunteer, StatusInProgress, StatusDone, StatusCancelled)
	}
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// Priority is the closed set of request priorities.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority converts external input into a Priority. Empty input yields PriorityMedium.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.TrimSpace(s)); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: priority must be one of %s, %s, %s", ErrValidation,
			PriorityLow, PriorityMedium, PriorityHigh)
	}
}

// AidRequest is a single request for help owned by a requester.
type AidRequest struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	RequesterID int64     `json:"requester_id"`
	VolunteerID *int64    `json:"volunteer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      *float64  `json:"budget"`
	Priority    Priority  `json:"priority"`
	City        *string   `json:"city"`
	Region      string    `json:"region"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AssignedTo reports whether the request is assigned to the given volunteer.
func (r AidRequest) AssignedTo(volunteerID int64) bool {
	return r.VolunteerID != nil && *r.VolunteerID == volunteerID
}

// RequestView is an aid request joined with its category and participants.
type RequestView struct {
	AidRequest
	CategoryName   string  `json:"category_name"`
	RequesterName  string  `json:"requester_name"`
	RequesterEmail string  `json:"requester_email,omitempty"`
	VolunteerName  *string `json:"volunteer_name"`
	VolunteerEmail *string `json:"volunteer_email,omitempty"`
}

const (
	MaxTitleLength = 200
	// MaxBudget is the exclusive upper bound of a numeric(10,2) budget.
	MaxBudget = 1e8
)

// RequestInput carries the editable fields of an aid request.
type RequestInput struct {
	CategoryID  int64
	Title       string
	Description string
	Budget      *float64
	Priority    string
	City        *string
	Region      string
}

// RequestFields is a validated RequestInput.
type RequestFields struct {
	CategoryID  int64
	Title       string
	Description string
	Budget      *float64
	Priority    Priority
	City        *string
	Region      string
}

// Validate checks required fields and normalises place names.
func (in RequestInput) Validate() (RequestFields, error) {
	out := RequestFields{
		CategoryID:  in.CategoryID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Budget:      in.Budget,
		City:        NormalizePlacePtr(in.City),
		Region:      NormalizePlace(in.Region),
	}
	if out.CategoryID <= 0 || out.Title == "" || out.Description == "" || out.Region == "" {
		return RequestFields{}, fmt.Errorf("%w: category_id, title, description and region are required", ErrValidation)
	}
	if utf8.RuneCountInString(out.Title) > MaxTitleLength {
		return RequestFields{}, fmt.Errorf("%w: title exceeds %d characters", ErrValidation, MaxTitleLength)
	}
	if err := checkLength("region", out.Region, MaxPlaceLength); err != nil {
		return RequestFields{}, err
	}
	if out.City != nil {
		if err := checkLength("city", *out.City, MaxPlaceLength); err != nil {
			return RequestFields{}, err
		}
	}
	if out.Budget != nil && (*out.Budget < 0 || *out.Budget >= MaxBudget) {
		return RequestFields{}, fmt.Errorf("%w: budget must be between 0 and %.2f", ErrValidation, MaxBudget-0.01)
	}
	p, err := ParsePriority(in.Priority)
	if err != nil {
		return RequestFields{}, err
	}
	out.Priority = p
	return out, nil
}

// RequestFilter narrows request listings. Zero values mean "any".
type RequestFilter struct {
	CategoryID  int64
	Status      Status
	Region      string
	RequesterID int64
	VolunteerID int64
}

// NormalizePlace trims and title-cases a region or city name.
func NormalizePlace(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// NormalizePlacePtr is NormalizePlace for optional values; blank input yields nil.
func NormalizePlacePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := NormalizePlace(*s)
	if v == "" {
		return nil
	}
	return &v
}
