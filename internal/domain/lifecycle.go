package domain

import "fmt"

// Lifecycle decides which actors may move an aid request between states.
//
//	AwaitingVolunteer -> InProgress -> Done
//	AwaitingVolunteer -> Cancelled
//	InProgress        -> Cancelled
//
// Done and Cancelled are terminal. The AwaitingVolunteer -> InProgress edge is
// taken only by assignment (CanAssign), never by Transition.
type Lifecycle struct {
	// AllowSelfResolve lets the owner mark a request Done before any volunteer
	// has been assigned.
	AllowSelfResolve bool
}

// DefaultLifecycle returns the production policy.
func DefaultLifecycle() Lifecycle {
	return Lifecycle{AllowSelfResolve: true}
}

// Transition reports whether actor may change req to status to. Attempts by
// anyone but the owner or the assignee fail with ErrForbidden; status changes
// outside the transition table fail with ErrInvalidTransition, also wrapped
// in ErrForbidden.
func (l Lifecycle) Transition(actor Actor, req AidRequest, to Status) error {
	if _, err := ParseStatus(string(to)); err != nil {
		return err
	}
	switch actor.Role {
	case RoleRequester:
		if req.RequesterID != actor.ID {
			return fmt.Errorf("%w: only the owner may change the status of this request", ErrForbidden)
		}
		return l.requesterMove(req.Status, to)
	case RoleVolunteer:
		if !req.AssignedTo(actor.ID) {
			return fmt.Errorf("%w: only the assigned volunteer may change the status of this request", ErrForbidden)
		}
		return volunteerMove(req.Status, to)
	default:
		return fmt.Errorf("%w: unknown role %q", ErrForbidden, actor.Role)
	}
}

func (l Lifecycle) requesterMove(from, to Status) error {
	switch to {
	case StatusCancelled:
		if from == StatusAwaitingVolunteer {
			return nil
		}
	case StatusDone:
		switch from {
		case StatusInProgress:
			return nil
		case StatusAwaitingVolunteer:
			if l.AllowSelfResolve {
				return nil
			}
		case StatusDone, StatusCancelled:
		}
	case StatusAwaitingVolunteer, StatusInProgress:
	}
	return deniedMove(RoleRequester, from, to)
}

func volunteerMove(from, to Status) error {
	switch to {
	case StatusDone, StatusCancelled:
		if from == StatusInProgress {
			return nil
		}
	case StatusAwaitingVolunteer, StatusInProgress:
	}
	return deniedMove(RoleVolunteer, from, to)
}

func deniedMove(role Role, from, to Status) error {
	return fmt.Errorf("%w: %w: %s may not move a request from %s to %s", ErrForbidden, ErrInvalidTransition, role, from, to)
}

// CanEdit reports whether actor may change the structural fields of req.
// Status is checked before ownership so that edits after assignment always
// report ErrInvalidTransition.
func (Lifecycle) CanEdit(actor Actor, req AidRequest) error {
	if req.Status != StatusAwaitingVolunteer {
		return fmt.Errorf("%w: only requests awaiting a volunteer can be edited", ErrInvalidTransition)
	}
	if actor.Role != RoleRequester || req.RequesterID != actor.ID {
		return fmt.Errorf("%w: only the owner may edit this request", ErrForbidden)
	}
	return nil
}

// CanAssign reports whether actor may take req.
func (Lifecycle) CanAssign(actor Actor, req AidRequest) error {
	if actor.Role != RoleVolunteer {
		return fmt.Errorf("%w: only volunteers can take requests", ErrForbidden)
	}
	if req.VolunteerID != nil {
		return fmt.Errorf("%w: request is already assigned to a volunteer", ErrAlreadyAssigned)
	}
	if req.Status != StatusAwaitingVolunteer {
		return fmt.Errorf("%w: only requests awaiting a volunteer can be taken", ErrInvalidTransition)
	}
	return nil
}

// CanComment reports whether actor may add a comment to req: the owner, the
// assignee, or any volunteer while the request still awaits one.
func (Lifecycle) CanComment(actor Actor, req AidRequest) error {
	switch actor.Role {
	case RoleRequester:
		if req.RequesterID == actor.ID {
			return nil
		}
	case RoleVolunteer:
		if req.AssignedTo(actor.ID) || req.Status == StatusAwaitingVolunteer {
			return nil
		}
	}
	return fmt.Errorf("%w: you may not comment on this request", ErrForbidden)
}
