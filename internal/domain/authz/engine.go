package authz

import (
	"context"
	"time"

	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/entity"
	"parkplan/internal/errors"
)

// Action is one of the four operations the policy gates. List operations
// evaluate as reads.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Request carries everything one policy evaluation needs: who is acting, on
// what, and the before/after document states.
type Request struct {
	Collection string    // Top-level collection name, e.g. CollectionVacations.
	Action     Action    // The attempted operation.
	Identity   *Identity // The authenticated caller. Nil means anonymous.
	ResourceID string    // Document ID within the collection.
	VacationID string    // Parent vacation scope, when the collection has one.
	Old        Document  // Stored state. Nil on create.
	New        Document  // Proposed state. Nil on read and delete.
	Now        time.Time // Evaluation time, injected for testability.
}

// Authorizer is the single authorization-check interface every service calls
// before touching storage.
type Authorizer interface {
	// CanPerform returns nil when the request is permitted. Any denial,
	// including not-found during resolution, returns
	// domainerrors.ErrPermissionDenied.
	CanPerform(ctx context.Context, req *Request) error
}

// ruleFunc evaluates one collection/action gate. A false result or an
// ErrNotResolved error both deny the request.
type ruleFunc func(ctx context.Context, e *Engine, req *Request) (bool, error)

// collectionPolicy is the declarative per-collection rule set: structural
// constraints plus one gate per action. A nil gate denies the action.
type collectionPolicy struct {
	requiredKeys []string // Keys every create must carry.
	immutable    []string // Keys no update may change.
	read         ruleFunc
	create       ruleFunc
	update       ruleFunc
	delete       ruleFunc
}

// Engine evaluates the access policy. It holds the rule table and the
// resolver used for vacation and membership dereferences.
type Engine struct {
	resolver MembershipResolver
	rules    map[string]*collectionPolicy
}

// NewEngine creates a policy engine backed by the given resolver.
func NewEngine(resolver MembershipResolver) *Engine {
	return &Engine{
		resolver: resolver,
		rules:    buildRuleTable(),
	}
}

// CanPerform evaluates the policy for one request. Collections without an
// entry in the rule table are denied outright, as is any action whose gate
// is nil. Structural checks (size ceiling, timestamp sanity, required keys,
// immutable fields, per-document write interval) run before the gate.
func (e *Engine) CanPerform(ctx context.Context, req *Request) error {
	policy, ok := e.rules[req.Collection]
	if !ok {
		return domainerrors.ErrPermissionDenied
	}

	if req.Action == ActionCreate || req.Action == ActionUpdate {
		if !e.writeShapeValid(policy, req) {
			return domainerrors.ErrPermissionDenied
		}
	}

	var gate ruleFunc
	switch req.Action {
	case ActionRead:
		gate = policy.read
	case ActionCreate:
		gate = policy.create
	case ActionUpdate:
		gate = policy.update
	case ActionDelete:
		gate = policy.delete
	}
	if gate == nil {
		return domainerrors.ErrPermissionDenied
	}

	allowed, err := gate(ctx, e, req)
	if err != nil {
		if errors.Is(err, ErrNotResolved) {
			return domainerrors.ErrPermissionDenied
		}

		return errors.Wrap(err, "evaluate policy")
	}
	if !allowed {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}

// writeShapeValid runs the structural checks shared by every create and
// update: document size, timestamp sanity, required keys, immutable fields
// and the per-document write interval.
func (e *Engine) writeShapeValid(policy *collectionPolicy, req *Request) bool {
	if req.New == nil || !WithinSizeLimit(req.New) {
		return false
	}

	for _, key := range []string{"createdAt", "updatedAt", "joinedAt"} {
		if _, present := req.New[key]; !present {
			continue
		}
		t, ok := req.New.GetTime(key)
		if !ok || !ValidTimestamp(t) || t.After(req.Now) {
			return false
		}
	}

	switch req.Action {
	case ActionCreate:
		if !req.New.Has(policy.requiredKeys...) {
			return false
		}
	case ActionUpdate:
		if req.Old == nil {
			return false
		}
		if !Unchanged(req.Old, req.New, policy.immutable...) {
			return false
		}
		if !WriteIntervalElapsed(req.Old, req.Now) {
			return false
		}
	}

	return true
}

// isVacationOwner dereferences the vacation and compares its owner to the
// caller. A missing vacation resolves to false.
func (e *Engine) isVacationOwner(ctx context.Context, vacationID string, ident *Identity) (bool, error) {
	if !ident.SignedIn() || vacationID == "" {
		return false, nil
	}

	facts, err := e.resolver.ResolveVacation(ctx, vacationID)
	if err != nil {
		if errors.Is(err, ErrNotResolved) {
			return false, nil
		}

		return false, err
	}

	return ident.IsOwner(facts.OwnerID), nil
}

// isVacationMember checks for the caller's membership row in the vacation.
func (e *Engine) isVacationMember(ctx context.Context, vacationID string, ident *Identity) (bool, error) {
	if !ident.SignedIn() || vacationID == "" {
		return false, nil
	}

	_, err := e.resolver.ResolveMembership(ctx, vacationID, ident.UID)
	if err != nil {
		if errors.Is(err, ErrNotResolved) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// hasPermission dereferences the caller's membership row and reads one
// capability flag. Owners hold every permission implicitly.
func (e *Engine) hasPermission(ctx context.Context, vacationID string, ident *Identity, pick func(entity.PermissionSet) bool) (bool, error) {
	if !ident.SignedIn() || vacationID == "" {
		return false, nil
	}

	facts, err := e.resolver.ResolveMembership(ctx, vacationID, ident.UID)
	if err != nil {
		if errors.Is(err, ErrNotResolved) {
			return false, nil
		}

		return false, err
	}
	if facts.Role == entity.MemberRoleOwner {
		return true, nil
	}

	return pick(facts.Permissions), nil
}

// canEditVacation is the three-way OR gating every plan mutation: vacation
// owner, a member holding editItinerary, or an admin.
func (e *Engine) canEditVacation(ctx context.Context, vacationID string, ident *Identity) (bool, error) {
	if ident.IsAdmin() {
		return true, nil
	}

	owner, err := e.isVacationOwner(ctx, vacationID, ident)
	if err != nil || owner {
		return owner, err
	}

	return e.hasPermission(ctx, vacationID, ident, func(p entity.PermissionSet) bool {
		return p.EditItinerary
	})
}

// canManageBudget gates expense writes: vacation owner, a member holding
// manageBudget, or an admin.
func (e *Engine) canManageBudget(ctx context.Context, vacationID string, ident *Identity) (bool, error) {
	if ident.IsAdmin() {
		return true, nil
	}

	return e.hasPermission(ctx, vacationID, ident, func(p entity.PermissionSet) bool {
		return p.ManageBudget
	})
}

// vacationReadable is the read gate shared by the whole vacation tree:
// members always, any signed-in user when the vacation is public, staff
// always.
func (e *Engine) vacationReadable(ctx context.Context, vacationID string, ident *Identity) (bool, error) {
	if !ident.SignedIn() {
		return false, nil
	}
	if ident.IsStaff() {
		return true, nil
	}

	member, err := e.isVacationMember(ctx, vacationID, ident)
	if err != nil || member {
		return member, err
	}

	facts, err := e.resolver.ResolveVacation(ctx, vacationID)
	if err != nil {
		if errors.Is(err, ErrNotResolved) {
			return false, nil
		}

		return false, err
	}

	return facts.IsPublic, nil
}
