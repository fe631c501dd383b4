package authz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/entity"
)

// stubResolver serves vacation and membership facts from in-memory maps.
type stubResolver struct {
	vacations   map[string]*VacationFacts
	memberships map[string]*MembershipFacts
}

func (s *stubResolver) ResolveVacation(_ context.Context, vacationID string) (*VacationFacts, error) {
	facts, ok := s.vacations[vacationID]
	if !ok {
		return nil, ErrNotResolved
	}

	return facts, nil
}

func (s *stubResolver) ResolveMembership(_ context.Context, vacationID, uid string) (*MembershipFacts, error) {
	facts, ok := s.memberships[vacationID+"/"+uid]
	if !ok {
		return nil, ErrNotResolved
	}

	return facts, nil
}

var testNow = time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC)

func freshTimestamps() (createdAt, updatedAt time.Time) {
	return testNow.Add(-time.Hour), testNow.Add(-time.Minute)
}

// newTestEngine builds an engine around vacation "vac-1" owned by alice,
// with bob holding the given membership (nil for non-member).
func newTestEngine(public bool, bob *MembershipFacts) *Engine {
	resolver := &stubResolver{
		vacations: map[string]*VacationFacts{
			"vac-1": {OwnerID: "alice", IsPublic: public},
		},
		memberships: map[string]*MembershipFacts{
			"vac-1/alice": {Role: entity.MemberRoleOwner, Permissions: entity.OwnerPermissions()},
		},
	}
	if bob != nil {
		resolver.memberships["vac-1/bob"] = bob
	}

	return NewEngine(resolver)
}

func signedIn(uid string) *Identity {
	return &Identity{UID: uid, Email: uid + "@example.com", EmailVerified: true}
}

func messageDoc(sender string) Document {
	createdAt, updatedAt := freshTimestamps()

	return Document{
		"vacationId": "vac-1",
		"senderId":   sender,
		"body":       "meet at the castle",
		"edited":     false,
		"createdAt":  createdAt,
		"updatedAt":  updatedAt,
	}
}

func TestCanPerform_DefaultDeny(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, nil)

	err := engine.CanPerform(context.Background(), &Request{
		Collection: "unknownCollection",
		Action:     ActionRead,
		Identity:   signedIn("alice"),
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCanPerform_CreateMissingRequiredKeyDenied(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, nil)
	doc := messageDoc("alice")
	delete(doc, "body")

	err := engine.CanPerform(context.Background(), &Request{
		Collection: CollectionMessages,
		Action:     ActionCreate,
		Identity:   signedIn("alice"),
		VacationID: "vac-1",
		New:        doc,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCanPerform_ImmutableFieldChangeDenied(t *testing.T) {
	t.Parallel()

	// Alice owns the vacation, so she has full write access. Changing the
	// identity-establishing field must still be denied.
	engine := newTestEngine(false, nil)

	createdAt, updatedAt := freshTimestamps()
	old := Document{
		"name": "Spring Break", "destination": "Orlando",
		"startDate": "2026-05-01", "endDate": "2026-05-08",
		"status": "planning", "createdBy": "alice",
		"createdAt": createdAt, "updatedAt": updatedAt,
	}
	updated := Document{}
	for k, v := range old {
		updated[k] = v
	}
	updated["createdBy"] = "mallory"

	err := engine.CanPerform(context.Background(), &Request{
		Collection: CollectionVacations,
		Action:     ActionUpdate,
		Identity:   signedIn("alice"),
		ResourceID: "vac-1",
		Old:        old,
		New:        updated,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	// The same update without the field change is permitted.
	updated["createdBy"] = "alice"
	updated["name"] = "Renamed Trip"
	err = engine.CanPerform(context.Background(), &Request{
		Collection: CollectionVacations,
		Action:     ActionUpdate,
		Identity:   signedIn("alice"),
		ResourceID: "vac-1",
		Old:        old,
		New:        updated,
		Now:        testNow,
	})
	assert.NoError(t, err)
}

func TestCanPerform_NonMemberReadDeniedUnlessPublic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	carol := signedIn("carol")

	private := newTestEngine(false, nil)
	for _, collection := range []string{CollectionMessages, CollectionItineraries, CollectionMembers} {
		err := private.CanPerform(ctx, &Request{
			Collection: collection,
			Action:     ActionRead,
			Identity:   carol,
			VacationID: "vac-1",
			Now:        testNow,
		})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied, collection)
	}

	public := newTestEngine(true, nil)
	for _, collection := range []string{CollectionMessages, CollectionItineraries, CollectionMembers} {
		err := public.CanPerform(ctx, &Request{
			Collection: collection,
			Action:     ActionRead,
			Identity:   carol,
			VacationID: "vac-1",
			Now:        testNow,
		})
		assert.NoError(t, err, collection)
	}

	// Public grants read only, never write.
	err := public.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionCreate,
		Identity:   carol,
		VacationID: "vac-1",
		New:        messageDoc("carol"),
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCanPerform_WriteIntervalBackstop(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, nil)
	ctx := context.Background()
	alice := signedIn("alice")

	old := messageDoc("alice")
	old["updatedAt"] = testNow.Add(-300 * time.Millisecond)

	updated := Document{}
	for k, v := range old {
		updated[k] = v
	}
	updated["body"] = "meet at the castle at noon"
	updated["edited"] = true
	updated["updatedAt"] = testNow.Add(-time.Millisecond)

	// Second write within one second of the last is denied.
	err := engine.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionUpdate,
		Identity:   alice,
		VacationID: "vac-1",
		Old:        old,
		New:        updated,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	// The same write after the window is accepted.
	old["updatedAt"] = testNow.Add(-2 * time.Second)
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionUpdate,
		Identity:   alice,
		VacationID: "vac-1",
		Old:        old,
		New:        updated,
		Now:        testNow,
	})
	assert.NoError(t, err)
}

func TestCanPerform_OversizeDocumentDenied(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, nil)
	doc := messageDoc("alice")
	body := make([]byte, MaxDocumentBytes+1)
	for i := range body {
		body[i] = 'a'
	}
	doc["body"] = string(body)

	err := engine.CanPerform(context.Background(), &Request{
		Collection: CollectionMessages,
		Action:     ActionCreate,
		Identity:   signedIn("alice"),
		VacationID: "vac-1",
		New:        doc,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCanPerform_UpdateIdempotent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, nil)
	ctx := context.Background()
	alice := signedIn("alice")

	createdAt, _ := freshTimestamps()
	old := Document{
		"vacationId": "vac-1", "userId": "alice", "date": "2026-05-02",
		"parkId": "magic-kingdom", "notes": "",
		"createdAt": createdAt, "updatedAt": testNow.Add(-10 * time.Second),
	}
	updated := Document{}
	for k, v := range old {
		updated[k] = v
	}
	updated["notes"] = "rope drop"
	updated["updatedAt"] = testNow.Add(-2 * time.Second)

	req := &Request{
		Collection: CollectionItineraries,
		Action:     ActionUpdate,
		Identity:   alice,
		ResourceID: "itin-1",
		VacationID: "vac-1",
		Old:        old,
		New:        updated,
		Now:        testNow,
	}
	require.NoError(t, engine.CanPerform(ctx, req))

	// Replaying the identical payload with a fresh updatedAt succeeds again.
	replayOld := updated
	replayNew := Document{}
	for k, v := range updated {
		replayNew[k] = v
	}
	replayNew["updatedAt"] = testNow.Add(-500 * time.Millisecond)

	err := engine.CanPerform(ctx, &Request{
		Collection: CollectionItineraries,
		Action:     ActionUpdate,
		Identity:   alice,
		ResourceID: "itin-1",
		VacationID: "vac-1",
		Old:        replayOld,
		New:        replayNew,
		Now:        testNow,
	})
	assert.NoError(t, err)
}

func TestCanPerform_EditorLifecycleScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bob := signedIn("bob")

	// Before being added, bob cannot read the vacation's messages.
	before := newTestEngine(false, nil)
	err := before.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionRead,
		Identity:   bob,
		VacationID: "vac-1",
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	// After alice adds bob as editor with editItinerary, he can create
	// itinerary activities.
	after := newTestEngine(false, &MembershipFacts{
		Role:        entity.MemberRoleEditor,
		Permissions: entity.PermissionSet{EditItinerary: true},
	})

	createdAt, updatedAt := freshTimestamps()
	err = after.CanPerform(ctx, &Request{
		Collection: CollectionActivities,
		Action:     ActionCreate,
		Identity:   bob,
		VacationID: "vac-1",
		New: Document{
			"itineraryId": "itin-1", "name": "Space Mountain", "kind": "ride",
			"createdAt": createdAt, "updatedAt": updatedAt,
		},
		Now: testNow,
	})
	assert.NoError(t, err)

	// Deleting the vacation itself stays owner-only.
	err = after.CanPerform(ctx, &Request{
		Collection: CollectionVacations,
		Action:     ActionDelete,
		Identity:   bob,
		ResourceID: "vac-1",
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	err = after.CanPerform(ctx, &Request{
		Collection: CollectionVacations,
		Action:     ActionDelete,
		Identity:   signedIn("alice"),
		ResourceID: "vac-1",
		Now:        testNow,
	})
	assert.NoError(t, err)
}

func TestCanPerform_MessageEditRules(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, &MembershipFacts{Role: entity.MemberRoleEditor})
	ctx := context.Background()

	old := messageDoc("alice")
	old["updatedAt"] = testNow.Add(-time.Minute)

	edited := Document{}
	for k, v := range old {
		edited[k] = v
	}
	edited["body"] = "meet at the castle at noon"
	edited["edited"] = true
	edited["updatedAt"] = testNow.Add(-time.Second + time.Millisecond)

	// The author may edit their own message when marking it edited.
	err := engine.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionUpdate,
		Identity:   signedIn("alice"),
		VacationID: "vac-1",
		Old:        old,
		New:        edited,
		Now:        testNow,
	})
	assert.NoError(t, err)

	// The author may not edit without marking the message edited.
	unmarked := Document{}
	for k, v := range edited {
		unmarked[k] = v
	}
	unmarked["edited"] = false
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionUpdate,
		Identity:   signedIn("alice"),
		VacationID: "vac-1",
		Old:        old,
		New:        unmarked,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	// Another member may not edit the body at all.
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionUpdate,
		Identity:   signedIn("bob"),
		VacationID: "vac-1",
		Old:        old,
		New:        edited,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	// But a member may add a reaction, touching nothing else.
	reacted := Document{}
	for k, v := range old {
		reacted[k] = v
	}
	reacted["reactions"] = map[string]any{"bob": "🎉"}
	reacted["updatedAt"] = testNow.Add(-time.Millisecond)
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionUpdate,
		Identity:   signedIn("bob"),
		VacationID: "vac-1",
		Old:        old,
		New:        reacted,
		Now:        testNow,
	})
	assert.NoError(t, err)

	// The author reacting to their own message takes the same path and does
	// not need the edited flag.
	selfReacted := Document{}
	for k, v := range old {
		selfReacted[k] = v
	}
	selfReacted["reactions"] = map[string]any{"alice": "🎉"}
	selfReacted["updatedAt"] = testNow.Add(-time.Millisecond)
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMessages,
		Action:     ActionUpdate,
		Identity:   signedIn("alice"),
		VacationID: "vac-1",
		Old:        old,
		New:        selfReacted,
		Now:        testNow,
	})
	assert.NoError(t, err)
}

func TestCanPerform_MembershipRoleChangesOwnerGated(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, &MembershipFacts{
		Role:        entity.MemberRoleEditor,
		Permissions: entity.PermissionSet{InviteOthers: true},
	})
	ctx := context.Background()

	createdAt, updatedAt := freshTimestamps()
	old := Document{
		"vacationId": "vac-1", "userId": "bob", "role": "editor",
		"joinedAt": createdAt, "updatedAt": updatedAt,
	}
	promoted := Document{}
	for k, v := range old {
		promoted[k] = v
	}
	promoted["role"] = "viewer"
	promoted["updatedAt"] = testNow.Add(-time.Millisecond)

	// Bob cannot change his own role.
	err := engine.CanPerform(ctx, &Request{
		Collection: CollectionMembers,
		Action:     ActionUpdate,
		Identity:   signedIn("bob"),
		ResourceID: "bob",
		VacationID: "vac-1",
		Old:        old,
		New:        promoted,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	// The owner can.
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMembers,
		Action:     ActionUpdate,
		Identity:   signedIn("alice"),
		ResourceID: "bob",
		VacationID: "vac-1",
		Old:        old,
		New:        promoted,
		Now:        testNow,
	})
	assert.NoError(t, err)

	// Bob may still update his own row when the role stays put.
	renamed := Document{}
	for k, v := range old {
		renamed[k] = v
	}
	renamed["displayName"] = "Bobby"
	renamed["updatedAt"] = testNow.Add(-time.Millisecond)
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMembers,
		Action:     ActionUpdate,
		Identity:   signedIn("bob"),
		ResourceID: "bob",
		VacationID: "vac-1",
		Old:        old,
		New:        renamed,
		Now:        testNow,
	})
	assert.NoError(t, err)

	// The owner row never loses its role or gets deleted.
	ownerRow := Document{
		"vacationId": "vac-1", "userId": "alice", "role": "owner",
		"joinedAt": createdAt, "updatedAt": updatedAt,
	}
	demoted := Document{}
	for k, v := range ownerRow {
		demoted[k] = v
	}
	demoted["role"] = "viewer"
	demoted["updatedAt"] = testNow.Add(-time.Millisecond)
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMembers,
		Action:     ActionUpdate,
		Identity:   signedIn("alice"),
		ResourceID: "alice",
		VacationID: "vac-1",
		Old:        ownerRow,
		New:        demoted,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionMembers,
		Action:     ActionDelete,
		Identity:   signedIn("alice"),
		ResourceID: "alice",
		VacationID: "vac-1",
		Old:        ownerRow,
		Now:        testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCanPerform_ReferenceAndLogCollections(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, nil)
	ctx := context.Background()
	carol := signedIn("carol")
	admin := &Identity{UID: "root", Admin: true}

	// Reference data: any signed-in user reads, only admin writes.
	err := engine.CanPerform(ctx, &Request{
		Collection: CollectionParks, Action: ActionRead, Identity: carol, Now: testNow,
	})
	assert.NoError(t, err)

	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionParks, Action: ActionRead, Identity: nil, Now: testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	createdAt, updatedAt := freshTimestamps()
	parkDoc := Document{"name": "Magic Kingdom", "createdAt": createdAt, "updatedAt": updatedAt}
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionParks, Action: ActionCreate, Identity: carol, New: parkDoc, Now: testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionParks, Action: ActionCreate, Identity: admin, New: parkDoc, Now: testNow,
	})
	assert.NoError(t, err)

	// Log collections are insert-only even for admins.
	logDoc := Document{"message": "boom", "createdAt": createdAt, "updatedAt": updatedAt}
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionErrorLogs, Action: ActionCreate, Identity: carol, New: logDoc, Now: testNow,
	})
	assert.NoError(t, err)

	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionErrorLogs, Action: ActionUpdate, Identity: admin,
		Old: logDoc, New: logDoc, Now: testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionErrorLogs, Action: ActionDelete, Identity: admin, Old: logDoc, Now: testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCanPerform_LocationSharing(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, &MembershipFacts{Role: entity.MemberRoleViewer})
	ctx := context.Background()

	shared := Document{
		"vacationId": "vac-1", "userId": "alice",
		"latitude": 28.4177, "longitude": -81.5812,
		"sharingEnabled": true, "updatedAt": testNow.Add(-time.Minute),
	}

	// A member sees a shared position.
	err := engine.CanPerform(ctx, &Request{
		Collection: CollectionUserLocations, Action: ActionRead,
		Identity: signedIn("bob"), ResourceID: "alice", VacationID: "vac-1",
		Old: shared, Now: testNow,
	})
	assert.NoError(t, err)

	// Sharing off hides the position from everyone but its owner.
	hidden := Document{}
	for k, v := range shared {
		hidden[k] = v
	}
	hidden["sharingEnabled"] = false
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionUserLocations, Action: ActionRead,
		Identity: signedIn("bob"), ResourceID: "alice", VacationID: "vac-1",
		Old: hidden, Now: testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionUserLocations, Action: ActionRead,
		Identity: signedIn("alice"), ResourceID: "alice", VacationID: "vac-1",
		Old: hidden, Now: testNow,
	})
	assert.NoError(t, err)

	// Only the owning member writes their position.
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionUserLocations, Action: ActionCreate,
		Identity: signedIn("bob"), VacationID: "vac-1",
		New: shared, Now: testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCanPerform_GeofenceRadiusBounded(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(false, &MembershipFacts{Role: entity.MemberRoleEditor})
	ctx := context.Background()
	createdAt, updatedAt := freshTimestamps()

	doc := Document{
		"vacationId": "vac-1", "createdBy": "bob", "name": "Castle meetup",
		"latitude": 28.4196, "longitude": -81.5812, "radiusMeters": 150.0,
		"createdAt": createdAt, "updatedAt": updatedAt,
	}
	err := engine.CanPerform(ctx, &Request{
		Collection: CollectionGeofences, Action: ActionCreate,
		Identity: signedIn("bob"), VacationID: "vac-1", New: doc, Now: testNow,
	})
	assert.NoError(t, err)

	oversized := Document{}
	for k, v := range doc {
		oversized[k] = v
	}
	oversized["radiusMeters"] = entity.MaxGeofenceRadiusMeters + 1
	err = engine.CanPerform(ctx, &Request{
		Collection: CollectionGeofences, Action: ActionCreate,
		Identity: signedIn("bob"), VacationID: "vac-1", New: oversized, Now: testNow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCanPerform_ExpenseWritesNeedBudgetPermission(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	createdAt, updatedAt := freshTimestamps()
	doc := Document{
		"vacationId": "vac-1", "paidBy": "bob", "amount": 42.50,
		"currency": "USD", "createdAt": createdAt, "updatedAt": updatedAt,
	}
	req := func(ident *Identity) *Request {
		return &Request{
			Collection: CollectionExpenses, Action: ActionCreate,
			Identity: ident, VacationID: "vac-1", New: doc, Now: testNow,
		}
	}

	// An editor without the budget flag may read but not record expenses.
	engine := newTestEngine(false, &MembershipFacts{
		Role:        entity.MemberRoleEditor,
		Permissions: entity.PermissionSet{EditItinerary: true},
	})
	err := engine.CanPerform(ctx, &Request{
		Collection: CollectionExpenses, Action: ActionRead,
		Identity: signedIn("bob"), VacationID: "vac-1", Old: doc, Now: testNow,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, engine.CanPerform(ctx, req(signedIn("bob"))), domainerrors.ErrPermissionDenied)

	// Granting manageBudget opens the write path.
	engine = newTestEngine(false, &MembershipFacts{
		Role:        entity.MemberRoleEditor,
		Permissions: entity.PermissionSet{ManageBudget: true},
	})
	assert.NoError(t, engine.CanPerform(ctx, req(signedIn("bob"))))

	// A non-positive amount is rejected even for the owner.
	doc["amount"] = 0.0
	assert.ErrorIs(t, engine.CanPerform(ctx, req(signedIn("alice"))), domainerrors.ErrPermissionDenied)
}

func TestCanPerform_PhotoDeleteUploaderOrOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	createdAt, _ := freshTimestamps()
	doc := Document{
		"vacationId": "vac-1", "uploadedBy": "bob",
		"url":       "https://cdn.example.com/trips/vac-1/castle.jpg",
		"createdAt": createdAt,
	}
	engine := newTestEngine(false, &MembershipFacts{Role: entity.MemberRoleViewer})

	del := func(ident *Identity) error {
		return engine.CanPerform(ctx, &Request{
			Collection: CollectionPhotos, Action: ActionDelete,
			Identity: ident, VacationID: "vac-1", ResourceID: "photo-1",
			Old: doc, Now: testNow,
		})
	}

	assert.NoError(t, del(signedIn("bob")))
	assert.NoError(t, del(signedIn("alice")))
	assert.ErrorIs(t, del(signedIn("carol")), domainerrors.ErrPermissionDenied)
}
