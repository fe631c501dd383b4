package authz

import (
	"context"

	"parkplan/internal/domain/entity"
)

// Collection names gated by the policy. Anything not listed here is denied
// both read and write.
const (
	CollectionUsers           = "users"
	CollectionVacations       = "vacations"
	CollectionMembers         = "members"
	CollectionItineraries     = "itineraries"
	CollectionActivities      = "activities"
	CollectionCalendarEvents  = "calendarEvents"
	CollectionMessages        = "messages"
	CollectionExpenses        = "expenses"
	CollectionPhotos          = "photos"
	CollectionUserLocations   = "userLocations"
	CollectionGeofences       = "geofences"
	CollectionGeofenceAlerts  = "geofenceAlerts"
	CollectionParks           = "parks"
	CollectionAttractions     = "attractions"
	CollectionRestaurants     = "restaurants"
	CollectionResorts         = "resorts"
	CollectionWaitTimes       = "waitTimes"
	CollectionParkHours       = "parkHours"
	CollectionEvents          = "events"
	CollectionAnalytics       = "analytics"
	CollectionErrorLogs       = "errorLogs"
	CollectionPerformanceLogs = "performanceLogs"
	CollectionSystem          = "system"
	CollectionFeatureFlags    = "featureFlags"
)

// buildRuleTable declares the per-collection policy. The repeated pattern is
// a looser read gate (ownership, membership or public flag) over a stricter
// write gate (ownership or an explicit permission), with identity-establishing
// fields locked on update.
func buildRuleTable() map[string]*collectionPolicy {
	rules := map[string]*collectionPolicy{
		CollectionUsers: {
			requiredKeys: []string{"email", "displayName", "createdAt", "updatedAt"},
			immutable:    []string{"createdAt"},
			read: func(_ context.Context, _ *Engine, req *Request) (bool, error) {
				return req.Identity.IsOwner(req.ResourceID) || req.Identity.IsStaff(), nil
			},
			create: func(_ context.Context, _ *Engine, req *Request) (bool, error) {
				if !req.Identity.IsOwner(req.ResourceID) {
					return false, nil
				}
				if !req.Identity.EmailVerified {
					return false, nil
				}

				return ValidEmail(req.New.GetString("email")), nil
			},
			update: func(_ context.Context, _ *Engine, req *Request) (bool, error) {
				return req.Identity.IsOwner(req.ResourceID) || req.Identity.IsAdmin(), nil
			},
			delete: func(_ context.Context, _ *Engine, req *Request) (bool, error) {
				return req.Identity.IsOwner(req.ResourceID) || req.Identity.IsAdmin(), nil
			},
		},

		CollectionVacations: {
			requiredKeys: []string{"name", "destination", "startDate", "endDate", "status", "createdBy", "createdAt", "updatedAt"},
			immutable:    []string{"createdBy", "createdAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.vacationReadable(ctx, req.ResourceID, req.Identity)
			},
			create: func(_ context.Context, _ *Engine, req *Request) (bool, error) {
				if !req.Identity.SignedIn() {
					return false, nil
				}
				if !req.Identity.IsOwner(req.New.GetString("createdBy")) {
					return false, nil
				}

				return entity.VacationStatus(req.New.GetString("status")).IsValid(), nil
			},
			update: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canEditVacation(ctx, req.ResourceID, req.Identity)
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.Identity.IsAdmin() {
					return true, nil
				}

				return e.isVacationOwner(ctx, req.ResourceID, req.Identity)
			},
		},

		// Membership rows are keyed by the member's UID under their vacation.
		// A member may always write their own row, adding members needs the
		// inviteOthers permission, and role changes are owner-gated.
		CollectionMembers: {
			requiredKeys: []string{"vacationId", "userId", "role", "joinedAt", "updatedAt"},
			immutable:    []string{"vacationId", "userId", "joinedAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.vacationReadable(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !entity.MemberRole(req.New.GetString("role")).IsValid() {
					return false, nil
				}
				if req.Identity.IsAdmin() {
					return true, nil
				}
				// Only the creating owner may mint the owner row.
				if entity.MemberRole(req.New.GetString("role")) == entity.MemberRoleOwner {
					return e.isVacationOwner(ctx, req.VacationID, req.Identity)
				}

				return e.hasPermission(ctx, req.VacationID, req.Identity, func(p entity.PermissionSet) bool {
					return p.InviteOthers
				})
			},
			update: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.Identity.IsAdmin() {
					return true, nil
				}
				roleChanged := req.Old.GetString("role") != req.New.GetString("role")
				permsChanged := !Unchanged(req.Old, req.New, "permissions")
				if roleChanged || permsChanged {
					if !entity.MemberRole(req.New.GetString("role")).IsValid() {
						return false, nil
					}
					// The owner row never changes role.
					if entity.MemberRole(req.Old.GetString("role")) == entity.MemberRoleOwner {
						return false, nil
					}

					return e.isVacationOwner(ctx, req.VacationID, req.Identity)
				}

				return req.Identity.IsOwner(req.ResourceID), nil
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				// The owner row is never removable; the vacation is deleted instead.
				if req.Old != nil && entity.MemberRole(req.Old.GetString("role")) == entity.MemberRoleOwner {
					return false, nil
				}
				if req.Identity.IsAdmin() || req.Identity.IsOwner(req.ResourceID) {
					return true, nil
				}

				return e.isVacationOwner(ctx, req.VacationID, req.Identity)
			},
		},

		CollectionItineraries: {
			requiredKeys: []string{"vacationId", "userId", "date", "createdAt", "updatedAt"},
			immutable:    []string{"vacationId", "userId", "createdAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.Old != nil && req.Identity.IsOwner(req.Old.GetString("userId")) {
					return true, nil
				}

				return e.vacationReadable(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !req.Identity.IsOwner(req.New.GetString("userId")) && !req.Identity.IsAdmin() {
					return false, nil
				}

				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
			update: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
		},

		CollectionActivities: {
			requiredKeys: []string{"itineraryId", "name", "kind", "createdAt", "updatedAt"},
			immutable:    []string{"itineraryId", "createdAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.vacationReadable(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
			update: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
		},

		CollectionCalendarEvents: {
			requiredKeys: []string{"vacationId", "createdBy", "title", "startTime", "endTime", "createdAt", "updatedAt"},
			immutable:    []string{"vacationId", "createdBy", "createdAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.vacationReadable(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !req.Identity.IsOwner(req.New.GetString("createdBy")) && !req.Identity.IsAdmin() {
					return false, nil
				}

				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
			update: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canEditVacation(ctx, req.VacationID, req.Identity)
			},
		},

		// Chat messages. Authors edit their own messages and must mark them
		// edited; other members may only touch the reactions map.
		CollectionMessages: {
			requiredKeys: []string{"vacationId", "senderId", "body", "createdAt", "updatedAt"},
			immutable:    []string{"vacationId", "senderId", "createdAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.vacationReadable(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !req.Identity.IsOwner(req.New.GetString("senderId")) {
					return false, nil
				}
				if !ValidString(req.New.GetString("body"), 1, 4000) {
					return false, nil
				}

				return e.isVacationMember(ctx, req.VacationID, req.Identity)
			},
			update: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				// Reaction-only changes take the membership path, author
				// included. The edited flag is required for body edits only.
				if OnlyChanged(req.Old, req.New, "reactions", "updatedAt") {
					return e.isVacationMember(ctx, req.VacationID, req.Identity)
				}
				if req.Identity.IsOwner(req.Old.GetString("senderId")) {
					return req.New.GetBool("edited"), nil
				}

				return false, nil
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.Identity.IsAdmin() {
					return true, nil
				}
				if req.Old != nil && req.Identity.IsOwner(req.Old.GetString("senderId")) {
					return true, nil
				}

				return e.isVacationOwner(ctx, req.VacationID, req.Identity)
			},
		},

		// Shared trip expenses. Writes are gated by the manageBudget
		// permission rather than the itinerary-edit path.
		CollectionExpenses: {
			requiredKeys: []string{"vacationId", "paidBy", "amount", "currency", "createdAt", "updatedAt"},
			immutable:    []string{"vacationId", "paidBy", "createdAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.isVacationMember(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.New.GetFloat("amount") <= 0 {
					return false, nil
				}

				return e.canManageBudget(ctx, req.VacationID, req.Identity)
			},
			update: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.New.GetFloat("amount") <= 0 {
					return false, nil
				}

				return e.canManageBudget(ctx, req.VacationID, req.Identity)
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.canManageBudget(ctx, req.VacationID, req.Identity)
			},
		},

		// Trip photo metadata. Any member uploads; only the uploader, the
		// vacation owner or an admin removes.
		CollectionPhotos: {
			requiredKeys: []string{"vacationId", "uploadedBy", "url", "createdAt"},
			immutable:    []string{"vacationId", "uploadedBy", "createdAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.vacationReadable(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !req.Identity.IsOwner(req.New.GetString("uploadedBy")) {
					return false, nil
				}
				if !ValidURL(req.New.GetString("url")) {
					return false, nil
				}

				return e.isVacationMember(ctx, req.VacationID, req.Identity)
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.Identity.IsAdmin() {
					return true, nil
				}
				if req.Old != nil && req.Identity.IsOwner(req.Old.GetString("uploadedBy")) {
					return true, nil
				}

				return e.isVacationOwner(ctx, req.VacationID, req.Identity)
			},
		},

		// Live positions are keyed by the owning member's UID. Members see a
		// position only while its owner has sharing enabled.
		CollectionUserLocations: {
			requiredKeys: []string{"vacationId", "userId", "latitude", "longitude", "updatedAt"},
			immutable:    []string{"vacationId", "userId"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.Identity.IsOwner(req.ResourceID) || req.Identity.IsAdmin() {
					return true, nil
				}
				if req.Old == nil || !req.Old.GetBool("sharingEnabled") {
					return false, nil
				}

				return e.isVacationMember(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !req.Identity.IsOwner(req.New.GetString("userId")) {
					return false, nil
				}

				return e.isVacationMember(ctx, req.VacationID, req.Identity)
			},
			update: func(_ context.Context, _ *Engine, req *Request) (bool, error) {
				return req.Identity.IsOwner(req.Old.GetString("userId")), nil
			},
			delete: func(_ context.Context, _ *Engine, req *Request) (bool, error) {
				return req.Identity.IsOwner(req.ResourceID) || req.Identity.IsAdmin(), nil
			},
		},

		CollectionGeofences: {
			requiredKeys: []string{"vacationId", "createdBy", "name", "latitude", "longitude", "radiusMeters", "createdAt", "updatedAt"},
			immutable:    []string{"vacationId", "createdBy", "createdAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.vacationReadable(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !req.Identity.IsOwner(req.New.GetString("createdBy")) {
					return false, nil
				}
				if !validRadius(req.New) {
					return false, nil
				}

				return e.isVacationMember(ctx, req.VacationID, req.Identity)
			},
			update: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !validRadius(req.New) {
					return false, nil
				}
				if req.Identity.IsOwner(req.Old.GetString("createdBy")) || req.Identity.IsAdmin() {
					return true, nil
				}

				return e.isVacationOwner(ctx, req.VacationID, req.Identity)
			},
			delete: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if req.Old != nil && req.Identity.IsOwner(req.Old.GetString("createdBy")) {
					return true, nil
				}
				if req.Identity.IsAdmin() {
					return true, nil
				}

				return e.isVacationOwner(ctx, req.VacationID, req.Identity)
			},
		},

		// Zone-entry alerts are insert-only.
		CollectionGeofenceAlerts: {
			requiredKeys: []string{"geofenceId", "vacationId", "userId", "enteredAt"},
			read: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				return e.isVacationMember(ctx, req.VacationID, req.Identity)
			},
			create: func(ctx context.Context, e *Engine, req *Request) (bool, error) {
				if !req.Identity.IsOwner(req.New.GetString("userId")) {
					return false, nil
				}

				return e.isVacationMember(ctx, req.VacationID, req.Identity)
			},
		},
	}

	// Reference catalog: readable by any signed-in user, writable only by
	// the importer's admin identity.
	for _, name := range []string{
		CollectionParks, CollectionAttractions, CollectionRestaurants,
		CollectionResorts, CollectionWaitTimes, CollectionParkHours, CollectionEvents,
	} {
		rules[name] = &collectionPolicy{
			read:   signedInGate,
			create: adminGate,
			update: adminGate,
			delete: adminGate,
		}
	}

	// Log collections: insert-only so the audit trail stays immutable.
	rules[CollectionAnalytics] = &collectionPolicy{
		requiredKeys: []string{"action", "createdAt"},
		read:         adminGate,
		create:       signedInGate,
	}
	rules[CollectionErrorLogs] = &collectionPolicy{
		requiredKeys: []string{"message", "createdAt"},
		read:         adminGate,
		create:       signedInGate,
	}
	rules[CollectionPerformanceLogs] = &collectionPolicy{
		requiredKeys: []string{"metric", "createdAt"},
		read:         adminGate,
		create:       signedInGate,
	}

	// Operational documents: readable so clients can honor maintenance
	// windows and flags, writable only by admins.
	rules[CollectionSystem] = &collectionPolicy{
		read:   signedInGate,
		create: adminGate,
		update: adminGate,
		delete: adminGate,
	}
	rules[CollectionFeatureFlags] = &collectionPolicy{
		read:   signedInGate,
		create: adminGate,
		update: adminGate,
		delete: adminGate,
	}

	return rules
}

func signedInGate(_ context.Context, _ *Engine, req *Request) (bool, error) {
	return req.Identity.SignedIn(), nil
}

func adminGate(_ context.Context, _ *Engine, req *Request) (bool, error) {
	return req.Identity.IsAdmin(), nil
}

// validRadius bounds a geofence radius to (0, MaxGeofenceRadiusMeters].
func validRadius(doc Document) bool {
	r := doc.GetFloat("radiusMeters")

	return r > 0 && r <= entity.MaxGeofenceRadiusMeters
}
