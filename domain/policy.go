package domain

// Access decisions are pure functions over the actor's claims and the
// target's owner. They never touch storage.

func IsAdmin(actor *Claims) bool {
	return actor != nil && actor.Role == RoleAdmin
}

// CanUpdateUser allows admins to update anyone; everyone else only themselves.
func CanUpdateUser(actor *Claims, targetID int) bool {
	if IsAdmin(actor) {
		return true
	}
	return actor != nil && actor.UserID == targetID
}

// CanViewClass scopes class reads to the owning teacher unless the actor is
// an admin. A class with no owner is only visible to admins.
func CanViewClass(actor *Claims, teacherID *int) bool {
	if IsAdmin(actor) {
		return true
	}
	return actor != nil && teacherID != nil && *teacherID == actor.UserID
}
