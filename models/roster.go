package models

// RosterDocID is the fixed document id for a user's roster record.
const RosterDocID = "artists"

// Roster is the per-user list of resource (artist) names. Order is
// preserved; names are unique by exact string match.
type Roster struct {
	ID     string   `json:"id" bson:"_id"`
	UserID string   `json:"userId" bson:"userId"`
	List   []string `json:"list" bson:"list"`
}

// Clone returns a copy whose name list does not alias the receiver's.
func (r Roster) Clone() Roster {
	out := r
	out.List = append([]string(nil), r.List...)
	return out
}

// Contains reports whether name is already on the roster (exact match).
func (r *Roster) Contains(name string) bool {
	for _, n := range r.List {
		if n == name {
			return true
		}
	}
	return false
}
