package core

// IDGenerator produces collision-resistant identifiers for new
// transaction records. Wall-clock milliseconds are not good enough:
// two records created in the same millisecond must still get distinct
// ids.
type IDGenerator interface {
	NewID() string
}
