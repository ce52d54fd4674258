package domain

// Caller is the authenticated identity behind a request, re-derived from the
// verified token claims on every call. A role field arriving in a request
// body is never consulted.
type Caller struct {
	Email string
	Role  Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == ADMIN
}

type Operation int

const (
	OpTaskRead Operation = iota + 1
	OpTaskMove
	OpTaskWrite
	OpProjectRead
	OpProjectWrite
	OpUserRead
	OpUserWrite
	OpUserList
)

// Allowed decides whether the caller may perform op against a resource owned
// by owner. It is a pure function; owner is ignored for operations that have
// no per-resource owner (project and user listing ops).
func Allowed(caller Caller, op Operation, owner string) bool {
	if caller.IsAdmin() {
		return true
	}

	switch op {
	case OpTaskRead, OpTaskMove:
		return caller.Email == owner
	case OpProjectRead:
		return true
	case OpUserRead, OpUserWrite:
		return caller.Email == owner
	default:
		// OpTaskWrite, OpProjectWrite, OpUserList
		return false
	}
}
