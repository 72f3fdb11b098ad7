package domain

// LookupStatus is the terminal state of a single member lookup.
type LookupStatus int

const (
	LookupFound          LookupStatus = iota // Member resolved from cache or remote
	LookupNotFound                           // Remote reports the member does not exist
	LookupForbidden                          // Bot lacks permission to read the member
	LookupTransientError                     // Any other remote failure
)

// String returns a human-readable representation of the lookup status.
func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	case LookupForbidden:
		return "forbidden"
	case LookupTransientError:
		return "transient_error"
	default:
		return "unknown"
	}
}

// LookupSource identifies where a found member came from.
type LookupSource int

const (
	SourceNone   LookupSource = iota // No member was resolved
	SourceCache                      // Local session cache
	SourceRemote                     // Live API fetch after a cache miss
)

// String returns a human-readable representation of the lookup source.
func (s LookupSource) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceRemote:
		return "remote"
	default:
		return "none"
	}
}

// LookupOutcome is the result of resolving one user ID within a guild.
// Member is set only when Status is LookupFound.
type LookupOutcome struct {
	Status LookupStatus
	Source LookupSource
	Member *Member

	// CacheMiss is true when the local cache was consulted and had no entry.
	CacheMiss bool

	// Message carries the error description for LookupTransientError.
	Message string
}

// Found creates an outcome for a resolved member.
func Found(member *Member, source LookupSource) *LookupOutcome {
	return &LookupOutcome{
		Status:    LookupFound,
		Source:    source,
		Member:    member,
		CacheMiss: source == SourceRemote,
	}
}

// NotFound creates an outcome for a member that does not exist in the guild.
func NotFound() *LookupOutcome {
	return &LookupOutcome{Status: LookupNotFound, CacheMiss: true}
}

// Forbidden creates an outcome for a lookup rejected due to missing permissions.
func Forbidden() *LookupOutcome {
	return &LookupOutcome{Status: LookupForbidden, CacheMiss: true}
}

// TransientError creates an outcome for an unexpected fetch failure.
func TransientError(message string) *LookupOutcome {
	return &LookupOutcome{Status: LookupTransientError, CacheMiss: true, Message: message}
}

// IsFound reports whether the outcome holds a member.
func (o *LookupOutcome) IsFound() bool {
	return o.Status == LookupFound && o.Member != nil
}
