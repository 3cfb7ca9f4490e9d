package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBranchExists     = errors.New("branch already exists")
	ErrBranchNotFound   = errors.New("branch not found")
	ErrMetadataNotFound = errors.New("branch metadata not found")
	ErrNoSource         = errors.New("trunk has no source branch")
	ErrNotWorkingCopy   = errors.New("not a working copy")
)

// Op names the operation that failed, e.g. "createbranch" or "svn.merge"
type Op string

// Kind classifies errors so the CLI and callers can react without string matching
type Kind int

const (
	Other              Kind = iota // Unclassified. Not printed.
	ArgumentError                  // Bad or missing arguments
	PreconditionError              // Workspace state forbids the operation
	PolicyRejection                // Log message or version floor not satisfied
	PolicyCancellation             // Code freeze breach
	IntegrityError                 // Metadata does not describe the workspace it governs
	NotFound                       // Branch or path missing
	AlreadyExists                  // Branch or path already present
	ConflictError                  // Merge left conflicts behind
	TransportError                 // Repository call failed
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case ArgumentError:
		return "invalid argument"
	case PreconditionError:
		return "precondition failed"
	case PolicyRejection:
		return "rejected by policy"
	case PolicyCancellation:
		return "cancelled by policy"
	case IntegrityError:
		return "integrity error"
	case NotFound:
		return "not found"
	case AlreadyExists:
		return "already exists"
	case ConflictError:
		return "conflicts"
	case TransportError:
		return "repository error"
	}
	return "unknown kind"
}

// Error carries the operation, the repository or local path involved and the error class
type Error struct {
	Err  error
	Kind Kind
	Op   Op
	Path string
}

func (e *Error) Error() string {
	b := new(strings.Builder)
	if e.Op != "" {
		b.WriteString(string(e.Op))
	}
	if e.Path != "" {
		pad(b, ": ")
		b.WriteString(e.Path)
	}
	if e.Kind != Other {
		pad(b, ": ")
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		pad(b, ": ")
		b.WriteString(e.Err.Error())
	}
	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func pad(b *strings.Builder, s string) {
	if b.Len() > 0 {
		b.WriteString(s)
	}
}

// PathArg is a path argument for E; plain strings become the wrapped message
type PathArg string

// E builds an *Error from any combination of Op, Kind, PathArg, error and message string.
// A wrapped *Error donates its Kind when none is given.
func E(args ...any) error {
	if len(args) == 0 {
		panic("domain.E called with no arguments")
	}
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case PathArg:
			e.Path = string(a)
		case error:
			e.Err = a
		case string:
			e.Err = errors.New(a)
		default:
			panic(fmt.Sprintf("unknown type %T for value %v in call to domain.E", a, a))
		}
	}
	if e.Kind == Other {
		e.Kind = KindOf(e.Err)
	}

	wrapped, ok := e.Err.(*Error)
	if !ok {
		return e
	}
	cp := *wrapped
	if cp.Kind == e.Kind {
		cp.Kind = Other
	}
	if cp.Op == e.Op {
		cp.Op = ""
	}
	if cp.Path == e.Path {
		cp.Path = ""
	}
	e.Err = &cp
	return e
}

// KindOf returns the first non-Other kind found in the error chain
func KindOf(err error) Kind {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return Other
		}
		if e.Kind != Other {
			return e.Kind
		}
		err = e.Err
	}
	return Other
}

// IsKind reports whether err carries kind k
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
