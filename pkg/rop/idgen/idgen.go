package idgen

import (
	"regexp"

	"github.com/google/uuid"
)

const (
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	groupSize  = 4
	groupCount = 2

	// rejectFrom is the largest multiple of len(alphabet) that fits in a
	// byte; bytes at or above it are skipped so every symbol is equally likely.
	rejectFrom = 256 - 256%len(alphabet)
)

// randomBytes indexes the UUID bytes that carry no version or variant bits.
var randomBytes = []int{0, 1, 2, 3, 4, 5, 7, 9, 10, 11, 12, 13, 14, 15}

var instanceIDPattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// Generator creates identifiers for error details.
type Generator interface {
	// InstanceID returns a short support reference in the form XXXX-XXXX.
	InstanceID() string
	// CorrelationID returns a token used to associate failures across systems.
	CorrelationID() string
}

// UUID is the default Generator backed by random (version 4) UUIDs.
type UUID struct{}

var Default Generator = UUID{}

func (UUID) InstanceID() string {
	const size = groupSize * groupCount
	out := make([]byte, 0, size+groupCount-1)
	for n := 0; n < size; {
		raw := uuid.New()
		for _, i := range randomBytes {
			if n == size {
				break
			}
			b := int(raw[i])
			if b >= rejectFrom {
				continue
			}
			if n > 0 && n%groupSize == 0 {
				out = append(out, '-')
			}
			out = append(out, alphabet[b%len(alphabet)])
			n++
		}
	}
	return string(out)
}

func (UUID) CorrelationID() string {
	return uuid.NewString()
}

// IsInstanceID reports whether s has the XXXX-XXXX instance id shape.
func IsInstanceID(s string) bool {
	return instanceIDPattern.MatchString(s)
}

// Fixed always returns the same identifiers. Useful when output must be stable.
type Fixed struct {
	Instance    string
	Correlation string
}

func (f Fixed) InstanceID() string {
	return f.Instance
}

func (f Fixed) CorrelationID() string {
	return f.Correlation
}
