package detail

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/ib-77/outcome/pkg/rop/idgen"
	"github.com/ib-77/outcome/pkg/rop/render"
)

// DefaultErrorMessage is used when a detail is built without a message.
const DefaultErrorMessage = "An unexpected error occurred"

// Options configures a Detail. Every field is optional.
type Options struct {
	// Context is the call-site chain, outermost first.
	Context         []string
	ErrorCode       string
	ErrorMessage    string
	ErrorInstanceID string
	CorrelationID   string
	// Generator creates the instance id on first access when ErrorInstanceID
	// is empty. Defaults to idgen.Default.
	Generator idgen.Generator
}

// Detail is the structured payload of a failed Result. The set of
// implementations is closed: only types in this package satisfy it.
type Detail interface {
	error
	Tag() Tag
	Context() []string
	ErrorCode() string
	ErrorMessage() string
	// ErrorInstanceID returns the support reference, generating and
	// memoizing one on first access when none was supplied.
	ErrorInstanceID() string
	CorrelationID() string
	// FormatErrorResult renders "<context> - <code> - <message>".
	FormatErrorResult() string

	core() *base
}

type base struct {
	tag           Tag
	context       []string
	code          string
	message       string
	correlationID string

	gen        idgen.Generator
	idOnce     sync.Once
	instanceID string
}

func (b *base) init(tag Tag, opts Options) {
	b.tag = tag
	if len(opts.Context) > 0 {
		b.context = append([]string(nil), opts.Context...)
	}
	b.code = opts.ErrorCode
	b.message = opts.ErrorMessage
	if b.message == "" {
		b.message = DefaultErrorMessage
	}
	b.correlationID = opts.CorrelationID
	b.instanceID = opts.ErrorInstanceID
	b.gen = opts.Generator
}

func (b *base) core() *base {
	return b
}

func (b *base) Tag() Tag {
	return b.tag
}

func (b *base) Context() []string {
	if b.context == nil {
		return nil
	}
	return append([]string(nil), b.context...)
}

func (b *base) ErrorCode() string {
	return b.code
}

func (b *base) ErrorMessage() string {
	return b.message
}

func (b *base) ErrorInstanceID() string {
	b.idOnce.Do(func() {
		if b.instanceID != "" {
			return
		}
		gen := b.gen
		if gen == nil {
			gen = idgen.Default
		}
		b.instanceID = gen.InstanceID()
	})
	return b.instanceID
}

func (b *base) CorrelationID() string {
	return b.correlationID
}

func (b *base) FormatErrorResult() string {
	return fmt.Sprintf("%s - %s - %s", render.FormatContext(b.context), b.code, b.message)
}

func (b *base) Error() string {
	return b.FormatErrorResult()
}

func (b *base) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.response())
}

// AssertionFailed signals an internal precondition or invariant violation.
type AssertionFailed struct {
	base
}

func NewAssertionFailed(opts Options) *AssertionFailed {
	d := &AssertionFailed{}
	d.init(TagAssertionFailed, opts)
	return d
}

// Technical signals an unexpected runtime failure.
type Technical struct {
	base
}

func NewTechnical(opts Options) *Technical {
	d := &Technical{}
	d.init(TagTechnical, opts)
	return d
}

// User signals an expected, user-facing validation or business-rule failure.
type User struct {
	base
}

func NewUser(opts Options) *User {
	d := &User{}
	d.init(TagUser, opts)
	return d
}

// ShortCircuited signals an intentional early exit. It is not a defect.
type ShortCircuited struct {
	base
}

func NewShortCircuited(opts Options) *ShortCircuited {
	d := &ShortCircuited{}
	d.init(TagShortCircuited, opts)
	return d
}

func IsAssertionFailed(d Detail) bool {
	_, ok := d.(*AssertionFailed)
	return ok
}

func IsTechnical(d Detail) bool {
	_, ok := d.(*Technical)
	return ok
}

func IsUser(d Detail) bool {
	_, ok := d.(*User)
	return ok
}

func IsShortCircuited(d Detail) bool {
	_, ok := d.(*ShortCircuited)
	return ok
}

// HasTag reports whether d is non-nil and carries tag.
func HasTag(d Detail, tag Tag) bool {
	return !isNil(d) && d.Tag() == tag
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
