package detail

// Custom tags are declared here and must be added to registry below. The
// registry is a map literal keyed by constants, so a custom tag that repeats
// a standard one (or another custom one) is a compile error.
const (
	TagNotFound Tag = "NotFound"
)

var registry = map[Tag]tagKind{
	TagAPIError:        standardTag,
	TagAssertionFailed: standardTag,
	TagTechnical:       standardTag,
	TagUser:            standardTag,
	TagShortCircuited:  standardTag,

	TagNotFound: customTag,
}

// NotFound signals that a requested entity does not exist.
type NotFound struct {
	base
}

func NewNotFound(opts Options) *NotFound {
	d := &NotFound{}
	d.init(TagNotFound, opts)
	return d
}

func IsNotFound(d Detail) bool {
	_, ok := d.(*NotFound)
	return ok
}
