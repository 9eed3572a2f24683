package detail

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/rop/idgen"
	"github.com/ib-77/outcome/pkg/rop/problem"
	"github.com/ib-77/outcome/pkg/rop/render"
)

type countingGen struct {
	calls atomic.Int32
}

func (g *countingGen) InstanceID() string {
	g.calls.Add(1)
	return idgen.Default.InstanceID()
}

func (g *countingGen) CorrelationID() string {
	return "corr"
}

func TestFormatErrorResult(t *testing.T) {
	t.Parallel()

	d := NewTechnical(Options{
		Context:      []string{"Domain", "App", "Service", "op"},
		ErrorCode:    "TE",
		ErrorMessage: "boom",
	})

	assert.Equal(t, "Domain.App.Service.op - TE - boom", d.FormatErrorResult())
	assert.Equal(t, d.FormatErrorResult(), d.Error())
}

func TestFormatErrorResult_UnknownContext(t *testing.T) {
	t.Parallel()

	d := NewUser(Options{ErrorCode: "U1", ErrorMessage: "nope"})
	assert.Equal(t, render.UnknownContext+" - U1 - nope", d.FormatErrorResult())
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	d := NewShortCircuited(Options{})

	assert.Equal(t, TagShortCircuited, d.Tag())
	assert.Equal(t, DefaultErrorMessage, d.ErrorMessage())
	assert.Empty(t, d.ErrorCode())
	assert.Empty(t, d.CorrelationID())
	assert.Nil(t, d.Context())
}

func TestErrorInstanceID_LazyAndStable(t *testing.T) {
	t.Parallel()

	gen := &countingGen{}
	d := NewTechnical(Options{Generator: gen})

	assert.Equal(t, int32(0), gen.calls.Load())

	first := d.ErrorInstanceID()
	second := d.ErrorInstanceID()

	assert.Equal(t, first, second)
	assert.True(t, idgen.IsInstanceID(first), first)
	assert.Equal(t, int32(1), gen.calls.Load())
}

func TestErrorInstanceID_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	gen := &countingGen{}
	d := NewAssertionFailed(Options{Generator: gen})

	const readers = 32
	ids := make([]string, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = d.ErrorInstanceID()
		}()
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.Equal(t, int32(1), gen.calls.Load())
}

func TestErrorInstanceID_Supplied(t *testing.T) {
	t.Parallel()

	gen := &countingGen{}
	d := NewUser(Options{ErrorInstanceID: "FIXD-0001", Generator: gen})

	assert.Equal(t, "FIXD-0001", d.ErrorInstanceID())
	assert.Equal(t, int32(0), gen.calls.Load())
}

func TestContext_IsCopied(t *testing.T) {
	t.Parallel()

	chain := []string{"a", "b"}
	d := NewTechnical(Options{Context: chain})
	chain[0] = "mutated"

	got := d.Context()
	assert.Equal(t, []string{"a", "b"}, got)
	got[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, d.Context())
}

func TestGuards_ExactVariant(t *testing.T) {
	t.Parallel()

	all := []Detail{
		NewAPIError(Options{}, problem.New(500, "x")),
		NewAssertionFailed(Options{}),
		NewTechnical(Options{}),
		NewUser(Options{}),
		NewShortCircuited(Options{}),
		NewNotFound(Options{}),
	}
	guards := []func(Detail) bool{
		IsAPIError, IsAssertionFailed, IsTechnical, IsUser, IsShortCircuited, IsNotFound,
	}

	for i, d := range all {
		for j, guard := range guards {
			assert.Equal(t, i == j, guard(d), "detail %s guard %d", d.Tag(), j)
		}
	}

	for _, guard := range guards {
		assert.False(t, guard(nil))
	}
}

func TestHasTag(t *testing.T) {
	t.Parallel()

	assert.True(t, HasTag(NewNotFound(Options{}), TagNotFound))
	assert.False(t, HasTag(NewUser(Options{}), TagNotFound))
	assert.False(t, HasTag(nil, TagUser))
}

func TestAPIError_MessageFromTitle(t *testing.T) {
	t.Parallel()

	resp := problem.Details{Title: "Payment required", Detail: "balance too low", Instance: "INST-0001", Status: 402}
	d := NewAPIError(Options{ErrorCode: "PAY", ErrorMessage: "ignored"}, resp)

	assert.Equal(t, TagAPIError, d.Tag())
	assert.Equal(t, "Payment required", d.ErrorMessage())
	assert.Equal(t, "INST-0001", d.ErrorInstanceID())
	assert.Equal(t, resp, d.Response())
}

func TestAPIError_MessageFallsBackToDetail(t *testing.T) {
	t.Parallel()

	d := NewAPIError(Options{}, problem.Details{Detail: "balance too low"})
	assert.Equal(t, "balance too low", d.ErrorMessage())
	assert.True(t, idgen.IsInstanceID(d.ErrorInstanceID()))
}

func TestAPIError_EmptyResponse(t *testing.T) {
	t.Parallel()

	d := NewAPIError(Options{ErrorMessage: "upstream failed"}, problem.Details{})
	assert.Equal(t, "upstream failed", d.ErrorMessage())

	d = NewAPIError(Options{}, nil)
	assert.Equal(t, DefaultErrorMessage, d.ErrorMessage())
	assert.Nil(t, d.Response())
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	d := NewUser(Options{
		Context:         []string{"svc", "op"},
		ErrorCode:       "U1",
		ErrorMessage:    "bad input",
		ErrorInstanceID: "ABCD-1234",
		CorrelationID:   "c-1",
	})

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "User", got["tag"])
	assert.Equal(t, "U1", got["errorCode"])
	assert.Equal(t, "bad input", got["errorMessage"])
	assert.Equal(t, "ABCD-1234", got["errorInstanceId"])
	assert.Equal(t, "c-1", got["correlationId"])
	assert.NotContains(t, got, "apiResponse")

	assert.Nil(t, ToJSON(nil))
}

func TestToJSON_APIErrorIncludesResponse(t *testing.T) {
	t.Parallel()

	resp := problem.New(404, "Not Found").WithExtension("resource", "user")
	data, err := json.Marshal(NewAPIError(Options{}, resp))
	require.NoError(t, err)

	var got struct {
		Tag         string         `json:"tag"`
		APIResponse map[string]any `json:"apiResponse"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "ApiError", got.Tag)
	assert.Equal(t, "user", got.APIResponse["resource"])
	assert.Equal(t, float64(404), got.APIResponse["status"])
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	tags := Tags()
	assert.Equal(t, []Tag{
		TagAPIError, TagAssertionFailed, TagNotFound, TagShortCircuited, TagTechnical, TagUser,
	}, tags)

	assert.True(t, IsCustom(TagNotFound))
	assert.False(t, IsCustom(TagTechnical))
	assert.False(t, IsCustom(Tag("Unregistered")))
	assert.True(t, IsRegistered(TagUser))
	assert.False(t, IsRegistered(Tag("Unregistered")))
}

func TestTypedNilInputs(t *testing.T) {
	t.Parallel()

	var resp *problem.Details
	var d *APIError
	require.NotPanics(t, func() { d = NewAPIError(Options{ErrorCode: "PAY", ErrorMessage: "upstream failed"}, resp) })
	assert.Equal(t, "upstream failed", d.ErrorMessage())
	assert.True(t, idgen.IsInstanceID(d.ErrorInstanceID()))

	var body *Response
	require.NotPanics(t, func() { body = ToJSON(d) })
	assert.Nil(t, body.APIResponse)

	var user *User
	assert.False(t, HasTag(user, TagUser))
	assert.Nil(t, ToJSON(user))
}
