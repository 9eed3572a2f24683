package problem

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesExtensions(t *testing.T) {
	t.Parallel()

	body := `{
		"type": "https://example.com/probs/out-of-credit",
		"title": "You do not have enough credit.",
		"status": 403,
		"detail": "Your current balance is 30, but that costs 50.",
		"instance": "/account/12345/msgs/abc",
		"balance": 30,
		"accounts": ["/account/12345", "/account/67890"]
	}`

	d, err := Decode(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/probs/out-of-credit", d.Type)
	assert.Equal(t, "You do not have enough credit.", d.ProblemTitle())
	assert.Equal(t, 403, d.Status)
	assert.Equal(t, "Your current balance is 30, but that costs 50.", d.ProblemDetail())
	assert.Equal(t, "/account/12345/msgs/abc", d.ProblemInstance())

	balance, ok := d.Extension("balance")
	require.True(t, ok)
	assert.Equal(t, json.Number("30"), balance)
	accounts, ok := d.Extension("accounts")
	require.True(t, ok)
	assert.Len(t, accounts, 2)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"status": "teapot"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")

	_, err = Decode(strings.NewReader(`not json`))
	require.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	d := New(404, "Not Found").WithExtension("resource", "user")

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, DefaultType, got["type"])
	assert.Equal(t, "Not Found", got["title"])
	assert.Equal(t, float64(404), got["status"])
	assert.Equal(t, "user", got["resource"])
	assert.NotContains(t, got, "detail")
	assert.NotContains(t, got, "instance")
}

func TestMarshalJSON_StandardMembersWin(t *testing.T) {
	t.Parallel()

	d := Details{Title: "real", Extensions: map[string]any{"title": "shadow"}}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title":"real"`)
	assert.NotContains(t, string(data), "shadow")
}

func TestWithExtension_DoesNotMutate(t *testing.T) {
	t.Parallel()

	base := New(500, "boom").WithExtension("a", 1)
	derived := base.WithExtension("b", 2)

	_, ok := base.Extension("b")
	assert.False(t, ok)
	_, ok = derived.Extension("a")
	assert.True(t, ok)
}

func TestRoundTrip_KeepsExtensionNumbersVerbatim(t *testing.T) {
	t.Parallel()

	body := `{"title":"Payment failed","traceId":12345678901234567890,"amount":1.10,"limits":{"max":9007199254740993}}`

	d, err := Decode(strings.NewReader(body))
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"traceId":12345678901234567890`)
	assert.Contains(t, out, `"amount":1.10`)
	assert.Contains(t, out, `"max":9007199254740993`)
}
