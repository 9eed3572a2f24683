package detail

import "encoding/json"

// APIResponse is the part of an external API error body the ApiError variant
// needs. problem.Details implements it.
type APIResponse interface {
	ProblemTitle() string
	ProblemDetail() string
	ProblemInstance() string
}

// APIError wraps a structured error response returned by an external API.
type APIError struct {
	base
	response APIResponse
}

// NewAPIError derives the message from the response title, falling back to
// its detail, and the instance id from the response instance.
func NewAPIError(opts Options, response APIResponse) *APIError {
	if !isNil(response) {
		switch {
		case response.ProblemTitle() != "":
			opts.ErrorMessage = response.ProblemTitle()
		case response.ProblemDetail() != "":
			opts.ErrorMessage = response.ProblemDetail()
		}
		if response.ProblemInstance() != "" {
			opts.ErrorInstanceID = response.ProblemInstance()
		}
	}

	d := &APIError{response: response}
	d.init(TagAPIError, opts)
	return d
}

// Response returns the original API response.
func (e *APIError) Response() APIResponse {
	return e.response
}

func (e *APIError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}

func IsAPIError(d Detail) bool {
	_, ok := d.(*APIError)
	return ok
}
