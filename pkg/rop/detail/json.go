package detail

// Response is the serializable form of a Detail.
type Response struct {
	Tag             Tag      `json:"tag"`
	Context         []string `json:"context,omitempty"`
	ErrorCode       string   `json:"errorCode,omitempty"`
	ErrorMessage    string   `json:"errorMessage"`
	ErrorInstanceID string   `json:"errorInstanceId"`
	CorrelationID   string   `json:"correlationId,omitempty"`
	APIResponse     any      `json:"apiResponse,omitempty"`
}

// ToJSON flattens d for serialization. Returns nil if d is nil or a typed nil.
func ToJSON(d Detail) *Response {
	if isNil(d) {
		return nil
	}
	r := d.core().response()
	if api, ok := d.(*APIError); ok && !isNil(api.response) {
		r.APIResponse = api.response
	}
	return r
}

func (b *base) response() *Response {
	return &Response{
		Tag:             b.tag,
		Context:         b.Context(),
		ErrorCode:       b.code,
		ErrorMessage:    b.message,
		ErrorInstanceID: b.ErrorInstanceID(),
		CorrelationID:   b.correlationID,
	}
}
