package handlers

// apiError is the wire shape for every error response:
// {"error": "...", "status": 502, "details": "...", "hint": "..."}.
// It implements huma.StatusError so handlers can return it directly, and
// ContentTypeFilter so responses stay application/json instead of the
// RFC 7807 problem type.
type apiError struct {
	httpStatus int

	Message string `json:"error"`
	Status  int    `json:"status,omitempty"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func (e *apiError) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (e *apiError) GetStatus() int { return e.httpStatus }

// ContentType implements huma.ContentTypeFilter.
func (*apiError) ContentType(string) string { return "application/json" }
