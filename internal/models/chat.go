package models

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// ProbeResponse is returned by the health probe endpoints.
type ProbeResponse struct {
	Status          string `json:"status"`
	Completion      string `json:"completion,omitempty"`
	FallbackEntries int    `json:"fallback_entries,omitempty"`
}
