package newsdesk

import "strings"

// InputType says how Request.Content should be read.
type InputType string

// InputType constants for Request.
const (
	InputURL  InputType = "url"
	InputText InputType = "text"
)

// Request is a single analysis request.
type Request struct {
	Type    InputType `json:"type"`
	Content string    `json:"content"`
}

// Validate returns an error if the request is missing its type or content.
// Any type other than InputURL is treated as raw text.
func (r *Request) Validate() error {
	if strings.TrimSpace(string(r.Type)) == "" {
		return Errorf(EINVALID, "request type required")
	}
	if strings.TrimSpace(r.Content) == "" {
		return Errorf(EINVALID, "request content required")
	}
	return nil
}

// IsURL reports whether the content is a URL to fetch.
func (r *Request) IsURL() bool {
	return r.Type == InputURL
}
