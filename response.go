package newsdesk

import "context"

// Response is the wire-level result of an analysis request.
type Response struct {
	Title      string      `json:"title"`
	Sources    []SourceRef `json:"sources"`
	Captions   []string    `json:"lower_thirds"`
	Questions  []string    `json:"questions"`
	Commentary Commentary  `json:"analysis"`
}

// Assemble merges a resolved article and its analysis into a Response.
// Nil slices are replaced with empty ones so they encode as [] rather than null.
func Assemble(article *Article, sources []SourceRef, analysis *Analysis) *Response {
	resp := &Response{
		Sources:   sources,
		Captions:  []string{},
		Questions: []string{},
	}
	if article != nil {
		resp.Title = article.Title
	}
	if resp.Sources == nil {
		resp.Sources = []SourceRef{}
	}
	if analysis != nil {
		if analysis.Captions != nil {
			resp.Captions = analysis.Captions
		}
		if analysis.Questions != nil {
			resp.Questions = analysis.Questions
		}
		resp.Commentary = analysis.Commentary
	}
	return resp
}

// Summarizer runs the full pipeline for a request.
type Summarizer interface {
	// Summarize resolves, analyzes and assembles a response.
	// Returns EINVALID for malformed requests and EEXTRACT when a URL
	// could not be turned into an article.
	Summarize(ctx context.Context, req *Request) (*Response, error)
}
