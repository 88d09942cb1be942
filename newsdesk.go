// Package newsdesk turns a news article, given as raw text or as a URL, into
// a structured editorial analysis: lower-third captions, panel questions and
// commentary for a current-affairs programme.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, openai/).
package newsdesk
