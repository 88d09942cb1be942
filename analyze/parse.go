package analyze

import (
	"regexp"
	"strings"

	"github.com/fwojciec/newsdesk"
)

// Each section runs from its header to the next expected header or the end
// of the reply.
var (
	captionsSection   = regexp.MustCompile(`(?s)LOWER_THIRDS:(.*?)(?:QUESTIONS:|$)`)
	questionsSection  = regexp.MustCompile(`(?s)QUESTIONS:(.*?)(?:LT_SELECTION:|$)`)
	selectionSection  = regexp.MustCompile(`(?s)LT_SELECTION:(.*?)(?:QUESTION_IMPORTANCE:|$)`)
	importanceSection = regexp.MustCompile(`(?s)QUESTION_IMPORTANCE:(.*?)(?:OBSERVATIONS:|$)`)
	observeSection    = regexp.MustCompile(`(?s)OBSERVATIONS:(.*?)(?:PROFESSIONAL_STANDARDS:|$)`)
	standardsSection  = regexp.MustCompile(`(?s)PROFESSIONAL_STANDARDS:(.*)$`)

	numberedItem = regexp.MustCompile(`\d+\.\s*(.+)`)
)

// ParseCompletion reads a completion reply laid out in the sections that
// BuildPrompt asks for. Missing sections are left empty. A reply without
// any known section header is an EINVALID error.
func ParseCompletion(text string) (*newsdesk.Analysis, error) {
	analysis := &newsdesk.Analysis{
		Captions:  []string{},
		Questions: []string{},
	}
	found := false

	if block, ok := section(captionsSection, text); ok {
		analysis.Captions = numberedItems(block)
		found = true
	}
	if block, ok := section(questionsSection, text); ok {
		analysis.Questions = numberedItems(block)
		found = true
	}

	commentary := []struct {
		re  *regexp.Regexp
		dst *string
	}{
		{selectionSection, &analysis.Commentary.SelectionRationale},
		{importanceSection, &analysis.Commentary.QuestionRationale},
		{observeSection, &analysis.Commentary.Observations},
		{standardsSection, &analysis.Commentary.StandardsNote},
	}
	for _, c := range commentary {
		if block, ok := section(c.re, text); ok {
			*c.dst = block
			found = true
		}
	}

	if !found {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "unparsable completion")
	}
	return analysis, nil
}

func section(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// numberedItems does not validate or resequence the numbering.
func numberedItems(block string) []string {
	items := []string{}
	for _, m := range numberedItem.FindAllStringSubmatch(block, -1) {
		if item := strings.TrimSpace(m[1]); item != "" {
			items = append(items, item)
		}
	}
	return items
}
