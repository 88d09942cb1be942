package analyze

import (
	"fmt"

	"github.com/fwojciec/newsdesk"
)

// SystemPrompt casts the model as an Urdu news analyst.
const SystemPrompt = "آپ ایک ماہر اردو صحافی اور نیوز اینالسٹ ہیں۔"

// userPromptTemplate takes the article title and body, in that order. The
// reply format matches the headers ParseCompletion looks for.
const userPromptTemplate = `آپ ایک پروفیشنل صحافی، نیوز اینالسٹ، اور کرنٹ افیئرز پروگرام پروڈیوسر ہیں۔ دی گئی خبر کے لیے مکمل تجزیہ تیار کریں:

خبر کا عنوان: %s
خبر کا متن: %s

براہ کرم مندرجہ ذیل فارمیٹ میں جواب دیں:

LOWER_THIRDS:
1. [پہلا LT]
2. [دوسرا LT]
3. [تیسرا LT]
4. [چوتھا LT]
5. [پانچواں LT]
6. [چھٹا LT]
7. [ساتواں LT]
8. [آٹھواں LT]

QUESTIONS:
1. [پہلا سوال]
2. [دوسرا سوال]
3. [تیسرا سوال]
4. [چوتھا سوال]
5. [پانچواں سوال]
6. [چھٹا سوال]
7. [ساتواں سوال]
8. [آٹھواں سوال]

LT_SELECTION:
[LTs کے انتخاب کی وضاحت]

QUESTION_IMPORTANCE:
[سوالات کی اہمیت کی وضاحت]

OBSERVATIONS:
[مشاہدات اور پہلو]

PROFESSIONAL_STANDARDS:
[پروفیشنل معیار اور غیر جانبداری]
`

// BuildPrompt creates the completion prompt for an article.
func BuildPrompt(article *newsdesk.Article) newsdesk.Prompt {
	return newsdesk.Prompt{
		System: SystemPrompt,
		User:   fmt.Sprintf(userPromptTemplate, article.Title, article.Body),
	}
}
