package analyze

import (
	"context"
	"slices"

	"github.com/fwojciec/newsdesk"
)

// Ensure ConstantGenerator implements newsdesk.Generator at compile time.
var _ newsdesk.Generator = (*ConstantGenerator)(nil)

// ConstantGenerator returns the same sample analysis for every article.
// It is the default generator and the fallback for CompletionGenerator.
type ConstantGenerator struct{}

// NewConstantGenerator creates a new ConstantGenerator.
func NewConstantGenerator() *ConstantGenerator {
	return &ConstantGenerator{}
}

// Generate returns a copy of the sample analysis. It never fails.
func (g *ConstantGenerator) Generate(ctx context.Context, article *newsdesk.Article) (*newsdesk.Analysis, error) {
	return &newsdesk.Analysis{
		Captions:   slices.Clone(sampleCaptions),
		Questions:  slices.Clone(sampleQuestions),
		Commentary: sampleCommentary,
	}, nil
}

var sampleCaptions = []string{
	"سندھ طاس معاہدہ: بھارت کا 'فرار'؟",
	"ہیگ عدالت کا فیصلہ: بھارت نے مسترد کیا",
	"پانی کا تنازع: پاکستان کا موقف کیا ہے؟",
	"معاہدے کی خلاف ورزی: عالمی قانون کی پامالی؟",
	"آبی وسائل: علاقائی استحکام پر اثرات",
	"پاکستان کا دعویٰ: 'پانی کا ایک قطرہ بھی نہیں چھین سکتے'",
	"بھارت کا ردعمل: 'عدالت کا دائرہ اختیار نہیں'",
	"مستقبل کے تعلقات: پانی کا تنازع کتنا اہم؟",
}

var sampleQuestions = []string{
	"سندھ طاس معاہدے کی تاریخی اہمیت کیا ہے اور اس کے موجودہ تنازع پر کیا اثرات مرتب ہو سکتے ہیں؟",
	"بھارت کی جانب سے ہیگ عدالت کے فیصلے کو مسترد کرنے کے عالمی قانونی اور سفارتی مضمرات کیا ہیں؟",
	"پاکستان کے آبی وسائل پر اس تنازع کے ممکنہ طویل مدتی اثرات کیا ہو سکتے ہیں؟",
	"کیا اس تنازع کا علاقائی امن و استحکام پر کوئی اثر پڑے گا؟",
	"دونوں ممالک کے درمیان پانی کے تنازع کو حل کرنے کے لیے کون سے سفارتی راستے اختیار کیے جا سکتے ہیں؟",
	"کیا یہ تنازع دونوں ممالک کے درمیان دیگر دوطرفہ تعلقات کو مزید خراب کر سکتا ہے؟",
	"عالمی برادری اس تنازع میں کیا کردار ادا کر سکتی ہے؟",
	"پاکستان اور بھارت کے درمیان پانی کے مسئلے پر مستقبل میں تعاون کے کیا امکانات ہیں؟",
}

var sampleCommentary = newsdesk.Commentary{
	SelectionRationale: "لوئر تھرڈز کا انتخاب خبر کے مرکزی نکات کو اجاگر کرنے کے لیے کیا گیا ہے، جن میں بھارت کا ہیگ عدالت کے فیصلے کو مسترد کرنا، سندھ طاس معاہدے کی اہمیت، اور پاکستان کے موقف کو شامل کیا گیا ہے۔",
	QuestionRationale:  "پینل کے سوالات خبر کے مختلف پہلوؤں، جیسے تاریخی، سیاسی، اور مستقبل کے اثرات کو زیر بحث لانے کے لیے ڈیزائن کیے گئے ہیں۔",
	Observations:       "اس خبر میں کئی اہم سیاسی اور سفارتی پہلو نمایاں ہیں۔ بھارت کا ہیگ عدالت کے فیصلے کو مسترد کرنا عالمی قانون اور بین الاقوامی معاہدوں کے احترام کے حوالے سے سوالات اٹھاتا ہے۔",
	StandardsNote:      "اس تجزیے میں غیر جانبداری کو برقرار رکھنے کی کوشش کی گئی ہے، اور تمام دعوے خبر میں موجود حقائق پر مبنی ہیں۔",
}
