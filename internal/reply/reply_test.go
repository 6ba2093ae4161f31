package reply

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"double star", "**bold**", "bold"},
		{"double underscore", "__bold__", "bold"},
		{"single emphasis", "*italic* and _this_", "italic and this"},
		{"heading then blank line", "# Heading\n\nBody", "Heading\nBody"},
		{"deep heading", "## Title\nText", "Title\nText"},
		{"link", "[link](http://x)", "link"},
		{"blank line runs", "पहली पंक्ति\n\n\nदूसरी पंक्ति", "पहली पंक्ति\nदूसरी पंक्ति"},
		{"mixed hindi", "  **बुखार** में [डॉक्टर](https://x.y) से मिलें।  ", "बुखार में डॉक्टर से मिलें।"},
		{"list with heading", "### Step\n\n1. **Rest** well.\n\n\n2. Drink _water_.", "Step\n1. Rest well.\n2. Drink water."},
		{"empty", "", ""},
		{"stacked heading markers", "# # Title", "Title"},
		{"nested link", "[[a](b)](c)", "a"},
		{"heading left by emphasis", "### *#*", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"**bold**",
		"# Heading\n\nBody",
		"[link](http://x) and *more*",
		"### Step\n\n1. **Rest** well.\n\n\n2. Drink _water_.",
		"2 * 3 * 4",
		"पेट दर्द में **ORS** लें।\n\n\nडॉक्टर से मिलें।",
		"",
		"# #",
		"# # Title",
		"### *#*",
		"[\n\n# #",
		"[[a](b)](c)",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

const markupAlphabet = "*_#[]()\n a"

func randomMarkup(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = markupAlphabet[r.Intn(len(markupAlphabet))]
	}
	return string(b)
}

func TestSanitizeIdempotentRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 20000; i++ {
		in := randomMarkup(r, r.Intn(16))
		once := Sanitize(in)
		if !assert.Equal(t, once, Sanitize(once), "input %q", in) {
			return
		}
	}
}

func FuzzSanitizeIdempotent(f *testing.F) {
	for _, seed := range []string{"# #", "[[a](b)](c)", "### *#*", "[\n\n# #", "**a** _b_"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, in string) {
		once := Sanitize(in)
		if again := Sanitize(once); again != once {
			t.Fatalf("Sanitize(%q) = %q, Sanitize again = %q", in, once, again)
		}
	})
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator("")

	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"devanagari full stop", "आराम करें।", false},
		{"period", "Fine.", false},
		{"question", "Really?", false},
		{"exclamation", "Go!", false},
		{"trailing whitespace ignored", "  padded.  \n", false},
		{"empty passes", "", false},
		{"whitespace only passes", "   ", false},
		{"cut off hindi", "आराम करें और", true},
		{"trailing comma", "ends with comma,", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrIncomplete)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidator_CustomTerminators(t *testing.T) {
	v := NewValidator("。")

	assert.NoError(t, v.Validate("完成。"))
	assert.ErrorIs(t, v.Validate("Done."), ErrIncomplete)
}

func TestExtractAnswer(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"reasoning and eos", "<think>plan</think>\n\nउत्तर।</s>", "उत्तर।"},
		{"last delimiter wins", "a</think>b</think> final.", "final."},
		{"eos with spaces", "plain answer. </s>  ", "plain answer."},
		{"no markers", "no marker", "no marker"},
		{"trailing s is kept", "yes", "yes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractAnswer(tc.input))
		})
	}
}
