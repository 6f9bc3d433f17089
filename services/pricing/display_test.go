package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := TruncateDescription(long)
	assert.Equal(t, strings.Repeat("a", 120)+"...", got)

	short := strings.Repeat("b", 100)
	assert.Equal(t, short, TruncateDescription(short))

	exact := strings.Repeat("c", 120)
	assert.Equal(t, exact, TruncateDescription(exact))
}

func TestTruncateDescription_CountsRunes(t *testing.T) {
	desc := strings.Repeat("é", 130)
	got := TruncateDescription(desc)
	assert.Equal(t, strings.Repeat("é", 120)+"...", got)
}

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"keeps formatting", "<p>Queen bed<br/>and <strong>sofa</strong></p>", "<p>Queen bed<br>and <strong>sofa</strong></p>"},
		{"strips attributes", `<p class="x" onclick="steal()">Hi</p>`, "<p>Hi</p>"},
		{"drops scripts", "<p>Ok<script>alert(1)</script></p>", "<p>Ok</p>"},
		{"unwraps unknown tags", `<a href="javascript:x()">link</a>`, "link"},
		{"escapes text", "<p>1 &lt; 2 &amp; \"quoted\"</p>", "<p>1 &lt; 2 &amp; &#34;quoted&#34;</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeHTML(tt.in))
		})
	}
}

func TestTruncateDescription_SkipsHTML(t *testing.T) {
	html := "<p>" + strings.Repeat("x", 200) + "</p>"
	assert.Equal(t, html, TruncateDescription(html))
}

func TestOnboardCredit(t *testing.T) {
	price := 1299.0
	assert.Equal(t, 120, OnboardCredit(&price, 0.10))
	assert.Equal(t, 100, OnboardCredit(&price, 0.08))

	small := 95.0
	assert.Equal(t, 0, OnboardCredit(&small, 0.10))

	zero := 0.0
	negative := -50.0
	assert.Equal(t, 0, OnboardCredit(nil, 0.10))
	assert.Equal(t, 0, OnboardCredit(&zero, 0.10))
	assert.Equal(t, 0, OnboardCredit(&negative, 0.10))
}
