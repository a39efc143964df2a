package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "Kubernetes on GKE", "Kubernetes on GKE"},
		{"paragraph tags", "<p>Deploying to <b>AKS</b></p>", "Deploying to AKS"},
		{"entities decoded", "Docker &amp; Kubernetes&#8217; story", "Docker & Kubernetes’ story"},
		{"script removed", "<p>Hi</p><script>alert(1)</script>", "Hi"},
		{"style removed", "<style>p{}</style>Text", "Text"},
		{"whitespace collapsed", "  many \n\t spaces  ", "many spaces"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.input))
		})
	}
}

func TestStripHTML_ParsesAngleBracketsAsMarkup(t *testing.T) {
	// Excerpts carry real markup, so generics-style text is not preserved here
	assert.Equal(t, "Using List in Java", StripHTML("Using List<String> in Java"))
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"generics kept", "Using List<String> in Java", "Using List<String> in Java"},
		{"map type kept", "Go's map[string]<-chan int", "Go's map[string]<-chan int"},
		{"comparison kept", "a < b and c > d", "a < b and c > d"},
		{"entities decoded", "AT&T &amp; Go&#8217;s &lt;T&gt;", "AT&T & Go’s <T>"},
		{"whitespace collapsed", "  Spring \n\t Boot  ", "Spring Boot"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeText(tt.input))
		})
	}
}
