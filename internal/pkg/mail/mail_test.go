package mail

import (
	"strings"
	"testing"
)

func TestEncodeSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		encoded bool
	}{
		{"plain ascii", "Weekly newsletter", false},
		{"korean", "[Maison Lumière] 구독 확인 · Confirm your subscription", true},
		{"korean only", "뉴스레터가 도착했습니다", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeSubject(tt.subject)
			if !tt.encoded {
				if got != tt.subject {
					t.Errorf("encodeSubject(%q) = %q, want unchanged", tt.subject, got)
				}
				return
			}
			if !strings.HasPrefix(got, "=?utf-8?q?") || !strings.HasSuffix(got, "?=") {
				t.Errorf("encodeSubject(%q) = %q, want RFC 2047 encoded word", tt.subject, got)
			}
			for _, r := range got {
				if r > 127 {
					t.Errorf("encoded subject still contains non-ASCII: %q", got)
					break
				}
			}
		})
	}
}

func TestRenderNewsletterFillsDefaults(t *testing.T) {
	html, err := RenderNewsletter(NewsletterData{
		Subject:        "시음회 초대",
		Body:           "<p>안내</p>",
		UnsubscribeURL: "https://example.com/u/tok",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "Maison Lumière") {
		t.Errorf("default site name missing:\n%s", html)
	}
	if !strings.Contains(html, "<p>안내</p>") {
		t.Errorf("body not embedded:\n%s", html)
	}
	if !strings.Contains(html, "https://example.com/u/tok") {
		t.Errorf("unsubscribe link missing:\n%s", html)
	}
}
