package ai

import "testing"

func TestUnmarshalAIJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain", `{"excerpt":"셀러에서 보낸 오후"}`},
		{"fenced", "```json\n{\"excerpt\":\"셀러에서 보낸 오후\"}\n```"},
		{"prose", "Here is the JSON you asked for: {\"excerpt\":\"셀러에서 보낸 오후\"} hope it helps"},
	}
	for _, tt := range tests {
		var out struct {
			Excerpt string `json:"excerpt"`
		}
		if err := unmarshalAIJSON(tt.raw, &out); err != nil {
			t.Errorf("%s: unmarshalAIJSON error: %v", tt.name, err)
			continue
		}
		if out.Excerpt != "셀러에서 보낸 오후" {
			t.Errorf("%s: excerpt = %q", tt.name, out.Excerpt)
		}
	}
}

func TestUnmarshalAIJSONRejectsGarbage(t *testing.T) {
	var out struct{}
	if err := unmarshalAIJSON("sorry, I cannot do that", &out); err == nil {
		t.Error("expected error for non-JSON response")
	}
}

func TestNormalizeOpenAICompatibleEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "https://api.openai.com"},
		{"https://api.example.com", "https://api.example.com"},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com/v1", "https://api.example.com"},
	}
	for _, tt := range tests {
		if got := normalizeOpenAICompatibleEndpoint(tt.in); got != tt.want {
			t.Errorf("normalizeOpenAICompatibleEndpoint(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeOpenAIBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"https://api.example.com", "https://api.example.com/v1"},
		{"https://api.example.com/v1", "https://api.example.com/v1"},
	}
	for _, tt := range tests {
		if got := normalizeOpenAIBaseURL(tt.in); got != tt.want {
			t.Errorf("normalizeOpenAIBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
