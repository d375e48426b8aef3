package storage

import "testing"

func TestEscapePathSegments(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "普通键原样保留", key: "photos/2024/a.jpg", expected: "photos/2024/a.jpg"},
		{name: "空格转义", key: "photos/Sunset Beach.jpg", expected: "photos/Sunset%20Beach.jpg"},
		{name: "井号转义", key: "photos/#1 best.jpg", expected: "photos/%231%20best.jpg"},
		{name: "问号转义", key: "photos/what?.jpg", expected: "photos/what%3F.jpg"},
		{name: "分隔符不受影响", key: "a/b/c d/e.jpg", expected: "a/b/c%20d/e.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapePathSegments(tt.key); got != tt.expected {
				t.Errorf("escapePathSegments(%q) = %q, 期望 %q", tt.key, got, tt.expected)
			}
		})
	}
}
