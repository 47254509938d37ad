package storage

import (
	"strings"
	"testing"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{name: "with base", baseURL: "https://img.example.com", expected: "https://img.example.com/dishes/a.jpg"},
		{name: "trailing slash", baseURL: "https://img.example.com/", expected: "https://img.example.com/dishes/a.jpg"},
		{name: "bucket fallback", baseURL: "", expected: "https://menu-images/dishes/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PublicURL(tt.baseURL, "menu-images", "dishes/a.jpg")
			if got != tt.expected {
				t.Errorf("PublicURL = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDishImageKey(t *testing.T) {
	key := DishImageKey("Photo.JPG")
	if !strings.HasPrefix(key, "dishes/") || !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key: got %q", key)
	}
	if DishImageKey("a.png") == DishImageKey("a.png") {
		t.Error("keys should be unique per upload")
	}
	if k := DishImageKey("noext"); strings.Contains(k[len("dishes/"):], ".") {
		t.Errorf("key without extension: got %q", k)
	}
}
