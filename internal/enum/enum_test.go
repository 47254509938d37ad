package enum

import "testing"

func TestIsValidSoupSize(t *testing.T) {
	for _, s := range []string{"none", "half", "full"} {
		if !IsValidSoupSize(s) {
			t.Errorf("IsValidSoupSize(%q) = false", s)
		}
	}
	for _, s := range []string{"", "HALF", "quarter"} {
		if IsValidSoupSize(s) {
			t.Errorf("IsValidSoupSize(%q) = true", s)
		}
	}
}

func TestIsValidMainDishType(t *testing.T) {
	for _, s := range []string{"main", "main_light", "pizza"} {
		if !IsValidMainDishType(s) {
			t.Errorf("IsValidMainDishType(%q) = false", s)
		}
	}
	if IsValidMainDishType("dessert") {
		t.Error("IsValidMainDishType(dessert) = true")
	}
}
