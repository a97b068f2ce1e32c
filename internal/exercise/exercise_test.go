package exercise

import "testing"

const reference = "contract SimpleStorage { uint256 public number; }"

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"identical", reference, true},
		{"leading whitespace", "  \n" + reference, true},
		{"trailing whitespace", reference + "\t\n ", true},
		{"both ends", "\n\n" + reference + "   ", true},
		{"inner whitespace differs", "contract  SimpleStorage { uint256 public number; }", false},
		{"case differs", "Contract SimpleStorage { uint256 public number; }", false},
		{"empty", "", false},
		{"prefix only", "contract SimpleStorage {", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.candidate, reference); got != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestCheckTrimsReference(t *testing.T) {
	if !Check(reference, "  "+reference+"\n") {
		t.Error("reference whitespace should be trimmed too")
	}
}

func TestEvaluate(t *testing.T) {
	ex := Exercise{
		Reference: reference,
		Hint:      "Incorrect. Please try again.",
		Success:   "Correct!",
	}

	fb := ex.Evaluate(reference)
	if !fb.Correct || fb.Message != "Correct!" {
		t.Errorf("Evaluate(reference) = %+v, want correct with success message", fb)
	}

	// Unlimited retries: the same wrong answer always gets the same hint.
	for i := 0; i < 3; i++ {
		fb = ex.Evaluate("contract Nope {}")
		if fb.Correct || fb.Message != "Incorrect. Please try again." {
			t.Errorf("attempt %d: Evaluate(wrong) = %+v, want hint", i, fb)
		}
	}
}
