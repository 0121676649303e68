package campaign

import "testing"

func TestAsciiOnlyIsIdempotentOnAscii(t *testing.T) {
	in := "Perek 3: Crossing the Jordan <a href=\"x\">listen</a>"
	if got := asciiOnly(in); got != in {
		t.Errorf("ascii-only input should be untouched, got %q", got)
	}
}

func TestAsciiOnlyStripsHighCodePoints(t *testing.T) {
	in := "Shalom שלום world"
	want := "Shalom  world"
	if got := asciiOnly(in); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAsciiOnlyRemovesExactlyTheOffendingRune(t *testing.T) {
	in := "cafés"
	want := "cafs"
	if got := asciiOnly(in); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSanitizeBodyTranscodesCleanly(t *testing.T) {
	in := "plain ascii body"
	got, err := SanitizeBody(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != in {
		t.Errorf("expected %q, got %q", in, got)
	}
}
