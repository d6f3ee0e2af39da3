package customid

import "testing"

func TestRoundTrip(t *testing.T) {
	names := []string{"Windy", "Fly", "Ánh Sáng", "", "a b c", "The-Nothing"}

	for _, name := range names {
		token := CardInfo(name).Encode()
		decoded, err := Decode(token)
		if err != nil {
			t.Fatalf("Decode(%q) failed for name %q: %v", token, name, err)
		}
		if decoded.Kind != KindCardInfo {
			t.Fatalf("decoded kind = %d, want %d", decoded.Kind, KindCardInfo)
		}
		if decoded.CardName != name {
			t.Fatalf("decoded name = %q, want %q", decoded.CardName, name)
		}
	}
}

func TestTokenIsOpaqueAndControlSafe(t *testing.T) {
	token := CardInfo("Illusion").Encode()
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			t.Fatalf("token %q contains non-url-safe rune %q", token, r)
		}
	}
}

func TestDecodeRejectsForeignTokens(t *testing.T) {
	cases := []string{
		"not base64 at all!!",
		"",
		"AAAA====",
		"zzzzzzzz", // valid base64, wrong structure
	}
	for _, token := range cases {
		if _, err := Decode(token); err == nil {
			t.Errorf("Decode(%q) should fail", token)
		}
	}
}
