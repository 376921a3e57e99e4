package identity

import "testing"

func TestAccountID(t *testing.T) {
	// Known SHA-256 digests of decimal index strings.
	tests := []struct {
		index uint64
		want  string
	}{
		{1, "6b86b273ff34fce19d6b804eff5a3f5747ada4eaa22f1d49c01e52ddb7875b4b"},
		{2, "d4735e3a265e16eee03f59718b9b5d03019c07d8b6c51f90da3a666eec13ab35"},
		{42, "73475cb40a568e8da8a045ced110137e159f890ac4da883b6b17dc651b3a8049"},
	}

	for _, tt := range tests {
		if got := AccountID(tt.index); got != tt.want {
			t.Errorf("AccountID(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestAccountIDShape(t *testing.T) {
	for index := uint64(1); index <= 100; index++ {
		id := AccountID(index)
		if len(id) != 64 {
			t.Fatalf("AccountID(%d) length = %d, want 64", index, len(id))
		}
		for i := 0; i < len(id); i++ {
			c := id[i]
			if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
				t.Fatalf("AccountID(%d) contains non-lowercase-hex byte %q", index, c)
			}
		}
	}
}

func TestAccountIDDeterministic(t *testing.T) {
	if AccountID(12345) != AccountID(12345) {
		t.Error("AccountID is not deterministic for the same index")
	}
	if AccountID(1) == AccountID(2) {
		t.Error("AccountID collides for distinct indices")
	}
}
