package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/pkg/errors"
)

func TestRandomPassword(t *testing.T) {
	first, err := RandomPassword(18)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := RandomPassword(18)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if first == second {
		t.Errorf("expected two different passwords, got '%v' twice", first)
	}

	data, err := base64.RawURLEncoding.DecodeString(first)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 18, len(data); e != g {
		t.Errorf("len(data): expected '%v', got '%v'", e, g)
	}
}
