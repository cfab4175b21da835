package memory

import (
	"testing"

	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/billet/internal/core/port/testsuite"
)

func TestPostStore(t *testing.T) {
	testsuite.TestPostStore(t, func(t *testing.T) (port.PostStore, error) {
		return NewPostStore(), nil
	})
}
