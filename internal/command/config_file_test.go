package command

import (
	"testing"

	"github.com/rs/xid"
)

func TestDefaultConfigFileMissing(t *testing.T) {
	name := "billet-" + xid.New().String()

	if g := defaultConfigFile(name); g != "" {
		t.Errorf("defaultConfigFile(): expected empty path, got '%v'", g)
	}
}
