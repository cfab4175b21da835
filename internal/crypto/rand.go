package crypto

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

func RandomBytes(size int) ([]byte, error) {
	data := make([]byte, size)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != size {
		return nil, errors.Errorf("could not read %d random bytes", size)
	}

	return data, nil
}

// RandomPassword returns a url-safe string built from size random bytes.
func RandomPassword(size int) (string, error) {
	data, err := RandomBytes(size)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return base64.RawURLEncoding.EncodeToString(data), nil
}
