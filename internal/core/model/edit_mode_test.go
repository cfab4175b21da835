package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseEditMode(t *testing.T) {
	type testCase struct {
		Raw           string
		ExpectedNew   bool
		ExpectedSlug  PostSlug
		ExpectedError error
	}

	testCases := []testCase{
		{Raw: "new", ExpectedNew: true, ExpectedSlug: ""},
		{Raw: "hello-world", ExpectedNew: false, ExpectedSlug: "hello-world"},
		{Raw: "New", ExpectedNew: false, ExpectedSlug: "New"},
		{Raw: "", ExpectedError: ErrMissingSlug},
	}

	for _, tc := range testCases {
		t.Run(tc.Raw, func(t *testing.T) {
			mode, err := ParseEditMode(tc.Raw)
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("err: expected '%v', got '%v'", tc.ExpectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedNew, mode.IsNew(); e != g {
				t.Errorf("mode.IsNew(): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedSlug, mode.Slug(); e != g {
				t.Errorf("mode.Slug(): expected '%v', got '%v'", e, g)
			}
		})
	}
}
