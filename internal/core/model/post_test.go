package model

import "testing"

func TestIsRoutableSlug(t *testing.T) {
	type testCase struct {
		Slug     PostSlug
		Expected bool
	}

	testCases := []testCase{
		{Slug: "hello-world", Expected: true},
		{Slug: "New", Expected: true},
		{Slug: "new", Expected: false},
		{Slug: "admin", Expected: false},
		{Slug: ".", Expected: false},
		{Slug: "..", Expected: false},
		{Slug: "a/b", Expected: false},
		{Slug: "../admin", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.Slug), func(t *testing.T) {
			if e, g := tc.Expected, IsRoutableSlug(tc.Slug); e != g {
				t.Errorf("IsRoutableSlug(%s): expected '%v', got '%v'", tc.Slug, e, g)
			}
		})
	}
}
