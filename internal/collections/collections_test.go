package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name       string
		userType   string
		department string
		want       string
	}{
		{"student college", "student", "College", College},
		{"student senior high", "student", "Senior High", SeniorHigh},
		{"student junior high", "student", "Junior High", JuniorHigh},
		{"student elementary", "student", "Elementary", Elementary},
		{"student unmapped department falls back to college", "student", "Night School", College},
		{"student empty department falls back to college", "student", "", College},
		{"alumni ignores department", "alumni", "College", Alumni},
		{"faculty", "faculty", "", FacultyStaff},
		{"staff", "staff", "", FacultyStaff},
		{"utility", "utility", "", FacultyStaff},
		{"ar-sisters", "ar-sisters", "", FacultyStaff},
		{"advisory", "advisory", "", Advisory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.userType, tc.department)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveUnknownUserType(t *testing.T) {
	_, err := Resolve("visitor", "College")
	require.Error(t, err)

	var unknown *UnknownUserTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "visitor", unknown.UserType)
}

func TestProfileCollectionsCoversEveryTarget(t *testing.T) {
	cols := ProfileCollections()
	assert.Len(t, cols, 7)

	seen := map[string]bool{}
	for _, c := range cols {
		seen[c] = true
	}
	for _, want := range []string{College, SeniorHigh, JuniorHigh, Elementary, Alumni, FacultyStaff, Advisory} {
		assert.True(t, seen[want], "missing %s", want)
	}
}
