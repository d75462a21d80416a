// Package collections maps a submission's user type and department to
// the backing yearbook collection. Routing is pure so review and
// fan-out logic can resolve targets without touching the database.
package collections

import "fmt"

const (
	College      = "College_yearbook"
	SeniorHigh   = "SeniorHigh_yearbook"
	JuniorHigh   = "JuniorHigh_yearbook"
	Elementary   = "Elementary_yearbook"
	Alumni       = "Alumni_yearbook"
	FacultyStaff = "FacultyStaff_yearbook"
	Advisory     = "advisory_profiles"
)

var studentByDepartment = map[string]string{
	"College":     College,
	"Senior High": SeniorHigh,
	"Junior High": JuniorHigh,
	"Elementary":  Elementary,
}

var fixedByUserType = map[string]string{
	"alumni":     Alumni,
	"faculty":    FacultyStaff,
	"staff":      FacultyStaff,
	"utility":    FacultyStaff,
	"ar-sisters": FacultyStaff,
	"advisory":   Advisory,
}

type UnknownUserTypeError struct {
	UserType string
}

func (e *UnknownUserTypeError) Error() string {
	return fmt.Sprintf("unknown user type: %q", e.UserType)
}

// Resolve returns the collection a profile of the given user type
// belongs in. Students route by department and fall back to College
// when the department is absent or unmapped; every other user type has
// a fixed target.
func Resolve(userType, department string) (string, error) {
	if userType == "student" {
		if col, ok := studentByDepartment[department]; ok {
			return col, nil
		}
		return College, nil
	}
	if col, ok := fixedByUserType[userType]; ok {
		return col, nil
	}
	return "", &UnknownUserTypeError{UserType: userType}
}

// ProfileCollections lists every collection a profile document may
// live in, in lookup order. Used by the cross-collection id search.
func ProfileCollections() []string {
	return []string{
		College, SeniorHigh, JuniorHigh, Elementary,
		Alumni, FacultyStaff, Advisory,
	}
}
