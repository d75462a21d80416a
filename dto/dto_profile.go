package dto

// ProfileData is the free-form submission payload. AcademicYearLevels
// and AcademicSections are `any` because clients send them either as a
// JSON array or as a JSON-encoded string; they are normalized once at
// the boundary with utils.StringList.
type ProfileData struct {
	FullName     string            `json:"fullName"`
	Nickname     string            `json:"nickname"`
	Email        string            `json:"email"`
	PhotoURL     string            `json:"photoUrl"`
	Motto        string            `json:"motto"`
	Bio          string            `json:"bio"`
	Achievements []string          `json:"achievements"`
	SocialLinks  map[string]string `json:"socialLinks"`

	Department   string `json:"department"`
	Course       string `json:"course"`
	YearLevel    string `json:"yearLevel"`
	BlockSection string `json:"blockSection"`

	DepartmentAssigned string `json:"departmentAssigned"`
	Position           string `json:"position"`
	AcademicDepartment string `json:"academicDepartment"`
	AcademicYearLevels any    `json:"academicYearLevels"`
	AcademicSections   any    `json:"academicSections"`
}

type SubmitProfileRequest struct {
	SchoolYearID string      `json:"schoolYearId"`
	UserType     string      `json:"userType"`
	UserID       string      `json:"userId"`
	ProfileData  ProfileData `json:"profileData"`
}

type RejectProfileRequest struct {
	Reason string `json:"reason"`
}

type SubmitProfileResponse struct {
	Success   bool   `json:"success"`
	ProfileID string `json:"profileId"`
	Action    string `json:"action"`
	IsUpdate  bool   `json:"isUpdate,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
