package constants

// Kode role di tabel roles (role ditentukan lewat user_roles,
// plus keberadaan coach_profile / student_profile).
const (
	RoleCodeCoach   = "coach_role"
	RoleCodeStudent = "student_role"
)

// Tag author di result_comments
const (
	CommentAuthorCoach   = "coach"
	CommentAuthorStudent = "student"
)
