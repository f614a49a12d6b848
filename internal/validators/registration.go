package validators

import "regexp"

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`\d`)
)

func IsValidUsername(username string) bool {
	return len(username) >= 3 &&
		len(username) <= 30 &&
		usernamePattern.MatchString(username)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword requires at least 6 characters including a letter and a
// digit.
func IsValidPassword(password string) bool {
	return len(password) >= 6 &&
		letterPattern.MatchString(password) &&
		digitPattern.MatchString(password)
}

func IsValidFullName(fullName string) bool {
	return len(fullName) >= 2 && len(fullName) <= 100
}

func IsValidRole(role string) bool {
	return role == "student" || role == "professor"
}
