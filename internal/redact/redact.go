// Package redact strips credentials from strings before they are logged or
// shown to the user. Connection errors from the database drivers can echo the
// configured database URL, password included.
package redact

import "regexp"

// CredentialPlaceholder replaces a redacted credential.
const CredentialPlaceholder = "[REDACTED_CREDENTIAL]"

var (
	// userinfo of a connection URL, e.g. postgres://user:secret@
	connUserInfoRegex = regexp.MustCompile(`(?i)\b((?:postgres|postgresql|sqlite3?|file)://)[^@/\s]+@`)

	// key=value style secrets, e.g. password=secret in a DSN
	passwordRegex = regexp.MustCompile(`(?i)\b(password|passwd|pwd|sslpassword)(\s*[=:]\s*['"]?)[^'"&\s]+`)
)

// String redacts credentials from s.
func String(s string) string {
	if s == "" {
		return s
	}
	s = connUserInfoRegex.ReplaceAllString(s, "${1}"+CredentialPlaceholder+"@")
	return passwordRegex.ReplaceAllString(s, "${1}${2}"+CredentialPlaceholder)
}

// Error redacts credentials from err's message. A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
