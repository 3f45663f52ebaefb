package respond

import "regexp"

// emailPattern matches addresses so logs keep the domain but not the mailbox.
var emailPattern = regexp.MustCompile(`([A-Za-z0-9._%+\-]+)@([A-Za-z0-9.\-]+\.[A-Za-z]{2,})`)

// SanitizeError returns the error text with email addresses masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return emailPattern.ReplaceAllString(err.Error(), "****@$2")
}
