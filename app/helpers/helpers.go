package helpers

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// TitleToHandle derives a URL-safe handle from a title: surrounding
// whitespace is trimmed and every inner whitespace run becomes a single
// dash. Case is preserved.
func TitleToHandle(title string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(title), "-")
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
