package git

import (
	"net/url"
	"regexp"
	"strings"
)

const redacted = "redacted"

// userinfoPattern matches the userinfo part of URLs embedded in free text,
// such as the request URL inside a *url.Error.
var userinfoPattern = regexp.MustCompile(`(://)[^/@\s"]+@`)

// Redact masks any credentials embedded in a remote URL. URLs that cannot be
// parsed are masked entirely.
func Redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return redacted
	}
	if u.User == nil {
		return raw
	}
	u.User = url.User(redacted)
	return u.String()
}

// redactedError hides credentials in the message of err. Unwrap still
// exposes err for errors.Is checks.
type redactedError struct {
	err error
	msg string
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// redactError masks URL userinfo and every non-empty secret in err's message.
func redactError(err error, secrets ...string) error {
	if err == nil {
		return nil
	}
	msg := userinfoPattern.ReplaceAllString(err.Error(), "${1}"+redacted+"@")
	for _, s := range secrets {
		if s != "" {
			msg = strings.ReplaceAll(msg, s, redacted)
		}
	}
	if msg == err.Error() {
		return err
	}
	return &redactedError{err: err, msg: msg}
}
