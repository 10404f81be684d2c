package v1

import "strings"

// parseRawForm splits one line of key=value pairs on '&'. Pairs with a
// missing key or value are silently skipped. Values are kept verbatim: no
// percent-decoding, matching the legacy wire behavior.
func parseRawForm(line string) map[string]string {
	fields := make(map[string]string)

	for _, pair := range strings.Split(line, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			continue
		}

		fields[key] = value
	}

	return fields
}

// firstLine returns the body up to the first newline, like the line-oriented
// reader of the original gateway program.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimRight(s[:i], "\r")
	}

	return s
}

// sessionToken scans the combined Cookie header for the first "<name>="
// occurrence and returns the value up to the next ';' or end of string.
func sessionToken(cookieHeader, name string) string {
	idx := strings.Index(cookieHeader, name+"=")
	if idx < 0 {
		return ""
	}

	value := cookieHeader[idx+len(name)+1:]
	if end := strings.IndexByte(value, ';'); end >= 0 {
		value = value[:end]
	}

	return value
}
