package mimetype

import (
	"bufio"
	"bytes"
	"strings"

	"bitbucket.org/taruti/mimemagic"
)

const sniffLen = 512

// IsArchive reports whether the filename looks like an archive we know how
// to inflate, along with its mime type.
func IsArchive(filename string) (string, bool) {
	switch {
	case strings.HasSuffix(filename, ".tar"),
		strings.HasSuffix(filename, ".tar.gz"),
		strings.HasSuffix(filename, ".tgz"):
		return "application/x-tar", true
	case strings.HasSuffix(filename, ".zip"),
		strings.HasSuffix(filename, ".jar"):
		return "application/zip", true
	case strings.HasSuffix(filename, ".gz"):
		return "application/gzip", true
	}

	return "", false
}

// IsText reports whether the reader's first bytes look like plain text.
// The reader is only peeked, never consumed, so it can still be scanned
// afterwards.
func IsText(br *bufio.Reader) bool {
	prefix, _ := br.Peek(sniffLen)
	if len(prefix) == 0 {
		return true
	}

	if bytes.IndexByte(prefix, 0) != -1 {
		return false
	}

	return strings.HasPrefix(mimemagic.Match("text/plain", prefix), "text")
}
