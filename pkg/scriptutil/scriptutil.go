// Package scriptutil normalizes prelaunch scripts before execution: UTF-8
// BOM removal and DOS line-ending fixes so that scripts authored on Windows
// run under a POSIX shell.
package scriptutil

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const peekLen = 64 // look at first N bytes to figure out if it has shebang

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// textExtensions is predefined list of script and text
// file extensions.
var textExtensions = []string{
	".bat",
	".cmd",
	".sh",
	".txt",
}

// IsTextScript is a best effort to determine if a file is a script file
// (with a known file extension) or a file that starts with a shebang (#!).
func IsTextScript(path string) (bool, error) {
	if hasTextExtension(path) {
		return true, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrap(err, "failed to open file")
	}
	defer f.Close()
	b := make([]byte, peekLen)
	_, err = f.Read(b)
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, "failed to read file")
	}
	return hasShebang(b), nil
}

// hasShebang checks if provided file contents start with #! characters
// once the BOM is trimmed from the beginning.
func hasShebang(b []byte) bool {
	return bytes.HasPrefix(RemoveBOM(b), []byte{'#', '!'})
}

func hasTextExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range textExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// RemoveBOM strips a leading UTF-8 byte order mark if present.
func RemoveBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}

// Dos2Unix rewrites CRLF line endings as LF.
func Dos2Unix(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
}

// NormalizeScriptFile makes in-place changes to the file at path with BOM and
// DOS line-ending fixes to make the script POSIX-friendly. File mode is
// preserved.
func NormalizeScriptFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "failed to stat script")
	}

	b, err := ioutil.ReadFile(path) // read the file into memory for processing
	if err != nil {
		return errors.Wrap(err, "failed to read script")
	}

	fixed := Dos2Unix(RemoveBOM(b))
	if bytes.Equal(b, fixed) {
		return nil
	}

	return errors.Wrap(ioutil.WriteFile(path, fixed, info.Mode()), "failed to write normalized script")
}
