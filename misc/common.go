package misc

import (
	"errors"
	"fmt"
	"log"
	"os"
)

var (
	ErrLogger  = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)
	WarnLogger = log.New(os.Stderr, "[ WARN ]: ", log.Lshortfile)
	InfoLogger = log.New(os.Stdout, "[ INFO ]: ", log.Lshortfile)
)

// CheckFileExists reports whether path names a regular file.
// A missing file is not an error.
func CheckFileExists(path string) (bool, error) {
	info, err := os.Stat(path)

	if err == nil { // file exists
		if !info.Mode().IsRegular() {
			return false, fmt.Errorf("%s is not a regular file", path)
		}

		return true, nil
	} else if errors.Is(err, os.ErrNotExist) { // file does not exists
		return false, nil
	} else { // unable to check if file exists or not
		return false, err
	}
}

// CheckDirExists is CheckFileExists for directories.
func CheckDirExists(path string) (bool, error) {
	info, err := os.Stat(path)

	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s is not a directory", path)
		}

		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else {
		return false, err
	}
}
