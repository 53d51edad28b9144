package hashutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/arthur-debert/sweep/pkg/types"
)

// Sum returns the SHA256 checksum of data
func Sum(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// FileChecksum calculates the SHA256 checksum of a file of fsys
func FileChecksum(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Sum(data), nil
}
