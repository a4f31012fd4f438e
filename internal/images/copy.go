package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// reUnsafe matches filename character runs the importer rejects.
var reUnsafe = regexp.MustCompile(`[^-\w./]+`)

// SanitizeFilename collapses each run of unsafe characters to a single
// underscore.
func SanitizeFilename(name string) string {
	return reUnsafe.ReplaceAllString(name, "_")
}

// CopyAll copies every regular file from sourcePath into targetPath
// under its sanitized name and returns the number of files copied.
func CopyAll(sourcePath, targetPath string) (int, error) {
	entries, err := os.ReadDir(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("read images dir %s: %w", sourcePath, err)
	}
	if err := os.MkdirAll(targetPath, 0o755); err != nil {
		return 0, fmt.Errorf("create images dir %s: %w", targetPath, err)
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(sourcePath, entry.Name())
		dst := filepath.Join(targetPath, SanitizeFilename(entry.Name()))
		if err := copyFile(src, dst); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open image %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create image %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy image %s: %w", dst, err)
	}
	return out.Close()
}
