package pipeline

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/zhelvis/companiesdb/pkg/errors"
)

// Diff returns a unified diff between the file currently at path and the
// rendered data that would replace it. An absent file diffs against empty
// content. The empty string means the file would not change.
func Diff(path string, data []byte) (string, error) {
	current, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", errors.WrapIO("read", path, err)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(data)),
		FromFile: path + " (current)",
		ToFile:   path + " (incoming)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}
	return text, nil
}
