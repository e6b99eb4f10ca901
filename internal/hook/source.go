package hook

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// ReadSource opens path on fs, or returns stdin when path is "" or "-".
// The caller closes the result; closing stdin is a no-op.
func ReadSource(fs afero.Fs, path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	return f, nil
}
