package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/josephgoksu/complexity-hook/internal/hook"
	"github.com/spf13/afero"
)

// appFs is the filesystem used for --input/--file. Tests swap it for a MemMapFs.
var appFs = afero.NewOsFs()

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// readAllFrom reads path from appFs, or stdin when path is "" or "-".
func readAllFrom(path string, stdin io.Reader) (string, error) {
	rc, err := hook.ReadSource(appFs, path, stdin)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
