package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// LogError prints a diagnostic only when verbose mode is on.
func LogError(w io.Writer, msg string, err error) {
	if !viper.GetBool("verbose") {
		return
	}
	if err != nil {
		fmt.Fprintf(w, "[DEBUG] %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(w, "[DEBUG] %s\n", msg)
	}
}
