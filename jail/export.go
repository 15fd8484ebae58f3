package jail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Export wraps the jail(8) command to dump the parameters of every running
// jail.  An empty -e separator requests NUL-delimited records, which keeps
// values containing spaces or newlines unambiguous.  The full output is
// buffered before parsing begins.
func Export(ctx context.Context) (*Stream, error) {
	cmd := exec.CommandContext(ctx, "jail", "-e", "")
	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("jail: export failed: %s: %w", bytes.TrimSpace(ee.Stderr), err)
		}
		return nil, fmt.Errorf("jail: export failed: %w", err)
	}
	logrus.WithField("bytes", len(out)).Debug("read jail export")
	return NewStream(out), nil
}
