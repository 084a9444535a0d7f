package apply

import (
	"bytes"
	"fmt"
	"os"
)

// backup is a scoped snapshot of a file's bytes in a scratch location.
// The scratch copy exists from newBackup until Close; Close runs on every
// exit path so no stray backups survive a run.
type backup struct {
	path    string // original file
	scratch string // scratch copy
	mode    os.FileMode
}

// newBackup snapshots the file at path into a scratch file.
func newBackup(path string) (*backup, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f, err := os.CreateTemp("", "fmtgate-*.bak")
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("close scratch file: %w", err)
	}

	return &backup{path: path, scratch: f.Name(), mode: info.Mode().Perm()}, nil
}

// Changed reports whether the file's current bytes differ from the snapshot.
func (b *backup) Changed() (bool, error) {
	current, err := os.ReadFile(b.path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", b.path, err)
	}
	original, err := os.ReadFile(b.scratch)
	if err != nil {
		return false, fmt.Errorf("read scratch %s: %w", b.scratch, err)
	}
	return !bytes.Equal(current, original), nil
}

// Restore writes the snapshot bytes back over the file, undoing any partial
// edits from a failed command chain.
func (b *backup) Restore() error {
	data, err := os.ReadFile(b.scratch)
	if err != nil {
		return fmt.Errorf("read scratch %s: %w", b.scratch, err)
	}
	if err := os.WriteFile(b.path, data, b.mode); err != nil {
		return fmt.Errorf("write %s: %w", b.path, err)
	}
	return nil
}

// Close removes the scratch file. Safe to call multiple times.
func (b *backup) Close() {
	if b.scratch == "" {
		return
	}
	_ = os.Remove(b.scratch)
	b.scratch = ""
}
