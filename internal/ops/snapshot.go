// Package ops implements operational tooling for the persisted game
// state: point-in-time snapshots that can be exported, verified and
// imported into a fresh data directory.
package ops

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// The documents a snapshot covers. Each is a standalone JSON file in
// the data directory.
var documents = []string{"difficulty.json", "layout.json", "journal.json"}

const snapshotVersion = 1

// Snapshot bundles the persisted documents into one file with a
// checksum, so a copy can be verified before anyone imports it.
type Snapshot struct {
	Version   int                        `json:"version"`
	CreatedAt time.Time                  `json:"created_at"`
	Checksum  string                     `json:"checksum"`
	Documents map[string]json.RawMessage `json:"documents"`
}

var ErrChecksumMismatch = errors.New("ops: snapshot checksum mismatch")

// Export reads the data directory and writes a snapshot file. Missing
// documents are skipped; a data dir with nothing persisted yet still
// exports cleanly.
func Export(dataDir, outPath string) (*Snapshot, error) {
	dataDir = filepath.Clean(strings.TrimSpace(dataDir))
	outPath = filepath.Clean(strings.TrimSpace(outPath))
	if dataDir == "" || outPath == "" {
		return nil, fmt.Errorf("dataDir and outPath are required")
	}

	snap := &Snapshot{
		Version:   snapshotVersion,
		CreatedAt: time.Now().UTC(),
		Documents: map[string]json.RawMessage{},
	}
	for _, name := range documents {
		b, err := os.ReadFile(filepath.Join(dataDir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !json.Valid(b) {
			return nil, fmt.Errorf("document %s is not valid JSON", name)
		}
		snap.Documents[name] = json.RawMessage(b)
	}
	snap.Checksum = checksum(snap.Documents)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		return nil, err
	}
	return snap, nil
}

// Verify loads a snapshot and checks its checksum without touching any
// data directory.
func Verify(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if checksum(snap.Documents) != snap.Checksum {
		return nil, ErrChecksumMismatch
	}
	return &snap, nil
}

// Import verifies a snapshot and writes its documents into targetDir.
// Unknown document names are rejected so a tampered snapshot cannot
// plant files.
func Import(path, targetDir string) (*Snapshot, error) {
	targetDir = filepath.Clean(strings.TrimSpace(targetDir))
	if targetDir == "" {
		return nil, fmt.Errorf("targetDir is required")
	}
	snap, err := Verify(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, err
	}
	for name, raw := range snap.Documents {
		if !knownDocument(name) {
			return nil, fmt.Errorf("snapshot contains unknown document %q", name)
		}
		if err := os.WriteFile(filepath.Join(targetDir, name), raw, 0o644); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func knownDocument(name string) bool {
	for _, d := range documents {
		if d == name {
			return true
		}
	}
	return false
}

// checksum hashes the documents in a fixed order so the digest does not
// depend on map iteration.
func checksum(docs map[string]json.RawMessage) string {
	h := sha256.New()
	for _, name := range documents {
		raw, ok := docs[name]
		if !ok {
			continue
		}
		h.Write([]byte(name))
		h.Write([]byte{'\n'})
		h.Write(raw)
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
