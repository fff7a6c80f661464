package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes fingerprints of resolved task properties.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFingerprint hashes the task name, the name-ordered inputs and the name-ordered
// resolved outputs. File contents are not read.
func (h *Hasher) ComputeFingerprint(props *domain.TaskProperties) string {
	hasher := xxhash.New()

	writeField(hasher, props.Task.Name)
	writeSection(hasher)

	for input := range props.Inputs.All() {
		writeField(hasher, input.PropertyName())
		for _, p := range input.Paths() {
			writeField(hasher, p)
		}
		writeSection(hasher)
	}
	writeSection(hasher)

	for output := range props.Resolved.All() {
		writeField(hasher, output.Name)
		writeField(hasher, output.OutputType.String())
		writeField(hasher, output.OutputFile)
	}
	writeSection(hasher)

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}

func writeSection(hasher *xxhash.Digest) {
	_, _ = hasher.Write([]byte{0})
}
