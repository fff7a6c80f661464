package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of outputs.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs checks that every output file exists in root with the kind its type declares:
// a regular file for file outputs, a directory for directory and tree outputs.
func (v *Verifier) VerifyOutputs(root string, outputs []domain.ResolvedOutputFilePropertySpec) (bool, error) {
	for _, output := range outputs {
		if output.OutputFile == "" {
			continue
		}

		path := filepath.Join(root, filepath.FromSlash(output.OutputFile))
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
		}

		wantDir := output.OutputType == domain.OutputTypeDirectory || output.OutputType == domain.OutputTypeFileTree
		if info.IsDir() != wantDir {
			return false, nil
		}
	}
	return true, nil
}
