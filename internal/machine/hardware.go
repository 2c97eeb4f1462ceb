// Package machine bundles Storage and the I/O subsystem so they can
// be passed around together. Grounded on
// original_source/src/cdc160a/Hardware.py, a twelve-line struct doing
// exactly this.
package machine

import (
	"github.com/bdwalton/cdc160a/internal/iounit"
	"github.com/bdwalton/cdc160a/internal/storage"
)

// Hardware holds the register/memory file and the I/O subsystem
// together, the bundle micro-ops and the run loop operate on.
type Hardware struct {
	Storage *storage.Storage
	IO      *iounit.IOUnit
}

func New(s *storage.Storage, io *iounit.IOUnit) *Hardware {
	return &Hardware{Storage: s, IO: io}
}
