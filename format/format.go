package format

import (
	"encoding"

	"github.com/dhamidi/skel/sketch"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(file *sketch.File) error
}
