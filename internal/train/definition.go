// Package train holds train definitions: the built-in catalog and loaders
// for custom trains stored as plain text files.
//
// Definitions are not validated here. Their text is parsed into animations
// when a train state is built from them.
package train

// Definition describes a train before validation. Nil optional fields are
// absent; the state builder applies the defaults.
type Definition struct {
	Name       string
	Train      string
	TrainSpeed int

	Smoke       *string
	SmokeOffset *int
	SmokeSpeed  *int
}

// HasSmoke reports whether the definition carries a smoke animation.
func (d Definition) HasSmoke() bool {
	return d.Smoke != nil
}

// WithSmoke returns a copy of d with the given smoke animation attached.
func (d Definition) WithSmoke(text string, offset, speed int) Definition {
	d.Smoke = &text
	d.SmokeOffset = &offset
	d.SmokeSpeed = &speed
	return d
}
