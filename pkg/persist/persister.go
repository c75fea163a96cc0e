package persist

// Persister handles I/O for one record type under a fixed basename.
type Persister[T any] struct {
	basename string
	codec    Codec
}

// NewPersister creates a persister with the given basename and codec.
func NewPersister[T any](basename string, codec Codec) *Persister[T] {
	return &Persister[T]{
		basename: basename,
		codec:    codec,
	}
}

// Save writes the record produced by build to the given directory.
func (p *Persister[T]) Save(dir string, build func() *T) error {
	record := build()

	return SaveRecord(dir, p.basename, p.codec, record)
}

// Load reads a record from the given directory and hands it to restore.
func (p *Persister[T]) Load(dir string, restore func(*T)) error {
	var record T

	err := LoadRecord(dir, p.basename, p.codec, &record)
	if err != nil {
		return err
	}

	restore(&record)

	return nil
}
