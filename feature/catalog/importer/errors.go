package importer

// recordError marks a failure confined to one feed record: malformed nested
// structure, a missing image-slug mapping, and similar. The runner logs the
// record and continues; every other error aborts the section because partial
// store failures cannot be staged further.
type recordError struct {
	err error
}

func (e *recordError) Error() string { return e.err.Error() }

func (e *recordError) Unwrap() error { return e.err }

func recordErr(err error) error {
	if err == nil {
		return nil
	}
	return &recordError{err: err}
}
