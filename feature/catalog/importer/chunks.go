package importer

// chunked invokes fn over consecutive [start, end) windows of at most size
// elements. A size of zero or less means one window over everything.
func chunked(total, size int, fn func(start, end int) error) error {
	if size <= 0 {
		size = total
	}
	for start := 0; start < total; start += size {
		end := start + size
		if end > total {
			end = total
		}
		if err := fn(start, end); err != nil {
			return err
		}
	}
	return nil
}
