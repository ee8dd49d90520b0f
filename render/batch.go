package render

import (
	"runtime"
	"sync"

	"github.com/Alex-Citeroni/qr-code-generator/encoder"
)

// Batch encodes and renders every payload with the same options. Codes are
// independent, so they render concurrently across a bounded worker pool. Any
// failure aborts the whole batch: a sheet must never ship with a missing
// cell that looks like an encoding defect.
func Batch(enc encoder.Encoder, payloads []string, opts ...Option) ([]*RenderedCode, error) {
	codes := make([]*RenderedCode, len(payloads))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	for i, text := range payloads {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			mat, err := enc.Encode(text)
			var rc *RenderedCode
			if err == nil {
				rc, err = Render(mat, opts...)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			codes[i] = rc
		}(i, text)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return codes, nil
}
