package sheet

import (
	"fmt"
	"sync"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder renders a payload string as a PNG image of the given pixel size.
// The production implementation wraps a QR library; tests substitute a stub.
type Encoder interface {
	Encode(payload string, size int) ([]byte, error)
}

// QRCodeEncoder encodes payloads as QR codes with medium error correction.
type QRCodeEncoder struct{}

// Encode implements Encoder.
func (QRCodeEncoder) Encode(payload string, size int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR payload: %w", err)
	}

	return png, nil
}

// encodeTask is one record's payload queued for encoding.
type encodeTask struct {
	index   int
	payload string
}

// encodeAll renders every payload in parallel and returns the PNGs in input
// order. Workers write to disjoint indices, so no locking is needed; a failed
// encode leaves a nil entry, rendered as a placeholder like an invalid URL.
func encodeAll(enc Encoder, payloads []string, size, workers int) [][]byte {
	if workers <= 0 {
		workers = 4
	}

	images := make([][]byte, len(payloads))
	tasks := make(chan encodeTask, workers*2)

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for task := range tasks {
				if task.payload == "" {
					continue
				}

				png, err := enc.Encode(task.payload, size)
				if err != nil {
					continue
				}

				images[task.index] = png
			}
		}()
	}

	for i, payload := range payloads {
		tasks <- encodeTask{index: i, payload: payload}
	}

	close(tasks)
	wg.Wait()

	return images
}
