package hal

import "github.com/juju/errors"

const maxSampleRate = 192000

func checkSampleRate(sampleRate uint32) error {
	if sampleRate == 0 || sampleRate > maxSampleRate {
		return errors.NotValidf("audio: sample rate %d", sampleRate)
	}
	return nil
}

// checkCircularBuffer requires two halves of whole stereo frames.
func checkCircularBuffer(buf []int16) error {
	if len(buf) == 0 || len(buf)%4 != 0 {
		return errors.NotValidf("audio: circular buffer of %d samples", len(buf))
	}
	return nil
}
