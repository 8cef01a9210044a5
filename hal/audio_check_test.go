//go:build !tinygo

package hal

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheckSampleRate(t *testing.T) {
	assert.NoError(t, checkSampleRate(16000))
	assert.NoError(t, checkSampleRate(192000))

	for _, rate := range []uint32{0, 192001} {
		err := checkSampleRate(rate)
		assert.True(t, errors.IsNotValid(err), "rate %d: %v", rate, err)
	}
}

func TestCheckCircularBuffer(t *testing.T) {
	assert.NoError(t, checkCircularBuffer(make([]int16, 8)))

	for _, n := range []int{0, 2, 6} {
		err := checkCircularBuffer(make([]int16, n))
		assert.True(t, errors.IsNotValid(err), "len %d: %v", n, err)
	}
}
