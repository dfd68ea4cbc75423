package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.True(t, IsSet(0b1101_1000, 1))
	assert.True(t, IsSet(0b1101_1000, 2))
	assert.False(t, IsSet(0b1101_1000, 3))
	assert.True(t, IsSet(0b1101_1000, 4))

	assert.Equal(t, Word(0x12, 0x34), uint16(0x1234))
	assert.Equal(t, Word(0x00, 0xff), uint16(0x00ff))

	assert.True(t, FromLSB(0b0000_0001, 0))
	assert.False(t, FromLSB(0b0000_0001, 1))
	assert.True(t, FromLSB(0b1000_0000, 7))

	assert.Equal(t, SetFromLSB(0, 0, true), byte(0b0000_0001))
	assert.Equal(t, SetFromLSB(0, 7, true), byte(0b1000_0000))
	assert.Equal(t, SetFromLSB(0xff, 3, false), byte(0b1111_0111))
}
