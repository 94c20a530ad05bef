// Copyright (C) 2023, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidVersion(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidVersion("1.2.0"))
	assert.True(IsValidVersion("1.0.0"))
	assert.True(IsValidVersion("2.1.4"))

	assert.False(IsValidVersion(""))
	assert.False(IsValidVersion("v1.2.0"))
	assert.False(IsValidVersion("latest"))
	assert.False(IsValidVersion("1.2.0; rm -rf /"))
}

func TestBytesPerSecToBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(float64(8), BytesPerSecToBits(1))
	assert.Equal(float64(100000000), BytesPerSecToBits(12500000))
	assert.Equal(float64(0), BytesPerSecToBits(0))
}

func TestBitsToMegabits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(100.0, BitsToMegabits(100000000))
	assert.Equal(94.12, BitsToMegabits(94117647))
	assert.Equal(0.0, BitsToMegabits(0))
}
