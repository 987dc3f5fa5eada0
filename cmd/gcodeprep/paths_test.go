package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "out.nc", outputPath("out.nc", "001.txt", "_safe"))
	assert.Equal(t, "001_safe.txt", outputPath("", "001.txt", "_safe"))
	assert.Equal(t, "001_normalized.txt", outputPath("", "001.txt", "_normalized"))
}
