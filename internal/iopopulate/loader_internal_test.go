package iopopulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "($1)", placeholders(1, 1))
	assert.Equal(t, "($4, $5, $6)", placeholders(4, 3))
}

func TestBatchLimit(t *testing.T) {
	tests := []struct {
		msg             string
		batchSize, cols int
		res             int
	}{
		{"small batch", 100, 3, 100},
		{"no batch size", 0, 3, 10_000},
		{"too many params", 50_000, 8, 3_750},
		{"one row", 1, 8, 1},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, batchLimit(v.batchSize, v.cols), v.msg)
	}
}
