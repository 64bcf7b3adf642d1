package diagnostics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilSinkDrops(t *testing.T) {
	var s Sink
	assert.NotPanics(t, func() { s.Push(Regression(0.5)) })
}

func TestLoadFailed(t *testing.T) {
	var got []Diagnostic
	s := Sink(func(d Diagnostic) { got = append(got, d) })
	s.Push(LoadFailed(2, errors.New("no such file")))

	assert.Len(t, got, 1)
	assert.Equal(t, AssetLoadFailed, got[0].Code)
	assert.Equal(t, Err, got[0].Severity)
	assert.Equal(t, "no such file", got[0].Detail)
	assert.Equal(t, 2, got[0].Evidence["slot"])
}
