package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "csvcli/internal/errors"
)

func TestBuildOptions(t *testing.T) {
	opts, err := buildOptions("a,b", "yes", ",", "", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, opts.Columns)
	assert.True(t, opts.Complement)
	assert.Equal(t, ',', opts.InComma)
	// empty output delimiter preserves the input delimiter
	assert.Equal(t, ',', opts.OutComma)
	assert.Equal(t, 2, opts.Round)
}

func TestBuildOptions_OutputDelimiter(t *testing.T) {
	opts, err := buildOptions("a", "no", ";", "\t", -1)
	require.NoError(t, err)

	assert.Equal(t, ';', opts.InComma)
	assert.Equal(t, '\t', opts.OutComma)
	assert.False(t, opts.Complement)
}

func TestBuildOptions_BadBool(t *testing.T) {
	_, err := buildOptions("a", "maybe", ",", "", -1)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConfiguration))
}

func TestBuildOptions_BadDelimiter(t *testing.T) {
	_, err := buildOptions("a", "no", ",,", "", -1)
	require.Error(t, err)

	_, err = buildOptions("a", "no", ",", "||", -1)
	require.Error(t, err)
}
