package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampoOpcional(t *testing.T) {
	assert.Nil(t, campoOpcional(nil))
	assert.Nil(t, campoOpcional(str("")))
	assert.Nil(t, campoOpcional(str("   \t ")))

	got := campoOpcional(str("  SKF  "))
	require.NotNil(t, got)
	assert.Equal(t, "SKF", *got)
}

func TestRangoAnios(t *testing.T) {
	desde, hasta := 2004, 2010

	assert.Nil(t, rangoAnios(nil, nil))

	ambos := rangoAnios(&desde, &hasta)
	require.NotNil(t, ambos)
	assert.Equal(t, "2004-2010", *ambos)

	abierto := rangoAnios(&desde, nil)
	require.NotNil(t, abierto)
	assert.Equal(t, "2004-", *abierto)

	soloHasta := rangoAnios(nil, &hasta)
	require.NotNil(t, soloHasta)
	assert.Equal(t, "-2010", *soloHasta)
}
