package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitWords("  a  b   "))
	assert.Empty(t, SplitWords("   "))
	assert.Empty(t, SplitWords(""))

	// The cap drops extra words silently
	words := SplitWords("a b c d e f")
	require.Len(t, words, MaxSearchWords)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, words)
}

func TestParaArticulosRequiereAlgunCriterio(t *testing.T) {
	_, err := ParaArticulos("", false, 0, nil)
	assert.ErrorIs(t, err, ErrMissingFilterCriteria)

	// The stock flag alone is not a search criterion
	_, err = ParaArticulos("   ", true, 0, nil)
	assert.ErrorIs(t, err, ErrMissingFilterCriteria)

	// Any one of the three criteria suffices
	_, err = ParaArticulos("bomba", false, 0, nil)
	assert.NoError(t, err)
	_, err = ParaArticulos("", false, 9, nil)
	assert.NoError(t, err)
	_, err = ParaArticulos("", false, 0, []int{3})
	assert.NoError(t, err)
}

func TestParaArticulosPredicados(t *testing.T) {
	crit, err := ParaArticulos("bomba agua", true, 9, []int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, crit.WordCount)

	var ops []Op
	for _, p := range crit.Predicates {
		ops = append(ops, p.Op)
	}
	assert.Equal(t, []Op{OpContainsFold, OpContainsFold, OpEquals, OpFitmentAny, OpStockPositive}, ops)

	assert.Equal(t, Predicate{Field: FieldDescripcion, Op: OpContainsFold, Value: "bomba"}, crit.Predicates[0])
	assert.Equal(t, Predicate{Field: FieldDescripcion, Op: OpContainsFold, Value: "agua"}, crit.Predicates[1])
	assert.Equal(t, Predicate{Field: FieldRubro, Op: OpEquals, Value: 9}, crit.Predicates[2])
	assert.Equal(t, Predicate{Field: FieldAplicacion, Op: OpFitmentAny, Value: []int{3, 4}}, crit.Predicates[3])
}

func TestParaArticulosSinStockNoAgregaPredicadoDeStock(t *testing.T) {
	crit, err := ParaArticulos("bomba", false, 0, nil)
	require.NoError(t, err)
	for _, p := range crit.Predicates {
		assert.NotEqual(t, OpStockPositive, p.Op)
	}
}

func TestParaAplicacionesBusquedaObligatoria(t *testing.T) {
	_, err := ParaAplicaciones("")
	assert.ErrorIs(t, err, ErrMissingFilterCriteria)
	_, err = ParaAplicaciones("   ")
	assert.ErrorIs(t, err, ErrMissingFilterCriteria)

	crit, err := ParaAplicaciones("corsa 1.4")
	require.NoError(t, err)
	assert.Equal(t, 2, crit.WordCount)
	for _, p := range crit.Predicates {
		assert.Equal(t, FieldPath, p.Field)
		assert.Equal(t, OpContainsFold, p.Op)
	}
}

func TestParaRubrosSinBusquedaEsValido(t *testing.T) {
	crit := ParaRubros("")
	assert.Empty(t, crit.Predicates)
	assert.Zero(t, crit.WordCount)

	crit = ParaRubros("motor")
	assert.Len(t, crit.Predicates, 1)
}
