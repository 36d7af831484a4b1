package envar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ab0utbla-k/envar"
)

var commaFiltered = envar.ListConfig{Sep: ",", FilterEmpty: true, FilterWhitespace: true}

func TestList_Ints(t *testing.T) {
	parse := envar.List(envar.Int, commaFiltered)

	list, err := parse("NUMS", "1,2,3,4,5")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, list)
}

func TestList_Strings(t *testing.T) {
	parse := envar.List(envar.String, commaFiltered)

	list, err := parse("WORDS", "hello,world,test")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "test"}, list)
}

func TestList_FiltersEnabled(t *testing.T) {
	parse := envar.List(envar.String, commaFiltered)

	list, err := parse("WORDS", "a,,b,  ,c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, list)
}

func TestList_FiltersDisabled(t *testing.T) {
	parse := envar.List(envar.String, envar.ListConfig{Sep: ","})

	// Segments are trimmed either way, so whitespace-only segments
	// survive as empty strings.
	list, err := parse("WORDS", "a,,b,  ,c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b", "", "c"}, list)
}

func TestList_CustomSeparator(t *testing.T) {
	parse := envar.List(envar.Int, envar.ListConfig{Sep: ";", FilterEmpty: true, FilterWhitespace: true})

	list, err := parse("NUMS", "10;20;30")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, list)
}

func TestList_EmptyInput(t *testing.T) {
	parse := envar.List(envar.String, commaFiltered)

	list, err := parse("WORDS", "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestList_ElementErrorAborts(t *testing.T) {
	parse := envar.List(envar.Int, commaFiltered)

	_, err := parse("NUMS", "1,2,not_a_number,4")
	require.Error(t, err)

	var pe *envar.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "NUMS", pe.Var)
	assert.Equal(t, "int", pe.Type)
	assert.Equal(t, "not_a_number", pe.Value)
}

func TestList_ThroughVar(t *testing.T) {
	v := envar.OnDemand("TEST_LIST_VAR", envar.List(envar.Int, commaFiltered), envar.NoDefault[[]int]())

	t.Setenv("TEST_LIST_VAR", "1,2,,3")
	list, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, list)
}
