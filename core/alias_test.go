package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasedPath_Accessors(t *testing.T) {
	p := mustParsePath(t, "root.sg.d1.s1")
	a := NewAliasedPath(p)

	assert.Empty(t, a.MeasurementAlias())
	assert.Empty(t, a.QueryAlias())

	a.SetMeasurementAlias("temperature")
	a.SetQueryAlias("t")
	assert.Equal(t, "temperature", a.MeasurementAlias())
	assert.Equal(t, "t", a.QueryAlias())

	// The whole Path contract is available through the wrapper.
	assert.Equal(t, "root.sg.d1.s1", a.FullPath())
	assert.Equal(t, "s1", a.Measurement())
}

func TestAliasedPath_FullPathWithAlias(t *testing.T) {
	a := NewAliasedPath(mustParsePath(t, "root.sg.d1.s1"))

	// Before the alias is set the rendering is an invalid-state failure.
	_, err := a.FullPathWithAlias()
	require.Error(t, err)
	assert.True(t, IsInvalidStateError(err), "expected InvalidStateError, got %v", err)

	a.SetMeasurementAlias("temperature")
	got, err := a.FullPathWithAlias()
	require.NoError(t, err)
	assert.Equal(t, "root.sg.d1.temperature", got)
}

func TestAliasedPath_DoesNotAffectEquality(t *testing.T) {
	p := mustParsePath(t, "root.sg.d1.s1")

	a := NewAliasedPath(p)
	a.SetMeasurementAlias("temperature")
	b := NewAliasedPath(mustNewPath(t, []string{"root", "sg", "d1", "s1"}))

	assert.True(t, a.Equals(b.Path), "aliases must not participate in equality")
	assert.Equal(t, a.Hash(), b.Hash())
}
