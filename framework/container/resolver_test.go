package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weld-framework/weld/framework/container"
)

func TestMerge_PrimaryTakesPrecedence(t *testing.T) {
	primaryA := &implA{id: "primary"}
	secondaryA := &implA{id: "secondary"}
	primary := newContainer(t, nil, primaryA)
	secondary := newContainer(t, nil, secondaryA)

	merged := primary.MergeWith(secondary)

	require.True(t, merged.CanResolve(typeA))
	got, err := container.ResolveAs[ServiceA](merged)
	require.NoError(t, err)
	assert.Same(t, primaryA, got)
}

func TestMerge_FallsBackToSecondary(t *testing.T) {
	b := &implB{id: "secondary"}
	primary := newContainer(t, nil, &implA{})
	secondary := newContainer(t, nil, b)

	merged := primary.MergeWith(secondary)

	require.True(t, merged.CanResolve(typeB))
	got, err := container.ResolveAs[ServiceB](merged)
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestMerge_NeitherResolves(t *testing.T) {
	merged := newContainer(t, nil).MergeWith(newContainer(t, nil))

	assert.False(t, merged.CanResolve(typeC))

	_, err := merged.Resolve(typeC)
	var unresolvable *container.UnresolvableTypeError
	require.ErrorAs(t, err, &unresolvable)
	assert.Equal(t, typeC, unresolvable.Type)
}

func TestMerge_ChainsAssociateLeftToRight(t *testing.T) {
	firstA := &implA{id: "first"}
	secondA := &implA{id: "second"}
	first := newContainer(t, nil, firstA)
	second := newContainer(t, nil, secondA, &implB{})
	third := newContainer(t, nil, &implC{})

	chain := first.MergeWith(second).MergeWith(third)

	// Leftmost resolver wins for shared capabilities; later links fill in
	// what the earlier ones cannot.
	gotA, err := container.ResolveAs[ServiceA](chain)
	require.NoError(t, err)
	assert.Same(t, firstA, gotA)

	assert.True(t, chain.CanResolve(typeB))
	assert.True(t, chain.CanResolve(typeC))
}

func TestMerge_NilInputsCollapse(t *testing.T) {
	c := newContainer(t, nil, &implA{})

	assert.Same(t, c, container.Merge(c, nil))
	assert.Same(t, c, container.Merge(nil, c))
	assert.Same(t, c, c.MergeWith(nil))
}

func TestResolveAs_TypeMismatch(t *testing.T) {
	// The contract is bound to a concrete type that does not satisfy the
	// generic assertion target.
	cat := container.NewCatalog()
	cat.MustProvide(func() *implB { return &implB{} })
	c := newContainer(t, cat)
	require.NoError(t, container.Bind[ServiceA, *implB](c))

	_, err := container.ResolveAs[ServiceA](c)

	var unresolvable *container.UnresolvableTypeError
	require.ErrorAs(t, err, &unresolvable)
}
