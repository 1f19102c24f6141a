package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weld-framework/weld/framework/container"
)

var widgetType = container.TypeOf[*Widget]()

// paramTypes flattens a constructor's parameter list for assertions.
func paramTypes(c *container.Constructor) []any {
	out := make([]any, len(c.Params))
	for i, p := range c.Params {
		out[i] = p.Type
	}
	return out
}

func TestSelect_PicksResolvableConstructorAmongOverloads(t *testing.T) {
	// Widget(A, B) / Widget(C, D), only A and B resolvable: the (A, B)
	// overload is the only eligible one.
	cat := container.NewCatalog()
	cat.MustProvide(newWidgetAB)
	cat.MustProvide(newWidgetCD)

	sel := container.NewSelector(cat)
	ctor, err := sel.Select(widgetType, resolving(typeA, &implA{}, typeB, &implB{}))

	require.NoError(t, err)
	assert.Equal(t, []any{typeA, typeB}, paramTypes(ctor))
}

func TestSelect_MoreParametersWin(t *testing.T) {
	// Widget(A, B) / Widget(C), all resolvable: two parameters beat one,
	// regardless of registration order.
	for name, register := range map[string]func(*container.Catalog){
		"two-params first": func(cat *container.Catalog) {
			cat.MustProvide(newWidgetAB)
			cat.MustProvide(newWidgetC)
		},
		"one-param first": func(cat *container.Catalog) {
			cat.MustProvide(newWidgetC)
			cat.MustProvide(newWidgetAB)
		},
	} {
		t.Run(name, func(t *testing.T) {
			cat := container.NewCatalog()
			register(cat)

			sel := container.NewSelector(cat)
			ctor, err := sel.Select(widgetType,
				resolving(typeA, &implA{}, typeB, &implB{}, typeC, &implC{}))

			require.NoError(t, err)
			assert.Equal(t, []any{typeA, typeB}, paramTypes(ctor))
		})
	}
}

func TestSelect_UnresolvableParameterDisqualifiesOutright(t *testing.T) {
	// Widget(A, B, int) / Widget(C), with int neither resolvable nor
	// defaulted: the three-parameter constructor is removed from
	// consideration entirely and the one-parameter constructor wins.
	cat := container.NewCatalog()
	cat.MustProvide(newWidgetABCount)
	cat.MustProvide(newWidgetC)

	sel := container.NewSelector(cat)
	ctor, err := sel.Select(widgetType,
		resolving(typeA, &implA{}, typeB, &implB{}, typeC, &implC{}))

	require.NoError(t, err)
	assert.Equal(t, []any{typeC}, paramTypes(ctor))
}

func TestSelect_DisqualifiedConstructorNeverFallsBack(t *testing.T) {
	// Even as the only candidate, a constructor with a non-resolvable,
	// non-defaulted parameter fails selection rather than being picked.
	cat := container.NewCatalog()
	cat.MustProvide(newWidgetABCount)

	sel := container.NewSelector(cat)
	_, err := sel.Select(widgetType, resolving(typeA, &implA{}, typeB, &implB{}))

	var noCtor *container.NoEligibleConstructorError
	require.ErrorAs(t, err, &noCtor)
	assert.Equal(t, widgetType, noCtor.Type)
}

func TestSelect_DefaultedParameterLosesTie(t *testing.T) {
	// Widget(A, B) / Widget(C, D=nil), everything resolvable: equal
	// parameter counts, but the constructor leaning on a declared default
	// loses to the fully-resolved one.
	cat := container.NewCatalog()
	cat.MustProvide(newWidgetAB)
	cat.MustProvide(newWidgetCD, container.WithDefault(1, nil))

	sel := container.NewSelector(cat)
	ctor, err := sel.Select(widgetType,
		resolving(typeA, &implA{}, typeB, &implB{}, typeC, &implC{}, typeD, &implD{}))

	require.NoError(t, err)
	assert.Equal(t, []any{typeA, typeB}, paramTypes(ctor))
}

func TestSelect_ResidualTieIsAmbiguous(t *testing.T) {
	// Widget(A, B) / Widget(C, D), everything resolvable, no defaults:
	// selection fails closed instead of guessing.
	cat := container.NewCatalog()
	cat.MustProvide(newWidgetAB)
	cat.MustProvide(newWidgetCD)

	sel := container.NewSelector(cat)
	_, err := sel.Select(widgetType,
		resolving(typeA, &implA{}, typeB, &implB{}, typeC, &implC{}, typeD, &implD{}))

	var ambiguous *container.AmbiguousConstructorError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, widgetType, ambiguous.Type)
	assert.Equal(t, 2, ambiguous.Count)
}

func TestSelect_DefaultKeepsConstructorEligible(t *testing.T) {
	// A defaulted parameter does not need to be resolvable.
	cat := container.NewCatalog()
	cat.MustProvide(newWidgetLocale, container.WithDefault(1, "en"))

	sel := container.NewSelector(cat)
	ctor, err := sel.Select(widgetType, resolving(typeA, &implA{}))

	require.NoError(t, err)
	assert.Equal(t, []any{typeA, container.TypeOf[string]()}, paramTypes(ctor))
}

func TestSelect_NoCandidatesRegistered(t *testing.T) {
	sel := container.NewSelector(container.NewCatalog())

	_, err := sel.Select(widgetType, resolving())

	var noCtor *container.NoEligibleConstructorError
	require.True(t, errors.As(err, &noCtor))
}
