package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventsFor(t *testing.T) {
	registry := New()

	tests := []struct {
		name        string
		tag         UseCase
		elementType string
		expected    []string
	}{
		{"request", UseCaseRequest, "", []string{"fetch::end::*"}},
		{"third party service", UseCaseThirdParty, "", []string{"fetch::start", "fetch::end::*"}},
		{"js injection", UseCaseJSInjection, "", []string{"scan::end"}},
		{"dom with element", UseCaseDOM, "script", []string{"element::script"}},
		{"dom defaults the element", UseCaseDOM, "", []string{"element::div"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.EventsFor(tt.tag, tt.elementType))
		})
	}
}

func TestEventsForUnknownTagPanics(t *testing.T) {
	registry := New()

	assert.Panics(t, func() {
		registry.EventsFor(UseCase("bogus"), "")
	})
	assert.Panics(t, func() {
		registry.EventsFor(UseCaseNone, "")
	})
}

func TestCategoryMenuExcludesOther(t *testing.T) {
	registry := New()
	menu := registry.CategoryMenu()

	assert.NotContains(t, menu, string(CategoryOther))
	assert.Contains(t, menu, string(CategorySecurity))
	assert.Len(t, menu, 6)
}

func TestParseCategory(t *testing.T) {
	registry := New()

	assert.Equal(t, CategorySecurity, registry.ParseCategory("security"))
	assert.Equal(t, CategorySecurity, registry.ParseCategory("Security"))
	assert.Equal(t, CategoryOther, registry.ParseCategory("other"))
	assert.Equal(t, CategoryOther, registry.ParseCategory("nonsense"))
	assert.Equal(t, CategoryOther, registry.ParseCategory(""))
}

func TestParseUseCase(t *testing.T) {
	registry := New()

	assert.Equal(t, UseCaseDOM, registry.ParseUseCase("dom"))
	assert.Equal(t, UseCaseThirdParty, registry.ParseUseCase("thirdpartyservice"))
	assert.Equal(t, UseCaseNone, registry.ParseUseCase(""))
	assert.Equal(t, UseCaseNone, registry.ParseUseCase("nonsense"))
}

func TestParseScope(t *testing.T) {
	registry := New()

	assert.Equal(t, ScopeSite, registry.ParseScope("site"))
	assert.Equal(t, ScopeAny, registry.ParseScope(""))
	assert.Equal(t, ScopeAny, registry.ParseScope("nonsense"))
}
