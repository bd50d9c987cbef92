package catalogue_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodwaste/internal/catalogue"
	"foodwaste/internal/domain"
)

func TestCatalogueShape(t *testing.T) {
	all := catalogue.All()
	require.Len(t, all, 18)

	names := map[string]bool{}
	parameterized := 0
	for i, d := range all {
		assert.Equal(t, catalogue.ID(i+1), d.ID)
		assert.False(t, names[d.Name], "duplicate name %q", d.Name)
		names[d.Name] = true
		assert.NotEmpty(t, d.Columns)

		sql := strings.ToUpper(strings.TrimSpace(d.SQL))
		assert.True(t, strings.HasPrefix(sql, "SELECT") || strings.HasPrefix(sql, "WITH"), "query %d is not a read", d.ID)
		for _, kw := range []string{"INSERT", "UPDATE", "DELETE", "DROP", "ALTER"} {
			assert.NotContains(t, sql, kw+" ", "query %d", d.ID)
		}
		assert.Equal(t, len(d.Params), strings.Count(d.SQL, "?"), "query %d placeholders", d.ID)
		if len(d.Params) > 0 {
			parameterized++
		}
	}
	assert.Equal(t, 1, parameterized)
}

func TestLookupAndResolve(t *testing.T) {
	d, err := catalogue.Lookup("15 Expired items still listed")
	require.NoError(t, err)
	assert.Equal(t, catalogue.ExpiredItems, d.ID)

	d, err = catalogue.Resolve("18")
	require.NoError(t, err)
	assert.Equal(t, catalogue.ProviderConversion, d.ID)

	for _, ref := range []string{"0", "19", "Expired items", "DROP TABLE claims"} {
		_, err := catalogue.Resolve(ref)
		assert.ErrorIs(t, err, domain.ErrUnknownQuery, ref)
	}
}

func TestBind(t *testing.T) {
	d, err := catalogue.Get(catalogue.ProvidersByCity)
	require.NoError(t, err)

	args, err := d.Bind(map[string]string{"city": "Springfield'; DROP TABLE providers; --"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Springfield'; DROP TABLE providers; --"}, args)
	assert.NotContains(t, d.SQL, "Springfield")

	_, err = d.Bind(nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	fixed, err := catalogue.Get(catalogue.CommonFoodTypes)
	require.NoError(t, err)
	args, err = fixed.Bind(nil)
	require.NoError(t, err)
	assert.Empty(t, args)
	_, err = fixed.Bind(map[string]string{"city": "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
