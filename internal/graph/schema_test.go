package graph

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every field declared under Query must have exactly one resolver in the
// table, and every table entry must back a declared field.
func TestSchemaResolverCompleteness(t *testing.T) {
	r := testResolvers(t, nil)

	schema, err := NewSchema(r)
	require.NoError(t, err)

	declared := schema.QueryType().Fields()
	table := r.QueryFields()

	assert.Len(t, table, len(declared))
	for name := range declared {
		assert.Contains(t, table, name, "query field %q has no resolver", name)
	}
	for name := range table {
		assert.Contains(t, declared, name, "resolver %q matches no query field", name)
	}
}

func TestSchemaDeclaresAccountServices(t *testing.T) {
	schema, err := NewSchema(testResolvers(t, nil))
	require.NoError(t, err)

	accountType, ok := schema.QueryType().Fields()["account"].Type.(*graphql.Object)
	require.True(t, ok)
	assert.Contains(t, accountType.Fields(), "services")
}

func TestSchemaServiceRequiresSlug(t *testing.T) {
	schema, err := NewSchema(testResolvers(t, nil))
	require.NoError(t, err)

	args := schema.QueryType().Fields()["service"].Args
	require.Len(t, args, 1)
	assert.Equal(t, "slug", args[0].Name())
}
