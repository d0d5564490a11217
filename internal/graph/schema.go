package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable query schema over r. It fails when the
// declared Query fields and the resolver table do not match exactly, so a
// schema/resolver drift can never reach serving.
func NewSchema(r *Resolvers) (graphql.Schema, error) {
	serviceType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Service",
		Fields: graphql.Fields{
			"name": &graphql.Field{Type: graphql.String},
			"slug": &graphql.Field{Type: graphql.String},
			"url":  &graphql.Field{Type: graphql.String},
		},
	})

	datacenterType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Datacenter",
		Fields: graphql.Fields{
			"name": &graphql.Field{Type: graphql.String},
			"url":  &graphql.Field{Type: graphql.String},
		},
	})

	regionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Region",
		Fields: graphql.Fields{
			"name":        &graphql.Field{Type: graphql.String},
			"datacenters": &graphql.Field{Type: graphql.NewList(datacenterType)},
		},
	})

	categoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"name":     &graphql.Field{Type: graphql.String},
			"services": &graphql.Field{Type: graphql.NewList(serviceType)},
		},
	})

	accountType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Account",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.String},
			"login":       &graphql.Field{Type: graphql.String},
			"email":       &graphql.Field{Type: graphql.String},
			"emailHash":   &graphql.Field{Type: graphql.String},
			"companyName": &graphql.Field{Type: graphql.String},
			"firstName":   &graphql.Field{Type: graphql.String},
			"lastName":    &graphql.Field{Type: graphql.String},
			"phone":       &graphql.Field{Type: graphql.String},
			"created":     &graphql.Field{Type: graphql.DateTime},
			"updated":     &graphql.Field{Type: graphql.DateTime},
			"services": &graphql.Field{
				Type:    graphql.NewList(serviceType),
				Resolve: r.resolveAccountServices,
			},
		},
	})

	queryFields := graphql.Fields{
		"account":    &graphql.Field{Type: accountType},
		"datacenter": &graphql.Field{Type: datacenterType},
		"regions":    &graphql.Field{Type: graphql.NewList(regionType)},
		"categories": &graphql.Field{Type: graphql.NewList(categoryType)},
		"service": &graphql.Field{
			Type: serviceType,
			Args: graphql.FieldConfigArgument{
				"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
		},
	}

	resolvers := r.QueryFields()
	for name, field := range queryFields {
		resolve, ok := resolvers[name]
		if !ok {
			return graphql.Schema{}, fmt.Errorf("query field %q has no resolver", name)
		}
		field.Resolve = resolve
	}
	for name := range resolvers {
		if _, ok := queryFields[name]; !ok {
			return graphql.Schema{}, fmt.Errorf("resolver %q matches no query field", name)
		}
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: queryFields,
		}),
	})
}
