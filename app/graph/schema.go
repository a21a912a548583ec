// Package graph exposes a read-only GraphQL query surface over the catalog,
// mirroring the public REST reads.
package graph

import (
	"context"
	"errors"
	"net/http"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/app/repositories"
	"github.com/shashiranjanraj/plantnet/pkg/bind"
	"github.com/shashiranjanraj/plantnet/pkg/response"
)

// Catalog is the read slice of the plant repository the resolvers need.
type Catalog interface {
	List(ctx context.Context) ([]models.Plant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Plant, error)
}

// NewSchema builds the query schema: plants(limit) over the capped listing,
// and plant(id).
func NewSchema(catalog Catalog) (graphql.Schema, error) {
	plantType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Plant",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					plant, _ := p.Source.(models.Plant)
					return plant.ID.Hex(), nil
				},
			},
			"name":        &graphql.Field{Type: graphql.String},
			"image":       &graphql.Field{Type: graphql.String},
			"category":    &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.Float},
			"quantity":    &graphql.Field{Type: graphql.Int},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"plants": &graphql.Field{
				Type: graphql.NewList(plantType),
				Args: graphql.FieldConfigArgument{
					"limit": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					plants, err := catalog.List(p.Context)
					if err != nil {
						return nil, err
					}
					if limit, ok := p.Args["limit"].(int); ok && limit >= 0 && limit < len(plants) {
						plants = plants[:limit]
					}
					return plants, nil
				},
			},
			"plant": &graphql.Field{
				Type: plantType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["id"].(string)
					id, err := primitive.ObjectIDFromHex(raw)
					if err != nil {
						return nil, errors.New("invalid plant id")
					}
					plant, err := catalog.FindByID(p.Context, id)
					if errors.Is(err, repositories.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return plant, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

// Handler serves POST /graphql requests against the schema.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query         string                 `json:"query"`
			OperationName string                 `json:"operationName"`
			Variables     map[string]interface{} `json:"variables"`
		}
		if err := bind.JSON(r, &body); err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			OperationName:  body.OperationName,
			VariableValues: body.Variables,
			Context:        r.Context(),
		})

		response.Success(w, result)
	}
}
