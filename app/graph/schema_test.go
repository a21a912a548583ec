package graph_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/plantnet/app/graph"
	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/app/repositories"
	"github.com/shashiranjanraj/plantnet/pkg/testkit"
)

type fakeCatalog struct {
	plants []models.Plant
}

func (c *fakeCatalog) List(_ context.Context) ([]models.Plant, error) {
	return c.plants, nil
}

func (c *fakeCatalog) FindByID(_ context.Context, id primitive.ObjectID) (models.Plant, error) {
	for _, p := range c.plants {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Plant{}, repositories.ErrNotFound
}

func newSchema(t *testing.T, plants ...models.Plant) graphql.Schema {
	t.Helper()
	schema, err := graph.NewSchema(&fakeCatalog{plants: plants})
	require.NoError(t, err)
	return schema
}

func TestPlantsQuery(t *testing.T) {
	p := models.Plant{ID: primitive.NewObjectID(), Name: "Monstera", Price: 24.5, Quantity: 15}
	schema := newSchema(t, p)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ plants { id name price quantity } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	plants := data["plants"].([]interface{})
	require.Len(t, plants, 1)

	row := plants[0].(map[string]interface{})
	assert.Equal(t, p.ID.Hex(), row["id"])
	assert.Equal(t, "Monstera", row["name"])
}

func TestPlantsQueryHonorsLimit(t *testing.T) {
	schema := newSchema(t,
		models.Plant{ID: primitive.NewObjectID(), Name: "A"},
		models.Plant{ID: primitive.NewObjectID(), Name: "B"},
		models.Plant{ID: primitive.NewObjectID(), Name: "C"},
	)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ plants(limit: 2) { name } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Len(t, data["plants"], 2)
}

func TestPlantQueryByID(t *testing.T) {
	p := models.Plant{ID: primitive.NewObjectID(), Name: "Peace Lily", Category: "flowering"}
	schema := newSchema(t, p)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `query($id: String!) { plant(id: $id) { name category } }`,
		VariableValues: map[string]interface{}{
			"id": p.ID.Hex(),
		},
		Context: context.Background(),
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	row := data["plant"].(map[string]interface{})
	assert.Equal(t, "Peace Lily", row["name"])
	assert.Equal(t, "flowering", row["category"])
}

func TestPlantQueryMissingIsNull(t *testing.T) {
	schema := newSchema(t)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ plant(id: "` + primitive.NewObjectID().Hex() + `") { name } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Nil(t, data["plant"])
}

func TestHandlerServesQuery(t *testing.T) {
	p := models.Plant{ID: primitive.NewObjectID(), Name: "Snake Plant", Quantity: 40}
	schema := newSchema(t, p)
	h := graph.Handler(schema)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql",
		strings.NewReader(`{"query":"{ plants { name quantity } }"}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertJSONBody(t,
		[]byte(`{"data":{"plants":[{"name":"Snake Plant","quantity":40}]}}`),
		rec.Body.Bytes())
}

func TestHandlerRejectsMalformedBody(t *testing.T) {
	schema := newSchema(t)
	h := graph.Handler(schema)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("{oops"))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
