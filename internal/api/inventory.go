package api

import (
	"context"
	"net/http"
	"net/url"

	"brewbatter_back_end/internal/models"
)

func (c *Client) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	const op = "list ingredients"
	raw, err := c.getRaw(ctx, op, "/controller/ingredients")
	if err != nil {
		return nil, err
	}
	list, err := decodeList[models.Ingredient](raw, "ingredients")
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return list, nil
}

func (c *Client) CreateIngredient(ctx context.Context, input models.IngredientInput) (*models.Ingredient, error) {
	var created models.Ingredient
	if err := c.do(ctx, "create ingredient", http.MethodPost, "/controller/ingredients", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateIngredient(ctx context.Context, id string, input models.IngredientInput) (*models.Ingredient, error) {
	var updated models.Ingredient
	path := "/controller/ingredients/" + url.PathEscape(id)
	if err := c.do(ctx, "update ingredient", http.MethodPut, path, input, &updated); err != nil {
		return nil, err
	}
	if updated.ID == "" {
		updated.ID = id
	}
	return &updated, nil
}

func (c *Client) DeleteIngredient(ctx context.Context, id string) error {
	return c.do(ctx, "delete ingredient", http.MethodDelete, "/controller/ingredients/"+url.PathEscape(id), nil, nil)
}

// Le backend expose les recettes sous /controller/recepie
func recipePath(itemTypeID string) string {
	return "/controller/recepie/" + url.PathEscape(itemTypeID)
}

func (c *Client) GetRecipe(ctx context.Context, itemTypeID string) ([]models.RecipeIngredient, error) {
	const op = "get recipe"
	raw, err := c.getRaw(ctx, op, recipePath(itemTypeID))
	if err != nil {
		return nil, err
	}
	list, err := decodeList[models.RecipeIngredient](raw, "ingredients", "recipe")
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return list, nil
}

func (c *Client) CreateRecipe(ctx context.Context, itemTypeID string, lines []models.RecipeLineInput) error {
	return c.do(ctx, "create recipe", http.MethodPost, recipePath(itemTypeID), lines, nil)
}

func (c *Client) DeleteRecipe(ctx context.Context, itemTypeID string) error {
	return c.do(ctx, "delete recipe", http.MethodDelete, recipePath(itemTypeID), nil, nil)
}
