package api

import (
	"context"
	"net/http"
	"net/url"

	"brewbatter_back_end/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "list categories"
	raw, err := c.getRaw(ctx, op, "/controller")
	if err != nil {
		return nil, err
	}
	list, err := decodeList[models.Category](raw, "categories")
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return list, nil
}

func (c *Client) CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	var created models.Category
	if err := c.do(ctx, "create category", http.MethodPost, "/controller", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListCategoryItems(ctx context.Context, categoryID string) ([]models.ItemType, error) {
	const op = "list category items"
	raw, err := c.getRaw(ctx, op, "/controller/"+url.PathEscape(categoryID))
	if err != nil {
		return nil, err
	}
	list, err := decodeList[models.ItemType](raw, "itemTypes", "types")
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return list, nil
}

func (c *Client) CreateCategoryItem(ctx context.Context, categoryID string, input models.ItemTypeInput) (*models.ItemType, error) {
	var created models.ItemType
	path := "/controller/" + url.PathEscape(categoryID)
	if err := c.do(ctx, "create category item", http.MethodPost, path, input, &created); err != nil {
		return nil, err
	}
	if created.MenuItemID == "" {
		created.MenuItemID = categoryID
	}
	return &created, nil
}

func (c *Client) UpdateCategoryItem(ctx context.Context, itemTypeID string, input models.ItemTypeInput) (*models.ItemType, error) {
	var updated models.ItemType
	path := "/controller/type/" + url.PathEscape(itemTypeID)
	if err := c.do(ctx, "update category item", http.MethodPut, path, input, &updated); err != nil {
		return nil, err
	}
	if updated.ID == "" {
		updated.ID = itemTypeID
	}
	return &updated, nil
}

func (c *Client) DeleteCategoryItem(ctx context.Context, itemTypeID string) error {
	path := "/controller/type/" + url.PathEscape(itemTypeID)
	return c.do(ctx, "delete category item", http.MethodDelete, path, nil, nil)
}
