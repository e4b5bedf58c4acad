package shop

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"brewbatter_back_end/internal/cart"
	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/middleware"
)

type lineView struct {
	Kind      cart.Kind `json:"kind"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"line_total"`
	ImageURL  string    `json:"image_url,omitempty"`
}

type cartView struct {
	Items      []lineView `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

func viewOf(ct *cart.Cart) cartView {
	lines := ct.Lines()
	v := cartView{
		Items:      make([]lineView, 0, len(lines)),
		TotalItems: ct.TotalItems(),
		TotalPrice: ct.TotalPrice().InexactFloat64(),
	}
	for _, l := range lines {
		v.Items = append(v.Items, lineView{
			Kind:      l.Kind,
			ID:        l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.InexactFloat64(),
			Quantity:  l.Quantity,
			LineTotal: l.Total().Round(cart.MinorUnits).InexactFloat64(),
			ImageURL:  l.ImageRef,
		})
	}
	return v
}

// mutate charge le panier de la session, applique fn puis sauvegarde
func (h *Handler) mutate(c *gin.Context, fn func(*gin.Context, *cart.Cart) error) {
	ctx := c.Request.Context()
	id := middleware.CartID(c)

	ct, err := h.Carts.Load(ctx, id)
	if err != nil {
		handlers.Error(c, err, "Failed to load cart")
		return
	}
	if err := fn(c, ct); err != nil {
		handlers.Error(c, err, "Failed to update cart")
		return
	}
	if err := h.Carts.Save(ctx, id, ct); err != nil {
		handlers.Error(c, err, "Failed to save cart")
		return
	}
	c.JSON(http.StatusOK, viewOf(ct))
}

// 🔵 GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	ct, err := h.Carts.Load(c.Request.Context(), middleware.CartID(c))
	if err != nil {
		handlers.Error(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, viewOf(ct))
}

type addInput struct {
	Kind       cart.Kind `json:"kind"`
	ID         string    `json:"id" binding:"required"`
	CategoryID string    `json:"category_id"`
	Quantity   int       `json:"quantity" binding:"min=0"`
}

var errUnknownKind = errors.New("unknown kind")

// resolve construit l'entrée à partir du menu: le prix ne vient jamais du client
func (h *Handler) resolve(c *gin.Context, in addInput) (cart.Entry, error) {
	ctx := c.Request.Context()
	switch in.Kind {
	case cart.KindItem, "":
		item, err := h.Menu.FindItem(ctx, in.CategoryID, in.ID)
		if err != nil {
			return cart.Entry{}, err
		}
		return cart.Entry{
			Ref:       cart.ItemRef(item.ID),
			Name:      item.Name,
			UnitPrice: decimal.NewFromFloat(item.Price),
			Quantity:  in.Quantity,
			ImageRef:  item.ImageURL,
		}, nil
	case cart.KindAddon:
		ing, err := h.Menu.FindAddon(ctx, in.ID)
		if err != nil {
			return cart.Entry{}, err
		}
		return cart.Entry{
			Ref:       cart.AddonRef(ing.ID),
			Name:      ing.Name,
			UnitPrice: decimal.NewFromFloat(*ing.AddonPrice),
			Quantity:  in.Quantity,
			ImageRef:  ing.ImageURL,
		}, nil
	default:
		return cart.Entry{}, errUnknownKind
	}
}

// 🟢 POST /api/cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var in addInput
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.BadRequest(c, "Invalid cart item")
		return
	}

	entry, err := h.resolve(c, in)
	if errors.Is(err, errUnknownKind) {
		handlers.BadRequest(c, "kind must be item or addon")
		return
	}
	if err != nil {
		handlers.Error(c, err, "Failed to add item")
		return
	}

	h.mutate(c, func(_ *gin.Context, ct *cart.Cart) error {
		ct.Add(entry)
		return nil
	})
}

// 🟠 PUT /api/cart/items/:id  (0 ou moins retire la ligne)
func (h *Handler) UpdateItem(c *gin.Context) {
	var in struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.BadRequest(c, "quantity is required")
		return
	}

	id := c.Param("id")
	h.mutate(c, func(_ *gin.Context, ct *cart.Cart) error {
		ct.UpdateQuantity(id, *in.Quantity)
		return nil
	})
}

// 🔴 DELETE /api/cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, func(_ *gin.Context, ct *cart.Cart) error {
		ct.Remove(id)
		return nil
	})
}

// 🔴 DELETE /api/cart
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.Carts.Delete(c.Request.Context(), middleware.CartID(c)); err != nil {
		handlers.Error(c, err, "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, viewOf(cart.New()))
}
