// Package validation vérifie les formulaires avant tout appel au backend.
//
// Les règles sont portées par les tags `validate` des modèles; ce paquet
// traduit les erreurs du validateur en messages par champ pour le front.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"brewbatter_back_end/internal/models"
)

type creatingKey struct{}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// les clés d'erreur suivent les noms JSON (ingredients[1].quantity)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v.RegisterValidation("notblank", validators.NotBlank))
	mustRegister(v.RegisterValidation("phone", validPhone))
	v.RegisterStructValidation(uniqueIngredients, recipeForm{})
	v.RegisterStructValidationCtx(ingredientStock, models.IngredientInput{})
	return v
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// FieldErrors associe un champ à son message d'erreur
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, f[field]))
	}
	return strings.Join(parts, "; ")
}

// Err retourne nil quand il n'y a aucune erreur
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func (f FieldErrors) add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

type categoryForm struct {
	Name     string `json:"name" validate:"notblank,max=100"`
	HasImage bool   `json:"image" validate:"required"`
}

type recipeForm struct {
	Ingredients []models.RecipeLineInput `json:"ingredients" validate:"required,min=1,dive"`
}

func Category(name string, hasImage bool) error {
	return translate(validate.Struct(categoryForm{Name: name, HasImage: hasImage}))
}

func ItemType(input models.ItemTypeInput) error {
	return translate(validate.Struct(input))
}

// Ingredient : le stock doit être > 0 à la création et >= 0 ensuite
func Ingredient(input models.IngredientInput, creating bool) error {
	ctx := context.WithValue(context.Background(), creatingKey{}, creating)
	return translate(validate.StructCtx(ctx, input))
}

func Recipe(lines []models.RecipeLineInput) error {
	return translate(validate.Struct(recipeForm{Ingredients: lines}))
}

// Checkout : nom requis, téléphone de 7 à 15 chiffres (+ et espaces tolérés)
func Checkout(info models.CustomerInfo) error {
	return translate(validate.Struct(info))
}

func ingredientStock(ctx context.Context, sl validator.StructLevel) {
	in := sl.Current().Interface().(models.IngredientInput)
	if creating, _ := ctx.Value(creatingKey{}).(bool); creating && in.Stock <= 0 {
		sl.ReportError(in.Stock, "stock", "Stock", "gt", "0")
	}
}

func uniqueIngredients(sl validator.StructLevel) {
	form := sl.Current().Interface().(recipeForm)
	seen := map[string]bool{}
	for i, line := range form.Ingredients {
		if line.IngredientID == "" {
			continue
		}
		if seen[line.IngredientID] {
			sl.ReportError(line.IngredientID, fmt.Sprintf("ingredients[%d].ingredientId", i), "IngredientID", "unique", "")
		}
		seen[line.IngredientID] = true
	}
}

// validPhone : 7 à 15 chiffres, espaces et tirets tolérés, + seulement en tête
func validPhone(fl validator.FieldLevel) bool {
	digits := 0
	for i, r := range fl.Field().String() {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-' || (r == '+' && i == 0):
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := FieldErrors{}
	for _, fe := range verrs {
		errs.add(fieldKey(fe), message(fe))
	}
	return errs.Err()
}

// fieldKey retire le nom de la structure racine du namespace
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

var labels = map[string]string{
	"name":           "Name",
	"image":          "Image",
	"price":          "Price",
	"stock":          "Stock",
	"unit":           "Unit",
	"reorder_level":  "Reorder level",
	"addon_quantity": "Addon quantity",
	"addon_price":    "Addon price",
	"ingredientId":   "Ingredient",
	"quantity":       "Quantity",
	"customer_name":  "Customer name",
	"phone":          "Phone number",
}

func label(fe validator.FieldError) string {
	field := fe.Field()
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank", "min":
		switch fe.Field() {
		case "ingredients":
			return "Add at least one ingredient"
		case "ingredientId":
			return "Select an ingredient"
		}
		return label(fe) + " is required"
	case "gt":
		return label(fe) + " must be a positive number"
	case "gte":
		return label(fe) + " cannot be negative"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label(fe), fe.Param())
	case "oneof":
		return label(fe) + " must be " + strings.Join(strings.Fields(fe.Param()), " or ")
	case "unique":
		return label(fe) + " is listed twice"
	case "phone":
		return "Phone number must have 7 to 15 digits"
	}
	return label(fe) + " is invalid"
}
