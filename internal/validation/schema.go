package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tair/inventory-service/pkg/pagination"
)

const (
	msgRequired = "is required"
	msgInteger  = "must be an integer"
	msgNumber   = "must be a number"
	msgPrice    = "must be a non-negative amount with at most 2 decimal places"
)

// Exponent window of a parsed price. Values outside it are rejected before
// any rescaling, which costs time proportional to the exponent.
const (
	minPriceExponent = -32
	maxPriceExponent = 10
)

// MaxPrice is the largest price a NUMERIC(12,2) column holds.
var MaxPrice = decimal.RequireFromString("9999999999.99")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("price", validatePrice); err != nil {
		panic(err)
	}
	return v
}

// validatePrice accepts non-negative amounts with at most two decimals that
// fit NUMERIC(12,2).
func validatePrice(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil || !priceExponentOK(d) {
		return false
	}
	return !d.IsNegative() && d.Equal(d.Round(2)) && d.LessThanOrEqual(MaxPrice)
}

func priceExponentOK(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp >= minPriceExponent && exp <= maxPriceExponent
}

// CreateCategoryInput is the create/update payload of a category.
type CreateCategoryInput struct {
	Name        string  `form:"name" validate:"required,max=255"`
	Description *string `form:"description" validate:"omitnil,max=2000"`
}

// CreateUnitInput is the create/update payload of a unit.
type CreateUnitInput struct {
	Name        string  `form:"name" validate:"required,max=255"`
	Description *string `form:"description" validate:"omitnil,max=2000"`
}

// CreateItemInput is the create/update payload of an item.
type CreateItemInput struct {
	Name          string          `form:"name" validate:"required,max=255"`
	CategoryID    int64           `form:"categoryId" validate:"gt=0,lte=4294967295"`
	UnitID        int64           `form:"unitId" validate:"gt=0,lte=4294967295"`
	StockQuantity int64           `form:"stockQuantity" validate:"gte=0,lte=2147483647"`
	Price         decimal.Decimal `form:"price" validate:"price"`
}

type listQuery struct {
	Page  int64 `form:"page" validate:"gte=1,lte=2147483647"`
	Limit int64 `form:"limit" validate:"gte=1,lte=100"`
}

type idInput struct {
	ID int64 `form:"id" validate:"gt=0,lte=4294967295"`
}

// ParseCreateCategory validates a category payload.
func ParseCreateCategory(f Form) (CreateCategoryInput, FieldErrors) {
	errs := FieldErrors{}
	in := CreateCategoryInput{Description: optionalString(f, "description")}
	in.Name, _ = f.Value("name")
	check(in, errs)
	return in, errs
}

// ParseCreateUnit validates a unit payload.
func ParseCreateUnit(f Form) (CreateUnitInput, FieldErrors) {
	errs := FieldErrors{}
	in := CreateUnitInput{Description: optionalString(f, "description")}
	in.Name, _ = f.Value("name")
	check(in, errs)
	return in, errs
}

// ParseCreateItem validates an item payload.
func ParseCreateItem(f Form) (CreateItemInput, FieldErrors) {
	errs := FieldErrors{}
	in := CreateItemInput{
		CategoryID:    intField(f, "categoryId", nil, errs),
		UnitID:        intField(f, "unitId", nil, errs),
		StockQuantity: intField(f, "stockQuantity", nil, errs),
		Price:         decimalField(f, "price", errs),
	}
	in.Name, _ = f.Value("name")
	check(in, errs)
	return in, errs
}

// ParseListQuery validates search, page and limit, applying defaults for
// absent fields.
func ParseListQuery(f Form) (pagination.Params, FieldErrors) {
	errs := FieldErrors{}
	defPage, defLimit := int64(pagination.DefaultPage), int64(pagination.DefaultLimit)
	q := listQuery{
		Page:  intField(f, "page", &defPage, errs),
		Limit: intField(f, "limit", &defLimit, errs),
	}
	check(q, errs)

	search, _ := f.Value("search")
	return pagination.Params{
		Search: search,
		Page:   int(q.Page),
		Limit:  int(q.Limit),
	}, errs
}

// ParseID validates the id field.
func ParseID(f Form) (uint, FieldErrors) {
	errs := FieldErrors{}
	in := idInput{ID: intField(f, "id", nil, errs)}
	check(in, errs)
	if errs.Has("id") {
		return 0, errs
	}
	return uint(in.ID), errs
}

// check runs the struct tags of v and records one message per failed field.
// Fields that already failed coercion keep their coercion message.
func check(v any, errs FieldErrors) {
	err := validate.Struct(v)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("_", err.Error())
		return
	}
	for _, fe := range verrs {
		field := fe.Field()
		if errs.Has(field) {
			continue
		}
		errs.Add(field, message(fe))
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "price":
		return msgPrice
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
