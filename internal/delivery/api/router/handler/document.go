package handler

import (
	"strings"

	"coffeeshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindDocument decodes a JSON object body as-is. Unlike c.Bind it does not
// merge path or query parameters into the document.
func bindDocument(c echo.Context) (entity.Document, error) {
	doc := entity.Document{}
	if err := new(echo.DefaultBinder).BindBody(c, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = entity.Document{}
	}

	return doc, nil
}

// checkFieldNames rejects top-level names the store would read as operators.
func checkFieldNames(doc entity.Document) error {
	for key := range doc {
		if key == "" || strings.HasPrefix(key, "$") {
			return errors.Errorf("field name %q is not allowed", key)
		}
	}

	return nil
}
