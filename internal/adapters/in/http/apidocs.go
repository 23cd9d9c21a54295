package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// apiDoc serves the OpenAPI document to swaggo's registry, which backs
// /swagger/doc.json.
type apiDoc struct {
	json []byte
}

func (d apiDoc) ReadDoc() string {
	return string(d.json)
}

var registerDocOnce sync.Once

// registerAPIDoc makes doc the document served by the Swagger UI. swaggo keeps
// one global registry, so only the first call takes effect.
func registerAPIDoc(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: raw})
	})
	return nil
}
