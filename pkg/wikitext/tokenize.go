package wikitext

import (
	"fmt"
	"strings"

	"github.com/justfish09/Wikipedia-Template-Parser/models"
)

// AnonPrefix prefixes the synthesized key of a positional parameter.
// anon_1 is the first positional parameter encountered, regardless of any
// named parameters interleaved before it.
const AnonPrefix = "anon_"

// Tokenize splits an escaped template body into its name and parameters.
// Segment order is preserved; a repeated key overwrites the earlier value.
// Any input is accepted, there is no schema to validate against.
func Tokenize(escapedBody string) models.Template {
	segments := strings.Split(escapedBody, "|")

	tpl := models.Template{
		Name: strings.TrimSpace(RestorePipes(segments[0])),
		Data: models.NewParamMap(),
	}

	anon := 0
	for _, segment := range segments[1:] {
		key, value, named := strings.Cut(segment, "=")
		if !named {
			anon++
			key = fmt.Sprintf("%s%d", AnonPrefix, anon)
			value = segment
		}
		tpl.Data.Set(
			strings.TrimSpace(RestorePipes(key)),
			strings.TrimSpace(RestorePipes(value)),
		)
	}
	return tpl
}
