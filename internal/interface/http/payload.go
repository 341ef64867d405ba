package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/starwars-blog-api/internal/application"
)

var (
	errBodyRequired = &application.Error{Kind: application.KindBadRequest, Message: "Request body is required"}
	errInvalidJSON  = &application.Error{Kind: application.KindBadRequest, Message: "Request body must be a JSON object"}
)

var jsonNull = []byte("null")

// body is a decoded JSON object whose values are inspected key by key, so
// that an absent key and an explicit null stay distinguishable.
type body map[string]json.RawMessage

func readBody(c *gin.Context) (body, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, errBodyRequired
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, errBodyRequired
	}
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, errInvalidJSON
	}
	if len(b) == 0 {
		return nil, errBodyRequired
	}
	return b, nil
}

// str reads a free-form text field. Strings are taken verbatim, numbers and
// booleans as their literal text, null clears the field.
func (b body) str(key string) (application.Field[*string], error) {
	raw, ok := b[key]
	if !ok {
		return application.Field[*string]{}, nil
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, jsonNull) {
		return application.Of[*string](nil), nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return application.Field[*string]{}, errInvalidJSON
		}
		return application.Of(&s), nil
	case '{', '[':
		return application.Field[*string]{}, fieldError(key, "must be a string")
	default:
		s := string(raw)
		return application.Of(&s), nil
	}
}

// id reads a nullable reference. Integers and numeric strings are accepted.
func (b body) id(key string) (application.Field[*int64], error) {
	raw, ok := b[key]
	if !ok {
		return application.Field[*int64]{}, nil
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, jsonNull) {
		return application.Of[*int64](nil), nil
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return application.Field[*int64]{}, errInvalidJSON
		}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return application.Field[*int64]{}, fieldError(key, "must be an integer")
	}
	return application.Of(&v), nil
}

func fieldError(key, msg string) error {
	return &application.Error{Kind: application.KindBadRequest, Message: fmt.Sprintf("Field %s %s", key, msg)}
}

type strField struct {
	key string
	dst *application.Field[*string]
}

func (b body) strs(fields ...strField) error {
	for _, f := range fields {
		v, err := b.str(f.key)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func characterPatch(b body) (application.CharacterPatch, error) {
	var p application.CharacterPatch
	err := b.strs(
		strField{"name", &p.Name},
		strField{"height", &p.Height},
		strField{"mass", &p.Mass},
		strField{"hair_color", &p.HairColor},
		strField{"skin_color", &p.SkinColor},
		strField{"eye_color", &p.EyeColor},
		strField{"birth_year", &p.BirthYear},
		strField{"gender", &p.Gender},
		strField{"description", &p.Description},
		strField{"image_url", &p.ImageURL},
	)
	if err != nil {
		return p, err
	}
	p.HomeworldID, err = b.id("homeworld_id")
	return p, err
}

func planetPatch(b body) (application.PlanetPatch, error) {
	var p application.PlanetPatch
	err := b.strs(
		strField{"name", &p.Name},
		strField{"rotation_period", &p.RotationPeriod},
		strField{"orbital_period", &p.OrbitalPeriod},
		strField{"diameter", &p.Diameter},
		strField{"climate", &p.Climate},
		strField{"gravity", &p.Gravity},
		strField{"terrain", &p.Terrain},
		strField{"surface_water", &p.SurfaceWater},
		strField{"population", &p.Population},
		strField{"description", &p.Description},
		strField{"image_url", &p.ImageURL},
	)
	return p, err
}

func readCharacterPatch(c *gin.Context) (application.CharacterPatch, error) {
	b, err := readBody(c)
	if err != nil {
		return application.CharacterPatch{}, err
	}
	return characterPatch(b)
}

func readPlanetPatch(c *gin.Context) (application.PlanetPatch, error) {
	b, err := readBody(c)
	if err != nil {
		return application.PlanetPatch{}, err
	}
	return planetPatch(b)
}
