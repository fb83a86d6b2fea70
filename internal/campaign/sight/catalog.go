package sight

import (
	"strconv"

	"github.com/louisbranch/tabletop/internal/campaign/light"
	"github.com/louisbranch/tabletop/internal/campaign/shape"
	apperrors "github.com/louisbranch/tabletop/internal/platform/errors"
)

const (
	// DefaultName is the sight type new tokens get.
	DefaultName = "Normal"
	// Darkvision carries a personal light from the Generic category.
	Darkvision = "Darkvision"
	// GenericCategory is the light category Darkvision draws from.
	GenericCategory = "Generic"
	// DarkvisionLightIndex is the position of the Darkvision light in the
	// Generic category.
	DarkvisionLightIndex = 5
)

type starterRow struct {
	name       string
	distance   float64
	multiplier float64
	arc        int
	shape      shape.Kind
	scale      bool
}

var starter = []starterRow{
	{name: "Normal", multiplier: 1},
	{name: "Lowlight", multiplier: 2},
	{name: "Grid Vision", multiplier: 1, shape: shape.Grid, scale: true},
	{name: "Square Vision", multiplier: 1, shape: shape.Square},
	{name: "Normal Vision - Short Range", distance: 10, multiplier: 1, shape: shape.Circle, scale: true},
	{name: "Conic Vision", multiplier: 1, arc: 120, shape: shape.Cone},
	{name: Darkvision, multiplier: 1, scale: true},
}

// Catalog is the result of building the built-in sight types.
type Catalog struct {
	Definitions map[string]Definition
	// Names lists the definitions in table order.
	Names       []string
	DefaultName string
	// Omitted lists starter rows that could not be built.
	Omitted []string
	// Warning explains the omissions, if any.
	Warning error
}

// DefaultCatalog builds the starter sight types. generic is the Generic light
// category; when it holds fewer than DarkvisionLightIndex+1 sources Darkvision
// is left out and Warning is set. That is never a construction failure.
func DefaultCatalog(generic *light.Group) Catalog {
	cat := Catalog{
		Definitions: make(map[string]Definition, len(starter)),
		DefaultName: starter[0].name,
	}
	for _, row := range starter {
		spec := Spec{
			Name:           row.name,
			Distance:       row.distance,
			Multiplier:     row.multiplier,
			Shape:          row.shape,
			Arc:            row.arc,
			ScaleWithToken: row.scale,
		}
		if row.name == Darkvision {
			src, ok := generic.At(DarkvisionLightIndex)
			if !ok {
				cat.Omitted = append(cat.Omitted, row.name)
				cat.Warning = apperrors.WithMetadata(apperrors.CodeGenericLightMissing,
					"darkvision skipped: generic light category too small",
					map[string]string{
						"count":    strconv.Itoa(generic.Len()),
						"required": strconv.Itoa(DarkvisionLightIndex + 1),
					})
				continue
			}
			spec.PersonalLight = src
		}
		cat.Definitions[row.name] = NewDefinition(spec)
		cat.Names = append(cat.Names, row.name)
	}
	return cat
}
