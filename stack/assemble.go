package stack

import (
	"math"

	"github.com/porogan/braggsim/medium"
)

// Assemble resolves segments into one flat optical stack between the
// ambient and substrate half-spaces. Segments stack in slice order with
// the first segment nearest the ambient; the template of the last segment,
// when positive, lands between the final pair and the substrate.
//
// Every segment must validate, and segments that repeat must carry a
// non-empty porosity profile. A zero-repeat segment contributes nothing
// and needs no profile. The porous sub-layer indices come from the
// volume-averaging rule of package medium, evaluated against m.Solid and
// m.Void.
//
// Complexity: O(total layers) time and memory.
func Assemble(segs []Segment, m Media) (Stack, error) {
	if len(segs) == 0 {
		return Stack{}, ErrNoSegments
	}
	for _, sg := range segs {
		if err := sg.Structure.Validate(); err != nil {
			return Stack{}, err
		}
		if sg.Structure.Repeats > 0 && sg.Profile.Len() == 0 {
			return Stack{}, ErrNotGraded
		}
	}

	total := 2
	for _, sg := range segs {
		total += sg.Structure.Repeats * (1 + sg.Profile.Len())
	}
	template := segs[len(segs)-1].Structure.Template
	if template > 0 {
		total++
	}

	indices := make([]complex128, 0, total)
	thicknesses := make([]float64, 0, total)

	indices = append(indices, complex(m.Ambient, 0))
	thicknesses = append(thicknesses, math.Inf(1))

	for _, sg := range segs {
		porous := medium.EffectiveIndices(sg.Profile.Porosities, m.Solid, m.Void)
		solidTh := sg.Structure.SolidThickness()
		for r := 0; r < sg.Structure.Repeats; r++ {
			indices = append(indices, complex(m.Solid, 0))
			thicknesses = append(thicknesses, solidTh)
			for k, n := range porous {
				indices = append(indices, complex(n, 0))
				thicknesses = append(thicknesses, sg.Profile.Thicknesses[k])
			}
		}
	}

	if template > 0 {
		indices = append(indices, complex(m.Solid, 0))
		thicknesses = append(thicknesses, template)
	}

	indices = append(indices, complex(m.Substrate, 0))
	thicknesses = append(thicknesses, math.Inf(1))

	return Stack{Indices: indices, Thicknesses: thicknesses}, nil
}
