package flightio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avionops/crateplan/core"
)

// instanceDoc is the on-disk JSON shape of an Instance, matching
// spec.md §6's field names (capacity, n_cities, crates, plane_start).
type instanceDoc struct {
	Capacity   int64     `json:"capacity"`
	NCities    int       `json:"n_cities"`
	Crates     [][]int64 `json:"crates"`
	PlaneStart []int     `json:"plane_start"`
}

// ReadInstance loads and decodes path into a *core.Instance, running it
// through core.NewInstance so every malformed-input rule in spec.md §7
// is enforced the same way whether the Instance came from JSON or from
// instancegen.
func ReadInstance(path string) (*core.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flightio: reading %s: %w", path, err)
	}
	return DecodeInstance(data)
}

// DecodeInstance parses data as an instanceDoc and validates it into a
// *core.Instance.
func DecodeInstance(data []byte) (*core.Instance, error) {
	var doc instanceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("flightio: decoding instance: %w", err)
	}

	n := doc.NCities
	if len(doc.Crates) != n {
		return nil, ErrDimensionMismatch
	}
	m, err := core.NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for i, row := range doc.Crates {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
		for j, v := range row {
			m.Set(core.City(i), core.City(j), v)
		}
	}

	planeStart := make([]core.City, len(doc.PlaneStart))
	for i, c := range doc.PlaneStart {
		planeStart[i] = core.City(c)
	}

	return core.NewInstance(doc.Capacity, m, planeStart)
}

// WriteInstance encodes inst as JSON and writes it to path.
func WriteInstance(path string, inst *core.Instance) error {
	data, err := EncodeInstance(inst)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// EncodeInstance serializes inst into its on-disk JSON form.
func EncodeInstance(inst *core.Instance) ([]byte, error) {
	doc := instanceDoc{
		Capacity:   inst.Capacity,
		NCities:    inst.NCities,
		Crates:     make([][]int64, inst.NCities),
		PlaneStart: make([]int, len(inst.PlaneStart)),
	}
	for i := 0; i < inst.NCities; i++ {
		row := make([]int64, inst.NCities)
		for j := 0; j < inst.NCities; j++ {
			row[j] = inst.Crates.At(core.City(i), core.City(j))
		}
		doc.Crates[i] = row
	}
	for i, c := range inst.PlaneStart {
		doc.PlaneStart[i] = int(c)
	}
	return json.MarshalIndent(doc, "", "  ")
}
