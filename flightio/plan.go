package flightio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/flightplan"
)

// flightDoc is the on-disk JSON shape of a single flight (spec.md §6:
// plane, from, to, cargo).
type flightDoc struct {
	Plane int     `json:"plane"`
	From  int     `json:"from"`
	To    int     `json:"to"`
	Cargo []int64 `json:"cargo"`
}

type planDoc struct {
	RunID   string      `json:"run_id"`
	Flights []flightDoc `json:"flights"`
}

// WritePlan encodes plan as JSON and writes it to path.
func WritePlan(path string, plan *flightplan.Plan) error {
	data, err := EncodePlan(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// EncodePlan serializes plan into its on-disk JSON form.
func EncodePlan(plan *flightplan.Plan) ([]byte, error) {
	doc := planDoc{
		RunID:   plan.RunID.String(),
		Flights: make([]flightDoc, len(plan.Flights)),
	}
	for i, f := range plan.Flights {
		doc.Flights[i] = flightDoc{
			Plane: int(f.Plane),
			From:  int(f.From),
			To:    int(f.To),
			Cargo: append([]int64(nil), f.Cargo...),
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ReadPlan loads and decodes path into a *flightplan.Plan, checking
// every flight's cargo length against nCities.
func ReadPlan(path string, nCities int) (*flightplan.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flightio: reading %s: %w", path, err)
	}
	return DecodePlan(data, nCities)
}

// DecodePlan parses data as a planDoc and validates it into a
// *flightplan.Plan.
func DecodePlan(data []byte, nCities int) (*flightplan.Plan, error) {
	var doc planDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("flightio: decoding plan: %w", err)
	}

	runID, err := uuid.Parse(doc.RunID)
	if err != nil {
		return nil, fmt.Errorf("flightio: parsing run_id: %w", err)
	}

	flights := make([]core.Flight, len(doc.Flights))
	for i, fd := range doc.Flights {
		if len(fd.Cargo) != nCities {
			return nil, ErrCargoLengthMismatch
		}
		flights[i] = core.Flight{
			Plane: core.PlaneID(fd.Plane),
			From:  core.City(fd.From),
			To:    core.City(fd.To),
			Cargo: append([]int64(nil), fd.Cargo...),
		}
	}

	return &flightplan.Plan{RunID: runID, Flights: flights}, nil
}
