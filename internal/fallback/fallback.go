// Package fallback carries the formulation snapshots bundled with the
// binary. They are served whenever the hosted table cannot be read.
package fallback

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/mapper"
	"sahasrayogam-be/internal/model"
)

var (
	//go:embed data/Kashaya.json
	kashayaSnapshot []byte

	//go:embed data/Ghrita.json
	ghritaSnapshot []byte
)

// Models decodes both snapshots, Kashaya first, then Ghrita.
func Models() ([]*model.Formulation, error) {
	kashaya, err := Decode(kashayaSnapshot)
	if err != nil {
		return nil, fmt.Errorf("decode Kashaya snapshot: %w", err)
	}
	ghrita, err := Decode(ghritaSnapshot)
	if err != nil {
		return nil, fmt.Errorf("decode Ghrita snapshot: %w", err)
	}
	return append(kashaya, ghrita...), nil
}

// Formulations is Models mapped to entities.
func Formulations() ([]*entity.Formulation, error) {
	models, err := Models()
	if err != nil {
		return nil, err
	}
	return mapper.NewFormulationMapper().ToEntities(models), nil
}

// Decode parses one snapshot file.
func Decode(data []byte) ([]*model.Formulation, error) {
	var rows []*model.Formulation
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
