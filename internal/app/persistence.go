package app

import (
	"bytes"
	"encoding/gob"

	"go.trai.ch/zerr"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

// errorTableLayerName is the ports.Store layer name the diagnostic table is
// saved under. It is the "non-tabular portion" ports.Store's doc comment
// describes: small enough to gob-encode whole, unlike the layer Tables
// themselves, which are rebuilt from a fresh parse rather than persisted.
const errorTableLayerName = "errors"

func loadErrorTable(store ports.Store, root string) (*domain.ErrorTable, error) {
	table := domain.NewErrorTable()

	data, ok, err := store.Load(root, errorTableLayerName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return table, nil
	}

	var snapshot map[string][]domain.Diagnostic
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snapshot); err != nil {
		return nil, zerr.Wrap(err, "failed to decode persisted diagnostic table")
	}
	table.Restore(snapshot)
	return table, nil
}

func saveErrorTable(store ports.Store, root string, table *domain.ErrorTable) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(table.All()); err != nil {
		return zerr.Wrap(err, "failed to encode diagnostic table")
	}
	return store.Save(root, errorTableLayerName, buf.Bytes())
}
