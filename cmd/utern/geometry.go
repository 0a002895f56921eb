package main

import (
	"encoding/csv"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	utern "github.com/sanjeevaacham/Utern"
)

// writeGeometry writes every named layout part with its geometry
func writeGeometry(model *utern.Model, fname string, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"name", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	if strings.ToLower(geomFormat) == "geojson" {
		b, err := model.ExportGeoJSON()
		if err != nil {
			return err
		}
		return errors.Wrap(writer.Write([]string{"layout", string(b)}), "Can't write layout")
	}

	parts := model.ExportWKT()
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		err = writer.Write([]string{name, parts[name]})
		if err != nil {
			return errors.Wrap(err, "Can't write "+name)
		}
	}
	return nil
}
