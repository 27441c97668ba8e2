// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cpmech/oasis/mesh"
	"github.com/cpmech/oasis/oasiserr"
)

// LoadMeshDir reads the four-to-five-file CSV mesh directory of spec.md §6
// and activates the resulting grid. patches.csv and zones.csv are read if
// present and otherwise silently ignored, matching the original MeshLoader
// (see DESIGN.md).
func LoadMeshDir(dir string) (*mesh.Grid, map[string][]int, map[string][]int, error) {
	nodes, err := readNodes(filepath.Join(dir, "nodes.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	faces, err := readFaces(filepath.Join(dir, "faces.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	cells, err := readCells(filepath.Join(dir, "cells.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	grid, err := mesh.Activate(nodes, faces, cells)
	if err != nil {
		return nil, nil, nil, err
	}
	patches, err := readGroups(filepath.Join(dir, "patches.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	zones, err := readGroups(filepath.Join(dir, "zones.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	return grid, patches, zones, nil
}

func openCSV(path string) (*csv.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewReader(f), f, nil
}

func readNodes(path string) ([]mesh.NodeInput, error) {
	r, f, err := openCSV(path)
	if err != nil {
		return nil, oasiserr.NewConfigError("mesh: cannot read %q: %v", path, err)
	}
	defer f.Close()
	rows, err := r.ReadAll()
	if err != nil {
		return nil, oasiserr.NewConfigError("mesh: malformed %q: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, oasiserr.NewConfigError("mesh: %q is missing its header row", path)
	}
	var out []mesh.NodeInput
	for i, row := range rows[1:] { // skip header
		if len(row) < 4 {
			return nil, oasiserr.NewConfigError("mesh: %q row %d needs id,x,y,z", path, i)
		}
		id, x, y, z := atoi(row[0]), atof(row[1]), atof(row[2]), atof(row[3])
		out = append(out, mesh.NodeInput{Id: id, X: x, Y: y, Z: z})
	}
	return out, nil
}

func readFaces(path string) ([]mesh.FaceInput, error) {
	r, f, err := openCSV(path)
	if err != nil {
		return nil, oasiserr.NewConfigError("mesh: cannot read %q: %v", path, err)
	}
	defer f.Close()
	rows, err := r.ReadAll()
	if err != nil {
		return nil, oasiserr.NewConfigError("mesh: malformed %q: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, oasiserr.NewConfigError("mesh: %q is missing its header row", path)
	}
	var out []mesh.FaceInput
	for i, row := range rows[1:] {
		if len(row) < 3 {
			return nil, oasiserr.NewConfigError("mesh: %q row %d needs id and >= 2 node ids", path, i)
		}
		ids := make([]int, len(row)-1)
		for k, s := range row[1:] {
			ids[k] = atoi(s)
		}
		out = append(out, mesh.FaceInput{Id: atoi(row[0]), NodeIds: ids})
	}
	return out, nil
}

func readCells(path string) ([]mesh.CellInput, error) {
	r, f, err := openCSV(path)
	if err != nil {
		return nil, oasiserr.NewConfigError("mesh: cannot read %q: %v", path, err)
	}
	defer f.Close()
	rows, err := r.ReadAll()
	if err != nil {
		return nil, oasiserr.NewConfigError("mesh: malformed %q: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, oasiserr.NewConfigError("mesh: %q is missing its header row", path)
	}
	var out []mesh.CellInput
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, oasiserr.NewConfigError("mesh: %q row %d needs id and >= 1 face id", path, i)
		}
		ids := make([]int, len(row)-1)
		for k, s := range row[1:] {
			ids[k] = atoi(s)
		}
		out = append(out, mesh.CellInput{Id: atoi(row[0]), FaceIds: ids})
	}
	return out, nil
}

// readGroups reads an optional patches.csv/zones.csv file (groupId,
// faceId...); a missing file is not an error, matching the original
// MeshLoader.
func readGroups(path string) (map[string][]int, error) {
	r, f, err := openCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, oasiserr.NewConfigError("mesh: cannot read %q: %v", path, err)
	}
	defer f.Close()
	rows, err := r.ReadAll()
	if err != nil {
		return nil, oasiserr.NewConfigError("mesh: malformed %q: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	out := map[string][]int{}
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		ids := make([]int, len(row)-1)
		for k, s := range row[1:] {
			ids[k] = atoi(s)
		}
		out[row[0]] = ids
	}
	return out, nil
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
