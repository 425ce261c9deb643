package main

import (
	"github.com/360EntSecGroup-Skylar/excelize/v2"
)

const versionSheet = "Sheet1"

var versionTitle = []string{"tool", "version"}

// writeVersionTable saves one row per probe, in probe order, under a title row.
func writeVersionTable(path string, versions Versions) error {
	var rows = [][]string{versionTitle}
	for _, v := range versions {
		rows = append(rows, []string{v.Key, v.Value})
	}

	f := excelize.NewFile()
	for i, row := range rows {
		for j, value := range row {
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(versionSheet, axis, value); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}
