package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	File     = kingpin.Arg("chart", "Chart (aff) file").Required().ExistingFile()
	Database = kingpin.Flag("database", "Summary history database").Default("./charts.db").Short('d').String()
	Steps    = kingpin.Flag("steps", "Combo timeline sample count").Default("10").Short('s').Uint()
	NoSave   = kingpin.Flag("no-save", "Do not record this summary").Short('n').Bool()
	Check    = kingpin.Flag("check", "Report commands failing the syntax check").Short('c').Bool()
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
