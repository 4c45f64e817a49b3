package constant

// DatasetKind names one of the pre-computed snapshot files produced by the SAP batch.
type DatasetKind string

const (
	DatasetCombined     DatasetKind = "combined"
	DatasetLTAP         DatasetKind = "ltap"
	DatasetCDHDR        DatasetKind = "cdhdr"
	DatasetZUHistory    DatasetKind = "zu_history"
	DatasetPGIDLines    DatasetKind = "pgid_lines"
	DatasetBinLocations DatasetKind = "bin_locations"
)

// DatasetKinds lists every dataset kind in the order the dashboard loads them.
var DatasetKinds = []DatasetKind{
	DatasetCombined,
	DatasetLTAP,
	DatasetCDHDR,
	DatasetZUHistory,
	DatasetPGIDLines,
	DatasetBinLocations,
}

// DatasetNotFoundMessages are reported verbatim to the dashboard when the backing file is absent.
var DatasetNotFoundMessages = map[DatasetKind]string{
	DatasetCombined:     "Statistics file not found",
	DatasetLTAP:         "LTAP statistics file not found",
	DatasetCDHDR:        "CDHDR statistics file not found",
	DatasetZUHistory:    "ZU History statistics file not found",
	DatasetPGIDLines:    "PGID Lines statistics file not found",
	DatasetBinLocations: "Bin locations file not found",
}

const (
	// ByDateKey is the array of per-day entries within the combined statistics document.
	ByDateKey = "by_date"
	// DateKey is the field of a by_date entry holding its ISO date.
	DateKey = "date"
	// LayoutKey is the only part of the bin locations document exposed to clients.
	LayoutKey = "layout"
)

const (
	// SourceBinColumn is the CSV column holding the raw bin location of a transaction.
	SourceBinColumn = "SOURCE_BIN"

	// BinStatusActive is the status tag of every generated bin range entry.
	BinStatusActive = "active"
)
