package models

// GridPlacement positions one slot on the weekly grid. Row coordinates index
// the fixed time axis; lateral fields split the column width among clashing
// siblings so every slot stays visible.
type GridPlacement struct {
	SlotID       string `json:"slot_id"`
	ColumnIndex  int    `json:"column_index"`
	RowStart     int    `json:"row_start"`
	RowSpan      int    `json:"row_span"`
	LateralIndex int    `json:"lateral_index"`
	LateralTotal int    `json:"lateral_total"`
}

// LateralPlacement is the layout resolver's per-slot share of a column.
type LateralPlacement struct {
	LateralIndex int `json:"lateral_index"`
	LateralTotal int `json:"lateral_total"`
}
